package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDuplicateName      = errors.New("department name already exists")
	ErrNameRequired       = errors.New("department name is required")
)
