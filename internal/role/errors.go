package role

import "errors"

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrDuplicateName = errors.New("role name already exists")
	ErrInvalidName   = errors.New("role name is required and must be alphabetic")
)
