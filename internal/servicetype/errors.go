package servicetype

import "errors"

var (
	ErrServiceTypeNotFound = errors.New("service type not found")
	ErrFieldsRequired      = errors.New("issue id and service name are required")
	ErrIssueNotFound       = errors.New("referenced issue not found")
	ErrDuplicateName       = errors.New("service type already exists for this issue")
)
