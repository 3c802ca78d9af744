package issue

import "errors"

var (
	ErrIssueNotFound = errors.New("issue not found")
	ErrDuplicateType = errors.New("issue type already exists")
	ErrTypeRequired  = errors.New("issue type is required")
)
