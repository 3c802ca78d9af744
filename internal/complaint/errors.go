package complaint

import "errors"

var (
	ErrComplaintNotFound = errors.New("complaint not found")
	ErrFieldsRequired    = errors.New("department, issue and detail are required")
	ErrEmptyDetail       = errors.New("complaint detail is empty")
	ErrNoUpdateFields    = errors.New("no fields to update")
	ErrNoUserComplaints  = errors.New("user has no complaints")
)
