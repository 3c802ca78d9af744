package http

import (
	"complaint-management/internal/servicetype"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errFieldsRequired = pkgErrors.NewValidationError("issue_id and service_name required.")
	errIssueNotFound  = pkgErrors.NewNotFoundError("Issue not found.")
	errDuplicate      = pkgErrors.NewConflictError("Service type already exists for this issue.")
	errNotFound       = pkgErrors.NewNotFoundError("Service type not found.")
)

func (h *handler) mapError(err error) error {
	switch err {
	case servicetype.ErrFieldsRequired:
		return errFieldsRequired
	case servicetype.ErrIssueNotFound:
		return errIssueNotFound
	case servicetype.ErrDuplicateName:
		return errDuplicate
	case servicetype.ErrServiceTypeNotFound:
		return errNotFound
	default:
		return err
	}
}
