package http

import (
	"complaint-management/internal/issue"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errTypeRequired      = pkgErrors.NewValidationError("issue_type is required and must be valid")
	errDuplicate         = pkgErrors.NewConflictError("Issue type already exists")
	errDuplicateOnUpdate = pkgErrors.NewConflictError("Another issue with the same type already exists")
	errNotFound          = pkgErrors.NewNotFoundError("Issue not found")
)

func (h *handler) mapError(err error) error {
	switch err {
	case issue.ErrTypeRequired:
		return errTypeRequired
	case issue.ErrDuplicateType:
		return errDuplicate
	case issue.ErrIssueNotFound:
		return errNotFound
	default:
		return err
	}
}

func (h *handler) mapUpdateError(err error) error {
	if err == issue.ErrDuplicateType {
		return errDuplicateOnUpdate
	}
	return h.mapError(err)
}
