package http

import (
	"complaint-management/internal/department"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errNameRequired         = pkgErrors.NewValidationError("Department name is required and must be valid")
	errNameRequiredOnUpdate = pkgErrors.NewValidationError("Department name is required to update")
	errDuplicate            = pkgErrors.NewConflictError("Department name already exists")
	errDuplicateOnUpdate    = pkgErrors.NewConflictError("Another department with the same name already exists")
	errNotFound             = pkgErrors.NewNotFoundError("Department not found")
)

func (h *handler) mapError(err error) error {
	switch err {
	case department.ErrNameRequired:
		return errNameRequired
	case department.ErrDuplicateName:
		return errDuplicate
	case department.ErrDepartmentNotFound:
		return errNotFound
	default:
		return err
	}
}

// mapUpdateError words validation and conflict errors for a rename.
func (h *handler) mapUpdateError(err error) error {
	switch err {
	case department.ErrNameRequired:
		return errNameRequiredOnUpdate
	case department.ErrDuplicateName:
		return errDuplicateOnUpdate
	default:
		return h.mapError(err)
	}
}
