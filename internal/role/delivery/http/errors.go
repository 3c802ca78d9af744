package http

import (
	"complaint-management/internal/role"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errInvalidName = pkgErrors.NewValidationError("Role name required and should be valid.")
	errDuplicate   = pkgErrors.NewConflictError("Role name already exists.")
	errNotFound    = pkgErrors.NewNotFoundError("Role not found.")
)

// mapError translates use-case errors into HTTP errors. Anything else is
// passed through and reported as 500.
func (h *handler) mapError(err error) error {
	switch err {
	case role.ErrInvalidName:
		return errInvalidName
	case role.ErrDuplicateName:
		return errDuplicate
	case role.ErrRoleNotFound:
		return errNotFound
	default:
		return err
	}
}
