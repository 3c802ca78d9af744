package http

import (
	"complaint-management/internal/user"
	pkgErrors "complaint-management/pkg/errors"
)

var (
	errFieldsRequired     = pkgErrors.NewValidationError("Name, phone, and role are required.")
	errDuplicatePhone     = pkgErrors.NewConflictError("Phone already registered.")
	errNotFound           = pkgErrors.NewNotFoundError("User not found")
	errInvalidCredentials = pkgErrors.NewUnauthorizedError("Invalid credentials")
	errNoSession          = pkgErrors.NewUnauthorizedError("No session")
	errInvalidSession     = pkgErrors.NewUnauthorizedError("Invalid session")
)

func (h *handler) mapError(err error) error {
	switch err {
	case user.ErrFieldsRequired:
		return errFieldsRequired
	case user.ErrDuplicatePhone:
		return errDuplicatePhone
	case user.ErrUserNotFound:
		return errNotFound
	case user.ErrInvalidCredentials:
		return errInvalidCredentials
	case user.ErrNoSession:
		return errNoSession
	case user.ErrInvalidSession:
		return errInvalidSession
	default:
		return err
	}
}
