package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrFieldsRequired     = errors.New("name, phone and role are required")
	ErrDuplicatePhone     = errors.New("phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoSession          = errors.New("no session")
	ErrInvalidSession     = errors.New("invalid session")
)
