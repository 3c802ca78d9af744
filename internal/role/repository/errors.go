package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert role")
	ErrFailedToGet    = errors.New("failed to get role")
	ErrFailedToList   = errors.New("failed to list roles")
	ErrFailedToUpdate = errors.New("failed to update role")
	ErrFailedToDelete = errors.New("failed to delete role")
)
