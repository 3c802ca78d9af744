package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert department")
	ErrFailedToGet    = errors.New("failed to get department")
	ErrFailedToList   = errors.New("failed to list departments")
	ErrFailedToUpdate = errors.New("failed to update department")
	ErrFailedToDelete = errors.New("failed to delete department")
)
