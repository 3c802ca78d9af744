package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert issue")
	ErrFailedToGet    = errors.New("failed to get issue")
	ErrFailedToList   = errors.New("failed to list issues")
	ErrFailedToUpdate = errors.New("failed to update issue")
	ErrFailedToDelete = errors.New("failed to delete issue")
)
