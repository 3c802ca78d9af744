package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert complaint")
	ErrFailedToGet    = errors.New("failed to get complaint")
	ErrFailedToList   = errors.New("failed to list complaints")
	ErrFailedToUpdate = errors.New("failed to update complaint")
	ErrFailedToDelete = errors.New("failed to delete complaint")
	ErrNoFieldsToSet  = errors.New("update has no fields")
)
