package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert service type")
	ErrFailedToGet    = errors.New("failed to get service type")
	ErrFailedToList   = errors.New("failed to list service types")
	ErrFailedToUpdate = errors.New("failed to update service type")
	ErrFailedToDelete = errors.New("failed to delete service type")
)
