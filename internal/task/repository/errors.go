package repository

import "errors"

var (
	ErrNotFound       = errors.New("task not found")
	ErrFailedToInsert = errors.New("failed to insert task")
	ErrFailedToGet    = errors.New("failed to get task")
	ErrFailedToList   = errors.New("failed to list tasks")
	ErrFailedToUpdate = errors.New("failed to update task")
	ErrFailedToDelete = errors.New("failed to delete task")
	ErrInvalidQuery   = errors.New("invalid task query")
)
