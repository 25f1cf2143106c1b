package repository

import "errors"

var (
	ErrNotFound       = errors.New("project not found")
	ErrFailedToInsert = errors.New("failed to insert project")
	ErrFailedToGet    = errors.New("failed to get project")
	ErrFailedToList   = errors.New("failed to list projects")
	ErrFailedToUpdate = errors.New("failed to update project")
	ErrFailedToDelete = errors.New("failed to delete project")
	ErrInvalidQuery   = errors.New("invalid project query")
)
