package project

import "errors"

var (
	ErrEmptyName       = errors.New("project name is required")
	ErrNameTooLong     = errors.New("project name is too long")
	ErrInvalidColor    = errors.New("unknown project color")
	ErrMissingID       = errors.New("project id is required")
	ErrProjectNotFound = errors.New("project not found")
)

var (
	ErrLoadProjects  = errors.New("failed to load projects")
	ErrLoadProject   = errors.New("failed to load project")
	ErrCreateProject = errors.New("failed to create project")
	ErrUpdateProject = errors.New("failed to update project")
	ErrDeleteProject = errors.New("failed to delete project")
)
