package repository

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
)

// ProjectRepository is the document store boundary for projects.
type ProjectRepository interface {
	FindProjectByID(ctx context.Context, id string) (model.Project, error)
	ListProjects(ctx context.Context, q query.Query) (ProjectList, error)
	CreateProject(ctx context.Context, id string, opt CreateProjectOptions) (model.Project, error)
	UpdateProject(ctx context.Context, id string, opt UpdateProjectOptions) (model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// ProjectList is one page of a query result.
type ProjectList struct {
	Total    int
	Projects []model.Project
}
