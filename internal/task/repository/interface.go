package repository

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
)

// TaskRepository is the document store boundary for tasks. Implementations
// never retry; callers decide.
type TaskRepository interface {
	// FindTaskByID returns ErrNotFound when no task has the id.
	FindTaskByID(ctx context.Context, id string) (model.Task, error)
	// ListTasks evaluates q. Total counts every match regardless of limit.
	ListTasks(ctx context.Context, q query.Query) (TaskList, error)
	// CreateTask stores a task under id, generating one when id is empty.
	CreateTask(ctx context.Context, id string, opt CreateTaskOptions) (model.Task, error)
	// UpdateTask applies the set fields of opt and bumps UpdatedAt.
	UpdateTask(ctx context.Context, id string, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// TaskList is one page of a query result.
type TaskList struct {
	Total int
	Tasks []model.Task
}
