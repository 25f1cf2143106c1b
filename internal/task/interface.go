package task

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Views
	Today(ctx context.Context, sc model.Scope) (ListOutput, error)
	Inbox(ctx context.Context, sc model.Scope) (ListOutput, error)
	Upcoming(ctx context.Context, sc model.Scope) (ListOutput, error)
	Completed(ctx context.Context, sc model.Scope) (ListOutput, error)
	ProjectTasks(ctx context.Context, sc model.Scope, projectID string) (ListOutput, error)

	// Counts
	InboxTaskCount(ctx context.Context, sc model.Scope) (int, error)
	TodayTaskCount(ctx context.Context, sc model.Scope) (int, error)
	TaskCounts(ctx context.Context, sc model.Scope) (TaskCounts, error)

	// Task CRUD
	Detail(ctx context.Context, sc model.Scope, id string) (TaskOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (TaskOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (TaskOutput, error)
	ToggleComplete(ctx context.Context, sc model.Scope, input ToggleInput) (TaskOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// DeleteProjectTasks removes every task of a project one call at a time.
	// Failures do not stop the loop; the number actually deleted is returned.
	DeleteProjectTasks(ctx context.Context, sc model.Scope, projectID string) (int, error)
}
