package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task"
)

// Today lists pending tasks due today.
func (uc *implUseCase) Today(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return uc.list(ctx, "Today", uc.views.Today(sc.UserID), task.ErrLoadToday)
}

// Inbox lists pending tasks without a project.
func (uc *implUseCase) Inbox(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return uc.list(ctx, "Inbox", uc.views.Inbox(sc.UserID), task.ErrLoadInbox)
}

// Upcoming lists pending dated tasks from today on, soonest first.
func (uc *implUseCase) Upcoming(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return uc.list(ctx, "Upcoming", uc.views.Upcoming(sc.UserID), task.ErrLoadUpcoming)
}

// Completed lists completed tasks, most recently completed first.
func (uc *implUseCase) Completed(ctx context.Context, sc model.Scope) (task.ListOutput, error) {
	return uc.list(ctx, "Completed", uc.views.Completed(sc.UserID), task.ErrLoadCompleted)
}

// ProjectTasks lists the pending tasks of one project.
func (uc *implUseCase) ProjectTasks(ctx context.Context, sc model.Scope, projectID string) (task.ListOutput, error) {
	if projectID == "" {
		return task.ListOutput{}, task.ErrMissingID
	}
	return uc.list(ctx, "ProjectTasks", uc.views.ProjectTasks(sc.UserID, projectID), task.ErrLoadProject)
}

func (uc *implUseCase) list(ctx context.Context, op string, q query.Query, failure error) (task.ListOutput, error) {
	res, err := uc.repo.ListTasks(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s ListTasks: %v", op, err)
		return task.ListOutput{}, failure
	}
	return task.ListOutput{Tasks: res.Tasks, Total: res.Total}, nil
}
