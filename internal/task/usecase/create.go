package usecase

import (
	"context"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/internal/task/repository"
)

// Create validates and stores a new task owned by sc.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (task.TaskOutput, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return task.TaskOutput{}, task.ErrEmptyContent
	}

	t, err := uc.repo.CreateTask(ctx, input.ID, repository.CreateTaskOptions{
		Content:   content,
		DueDate:   input.DueDate,
		Completed: input.Completed,
		ProjectID: input.ProjectID,
		UserID:    sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, task.ErrCreateTask
	}

	uc.mirrorCreate(ctx, t)
	return task.TaskOutput{Task: t}, nil
}
