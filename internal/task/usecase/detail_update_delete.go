package usecase

import (
	"context"
	"errors"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/internal/task/repository"
)

// Detail returns one task of sc. Tasks of other owners are reported as not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (task.TaskOutput, error) {
	if id == "" {
		return task.TaskOutput{}, task.ErrMissingID
	}
	t, err := uc.owned(ctx, "Detail", sc, id, task.ErrLoadTask)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return task.TaskOutput{Task: t}, nil
}

// Update applies a partial edit.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (task.TaskOutput, error) {
	if input.ID == "" {
		return task.TaskOutput{}, task.ErrMissingID
	}
	if input.Content.Set {
		input.Content.Value = strings.TrimSpace(input.Content.Value)
		if input.Content.Value == "" {
			return task.TaskOutput{}, task.ErrEmptyContent
		}
	}

	existing, err := uc.owned(ctx, "Update", sc, input.ID, task.ErrUpdateTask)
	if err != nil {
		return task.TaskOutput{}, err
	}

	opt := repository.UpdateTaskOptions{
		Content:   input.Content,
		DueDate:   input.DueDate,
		Completed: input.Completed,
		ProjectID: input.ProjectID,
	}
	if opt.IsEmpty() {
		return task.TaskOutput{Task: existing}, nil
	}

	t, err := uc.repo.UpdateTask(ctx, input.ID, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.TaskOutput{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, task.ErrUpdateTask
	}

	if input.DueDate.Set || input.Content.Set {
		uc.mirrorReplace(ctx, t)
	}
	return task.TaskOutput{Task: t}, nil
}

// ToggleComplete sets the completion flag of a task.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, input task.ToggleInput) (task.TaskOutput, error) {
	return uc.Update(ctx, sc, task.UpdateInput{
		ID:        input.ID,
		Completed: model.Some(input.Completed),
	})
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if id == "" {
		return task.ErrMissingID
	}
	if _, err := uc.owned(ctx, "Delete", sc, id, task.ErrDeleteTask); err != nil {
		return err
	}

	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return task.ErrDeleteTask
	}

	uc.mirrorDelete(ctx, id)
	return nil
}

// DeleteProjectTasks removes all tasks of a project, completed ones included.
// It is not atomic: tasks deleted before a failure stay deleted.
func (uc *implUseCase) DeleteProjectTasks(ctx context.Context, sc model.Scope, projectID string) (int, error) {
	if projectID == "" {
		return 0, task.ErrMissingID
	}

	res, err := uc.repo.ListTasks(ctx, uc.views.AllProjectTasks(sc.UserID, projectID))
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteProjectTasks ListTasks: %v", err)
		return 0, task.ErrDeleteTask
	}

	deleted, failed := 0, 0
	for _, t := range res.Tasks {
		if err := uc.repo.DeleteTask(ctx, t.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "uc.DeleteProjectTasks DeleteTask %s: %v", t.ID, err)
			failed++
			continue
		}
		deleted++
		uc.mirrorDelete(ctx, t.ID)
	}

	if failed > 0 {
		uc.l.Warnf(ctx, "uc.DeleteProjectTasks: project=%s deleted=%d failed=%d", projectID, deleted, failed)
		return deleted, task.ErrDeleteTask
	}
	return deleted, nil
}

// owned loads a task and hides tasks of other owners behind ErrTaskNotFound.
func (uc *implUseCase) owned(ctx context.Context, op string, sc model.Scope, id string, failure error) (model.Task, error) {
	t, err := uc.repo.FindTaskByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.%s FindTaskByID: %v", op, err)
		return model.Task{}, failure
	}
	if t.UserID != sc.UserID {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
