package mutation

import (
	"context"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// CreateTask submits a create form. On success onSuccess receives the
// stored task and the form is reset.
func (p *Pipeline) CreateTask(ctx context.Context, sc model.Scope, form *TaskForm, onSuccess func(model.Task)) Result {
	var created model.Task
	res := p.run(ctx, &form.Operation, ActionCreateTask, func(ctx context.Context) (Outcome, error) {
		content := strings.TrimSpace(form.Content)
		if content == "" {
			return Outcome{}, task.ErrEmptyContent
		}

		out, err := p.tasks.Create(ctx, sc, task.CreateInput{
			Content:   content,
			DueDate:   form.DueDate,
			ProjectID: form.ProjectID,
		})
		if err != nil {
			return Outcome{}, err
		}
		created = out.Task
		return successOutcome(ActionCreateTask), nil
	})

	if res.OK() {
		if onSuccess != nil {
			onSuccess(created)
		}
		form.Reset()
	}
	return res
}

// UpdateTask saves an edit form. targetID wins over form.ID; with neither
// set the call does nothing.
func (p *Pipeline) UpdateTask(ctx context.Context, sc model.Scope, targetID string, form *TaskForm) Result {
	id := targetID
	if id == "" {
		id = form.ID
	}
	if id == "" {
		return Result{Status: StatusSkipped}
	}

	return p.run(ctx, &form.Operation, ActionUpdateTask, func(ctx context.Context) (Outcome, error) {
		content := strings.TrimSpace(form.Content)
		if content == "" {
			return Outcome{}, task.ErrEmptyContent
		}

		_, err := p.tasks.Update(ctx, sc, task.UpdateInput{
			ID:        id,
			Content:   model.Some(content),
			DueDate:   model.Some(form.DueDate),
			ProjectID: model.Some(form.ProjectID),
		})
		if err != nil {
			return Outcome{}, err
		}
		return successOutcome(ActionUpdateTask), nil
	})
}

// ToggleComplete sets the completed flag. Completing with undoEnabled
// attaches an Undo that reopens the task through a second toggle.
func (p *Pipeline) ToggleComplete(ctx context.Context, sc model.Scope, op *Operation, taskID string, completed, undoEnabled bool) Result {
	return p.run(ctx, op, ActionToggleTask, func(ctx context.Context) (Outcome, error) {
		if taskID == "" {
			return Outcome{}, task.ErrMissingID
		}

		_, err := p.tasks.ToggleComplete(ctx, sc, task.ToggleInput{ID: taskID, Completed: completed})
		if err != nil {
			return Outcome{}, err
		}

		if !completed {
			return Outcome{Phase: PhaseSuccess, Title: msgTaskReopened.Title, Description: msgTaskReopened.Description}, nil
		}
		out := successOutcome(ActionToggleTask)
		if undoEnabled {
			out.Undo = &UndoAction{
				Label: msgUndoLabel,
				Run: func(ctx context.Context) Result {
					return p.ToggleComplete(ctx, sc, nil, taskID, !completed, false)
				},
			}
		}
		return out, nil
	})
}
