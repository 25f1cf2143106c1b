package mutation

import (
	"context"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
)

// CreateProject submits a project form.
func (p *Pipeline) CreateProject(ctx context.Context, sc model.Scope, form *ProjectForm, onSuccess func(model.Project)) Result {
	var created model.Project
	res := p.run(ctx, &form.Operation, ActionCreateProject, func(ctx context.Context) (Outcome, error) {
		name := strings.TrimSpace(form.Name)
		if name == "" {
			return Outcome{}, project.ErrEmptyName
		}

		out, err := p.projects.Create(ctx, sc, project.CreateInput{
			Name:      name,
			ColorName: form.ColorName,
			ColorHex:  form.ColorHex,
		})
		if err != nil {
			return Outcome{}, err
		}
		created = out.Project
		return successOutcome(ActionCreateProject), nil
	})

	if res.OK() {
		if onSuccess != nil {
			onSuccess(created)
		}
		form.Reset()
	}
	return res
}

// UpdateProject saves a project edit form. An empty ColorName keeps the
// stored color.
func (p *Pipeline) UpdateProject(ctx context.Context, sc model.Scope, targetID string, form *ProjectForm) Result {
	id := targetID
	if id == "" {
		id = form.ID
	}
	if id == "" {
		return Result{Status: StatusSkipped}
	}

	return p.run(ctx, &form.Operation, ActionUpdateProject, func(ctx context.Context) (Outcome, error) {
		name := strings.TrimSpace(form.Name)
		if name == "" {
			return Outcome{}, project.ErrEmptyName
		}

		input := project.UpdateInput{ID: id, Name: model.Some(name)}
		if form.ColorName != "" {
			input.ColorName = model.Some(form.ColorName)
			input.ColorHex = model.Some(form.ColorHex)
		}
		if _, err := p.projects.Update(ctx, sc, input); err != nil {
			return Outcome{}, err
		}
		return successOutcome(ActionUpdateProject), nil
	})
}
