package usecase

import (
	"context"
	"errors"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
	"personal-task-management/internal/project/repository"
)

// Detail returns one project of sc.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (project.ProjectOutput, error) {
	if id == "" {
		return project.ProjectOutput{}, project.ErrMissingID
	}
	p, err := uc.owned(ctx, "Detail", sc, id, project.ErrLoadProject)
	if err != nil {
		return project.ProjectOutput{}, err
	}
	return project.ProjectOutput{Project: p}, nil
}

// Update renames or recolors a project.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input project.UpdateInput) (project.ProjectOutput, error) {
	if input.ID == "" {
		return project.ProjectOutput{}, project.ErrMissingID
	}

	opt := repository.UpdateProjectOptions{}
	if input.Name.Set {
		name, err := validateName(input.Name.Value)
		if err != nil {
			return project.ProjectOutput{}, err
		}
		opt.Name = model.Some(name)
	}
	if input.ColorName.Set || input.ColorHex.Set {
		color, err := resolveColor(input.ColorName.Value, input.ColorHex.Value)
		if err != nil {
			return project.ProjectOutput{}, err
		}
		opt.ColorName = model.Some(color.Name)
		opt.ColorHex = model.Some(color.Hex)
	}

	existing, err := uc.owned(ctx, "Update", sc, input.ID, project.ErrUpdateProject)
	if err != nil {
		return project.ProjectOutput{}, err
	}
	if opt.IsEmpty() {
		return project.ProjectOutput{Project: existing}, nil
	}

	p, err := uc.repo.UpdateProject(ctx, input.ID, opt)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.ProjectOutput{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.Update UpdateProject: %v", err)
		return project.ProjectOutput{}, project.ErrUpdateProject
	}
	return project.ProjectOutput{Project: p}, nil
}

// Delete cascades to the project's tasks first. If any task cannot be
// removed the project is kept so the delete can be retried; tasks already
// removed stay removed.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (project.DeleteOutput, error) {
	if id == "" {
		return project.DeleteOutput{}, project.ErrMissingID
	}
	if _, err := uc.owned(ctx, "Delete", sc, id, project.ErrDeleteProject); err != nil {
		return project.DeleteOutput{}, err
	}

	n, err := uc.taskUC.DeleteProjectTasks(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteProjectTasks: deleted=%d: %v", n, err)
		return project.DeleteOutput{DeletedTasks: n}, project.ErrDeleteProject
	}

	if err := uc.repo.DeleteProject(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return project.DeleteOutput{DeletedTasks: n}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.Delete DeleteProject: %v", err)
		return project.DeleteOutput{DeletedTasks: n}, project.ErrDeleteProject
	}

	uc.l.Infof(ctx, "uc.Delete: project=%s removed with %d tasks", id, n)
	return project.DeleteOutput{DeletedTasks: n}, nil
}

func (uc *implUseCase) owned(ctx context.Context, op string, sc model.Scope, id string, failure error) (model.Project, error) {
	p, err := uc.repo.FindProjectByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Project{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "uc.%s FindProjectByID: %v", op, err)
		return model.Project{}, failure
	}
	if p.UserID != sc.UserID {
		return model.Project{}, project.ErrProjectNotFound
	}
	return p, nil
}
