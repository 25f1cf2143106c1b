package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
	"personal-task-management/internal/project/repository"
)

// Create validates and stores a new project owned by sc.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input project.CreateInput) (project.ProjectOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return project.ProjectOutput{}, err
	}
	color, err := resolveColor(input.ColorName, input.ColorHex)
	if err != nil {
		return project.ProjectOutput{}, err
	}

	p, err := uc.repo.CreateProject(ctx, input.ID, repository.CreateProjectOptions{
		Name:      name,
		ColorName: color.Name,
		ColorHex:  color.Hex,
		UserID:    sc.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateProject: %v", err)
		return project.ProjectOutput{}, project.ErrCreateProject
	}
	return project.ProjectOutput{Project: p}, nil
}
