package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
	"personal-task-management/internal/schedule"
)

// List returns the user's projects, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input project.ListInput) (project.ListOutput, error) {
	q := uc.views.UserProjects(sc.UserID, schedule.ProjectListOptions{
		Search: input.Search,
		Limit:  input.Limit,
	})
	res, err := uc.repo.ListProjects(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListProjects: %v", err)
		return project.ListOutput{}, project.ErrLoadProjects
	}
	return project.ListOutput{Projects: res.Projects, Total: res.Total}, nil
}
