package usecase

import (
	"personal-task-management/internal/project/repository"
	"personal-task-management/internal/schedule"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/log"
)

// implUseCase is the private implementation of project.UseCase.
type implUseCase struct {
	l      log.Logger
	repo   repository.ProjectRepository
	taskUC task.UseCase
	views  schedule.Views
}

// New creates a project UseCase. taskUC removes a project's tasks on delete.
func New(l log.Logger, repo repository.ProjectRepository, taskUC task.UseCase, clock datemath.Clock) *implUseCase {
	return &implUseCase{
		l:      l,
		repo:   repo,
		taskUC: taskUC,
		views:  schedule.NewViews(clock),
	}
}
