package project

import (
	"context"

	"personal-task-management/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ProjectOutput, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (ProjectOutput, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (ProjectOutput, error)
	// Delete removes the project's tasks, then the project.
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
}
