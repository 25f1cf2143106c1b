package project

import "personal-task-management/internal/model"

// --- UseCase Inputs ---

// CreateInput creates a project. An empty color picks the default.
type CreateInput struct {
	ID        string
	Name      string
	ColorName string
	ColorHex  string
}

// UpdateInput is a partial edit. Color name and hex are changed together.
type UpdateInput struct {
	ID        string
	Name      model.Optional[string]
	ColorName model.Optional[string]
	ColorHex  model.Optional[string]
}

// ListInput narrows the project list. Empty Search and zero Limit mean no filter.
type ListInput struct {
	Search string
	Limit  int
}

// --- UseCase Outputs ---

type ListOutput struct {
	Projects []model.Project
	Total    int
}

type ProjectOutput struct {
	Project model.Project
}

// DeleteOutput reports the cascade.
type DeleteOutput struct {
	DeletedTasks int
}
