package task

import (
	"time"

	"personal-task-management/internal/model"
)

// Candidate is a drafted task before normalization. Nil fields take
// defaults: no due date, not completed.
type Candidate struct {
	Content   string
	DueDate   *time.Time
	Completed *bool
}

// TaskCounts are the navigation badge totals.
type TaskCounts struct {
	InboxTasks int `json:"inboxTasks"`
	TodayTasks int `json:"todayTasks"`
}

// --- UseCase Inputs ---

// CreateInput creates a task. An empty ID is generated by the store.
type CreateInput struct {
	ID        string
	Content   string
	DueDate   *time.Time
	Completed bool
	ProjectID *string
}

// UpdateInput is a partial edit; unset fields keep their stored value.
type UpdateInput struct {
	ID        string
	Content   model.Optional[string]
	DueDate   model.Optional[*time.Time]
	Completed model.Optional[bool]
	ProjectID model.Optional[*string]
}

// ToggleInput sets the completion flag.
type ToggleInput struct {
	ID        string
	Completed bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks []model.Task
	Total int
}

type TaskOutput struct {
	Task model.Task
}
