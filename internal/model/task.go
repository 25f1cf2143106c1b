package model

import "time"

// Task attribute names as stored in the document store.
const (
	AttrContent   = "content"
	AttrDueDate   = "due_date"
	AttrCompleted = "completed"
	AttrProjectID = "projectId"
	AttrUserID    = "userId"
)

// Task is a single to-do item. A nil ProjectID means the task lives in the Inbox.
type Task struct {
	ID        string
	Content   string
	DueDate   *time.Time
	Completed bool
	ProjectID *string
	UserID    string // immutable after creation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// InProject reports whether the task belongs to the given project.
func (t Task) InProject(projectID string) bool {
	return t.ProjectID != nil && *t.ProjectID == projectID
}
