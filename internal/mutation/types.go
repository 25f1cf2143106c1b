package mutation

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// Status is how a pipeline call ended.
type Status int

const (
	// StatusDropped: the Operation was already pending.
	StatusDropped Status = iota
	// StatusSkipped: nothing to act on, no notification was emitted.
	StatusSkipped
	StatusSucceeded
	StatusFailed
)

// Result of a pipeline call. Err is a package sentinel, safe to compare.
type Result struct {
	Status   Status
	HandleID string
	Err      error
}

// OK reports a successful run.
func (r Result) OK() bool { return r.Status == StatusSucceeded }

// TaskForm is the editable state of a task create or edit form.
type TaskForm struct {
	Operation

	ID        string
	Content   string
	DueDate   *time.Time
	ProjectID *string
}

// Reset clears the input fields. ID is kept so an edit form stays bound.
func (f *TaskForm) Reset() {
	f.Content = ""
	f.DueDate = nil
	f.ProjectID = nil
}

// ProjectForm is the editable state of a project form.
type ProjectForm struct {
	Operation

	ID        string
	Name      string
	ColorName string
	ColorHex  string
}

func (f *ProjectForm) Reset() {
	f.Name = ""
	f.ColorName = ""
	f.ColorHex = ""
}

// TargetKind tags a delete Target.
type TargetKind string

const (
	TargetTask    TargetKind = "task"
	TargetProject TargetKind = "project"
)

// Target is what a delete confirmation acts on.
type Target struct {
	Kind TargetKind
	ID   string
}

// BulkFailure is one candidate that could not be stored.
type BulkFailure struct {
	Index     int
	Candidate task.Candidate
	Err       error
}

// BulkResult lists what a bulk create stored. Created keeps candidate order.
type BulkResult struct {
	Result
	Created []model.Task
	Failed  []BulkFailure
}
