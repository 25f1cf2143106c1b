package schedule

import (
	"personal-task-management/internal/model"
	"personal-task-management/pkg/datemath"
)

// Bucket is the view a task belongs to.
type Bucket string

const (
	BucketInbox     Bucket = "inbox"
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketCompleted Bucket = "completed"
	BucketProject   Bucket = "project"
	// BucketNone is a pending, project-less task that is already overdue.
	// No named view lists it.
	BucketNone Bucket = ""
)

// Classify applies the bucket rule, first match wins:
// completed, project, today, upcoming, inbox.
func Classify(t model.Task, w datemath.Window) Bucket {
	switch {
	case t.Completed:
		return BucketCompleted
	case t.ProjectID != nil:
		return BucketProject
	case t.DueDate != nil && w.Contains(*t.DueDate):
		return BucketToday
	case t.DueDate != nil && !t.DueDate.Before(w.StartOfToday):
		return BucketUpcoming
	case t.DueDate == nil:
		return BucketInbox
	}
	return BucketNone
}
