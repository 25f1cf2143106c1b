package repository

import (
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
)

// CreateTaskOptions holds the stored fields of a new task.
type CreateTaskOptions struct {
	Content   string
	DueDate   *time.Time
	Completed bool
	ProjectID *string
	UserID    string
}

// Document renders the options as a store document without system fields.
func (o CreateTaskOptions) Document() query.Document {
	t := model.Task{
		Content:   o.Content,
		DueDate:   o.DueDate,
		Completed: o.Completed,
		ProjectID: o.ProjectID,
		UserID:    o.UserID,
	}
	doc := t.Document()
	delete(doc, query.AttrID)
	delete(doc, query.AttrCreatedAt)
	delete(doc, query.AttrUpdatedAt)
	return doc
}

// UpdateTaskOptions is a partial update; unset fields are left untouched.
// UserID is immutable and has no field here.
type UpdateTaskOptions struct {
	Content   model.Optional[string]
	DueDate   model.Optional[*time.Time]
	Completed model.Optional[bool]
	ProjectID model.Optional[*string]
}

// IsEmpty reports whether no field is set.
func (o UpdateTaskOptions) IsEmpty() bool {
	return !o.Content.Set && !o.DueDate.Set && !o.Completed.Set && !o.ProjectID.Set
}

// Fields returns the set fields keyed by attribute. Cleared nullable fields map to nil.
func (o UpdateTaskOptions) Fields() query.Document {
	doc := query.Document{}
	if o.Content.Set {
		doc[model.AttrContent] = o.Content.Value
	}
	if o.DueDate.Set {
		doc[model.AttrDueDate] = nil
		if o.DueDate.Value != nil {
			doc[model.AttrDueDate] = *o.DueDate.Value
		}
	}
	if o.Completed.Set {
		doc[model.AttrCompleted] = o.Completed.Value
	}
	if o.ProjectID.Set {
		doc[model.AttrProjectID] = nil
		if o.ProjectID.Value != nil {
			doc[model.AttrProjectID] = *o.ProjectID.Value
		}
	}
	return doc
}
