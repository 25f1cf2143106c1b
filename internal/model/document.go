package model

import (
	"time"

	"personal-task-management/internal/query"
)

// Document converts t to its store representation.
func (t Task) Document() query.Document {
	doc := query.Document{
		query.AttrID:        t.ID,
		AttrContent:         t.Content,
		AttrCompleted:       t.Completed,
		AttrUserID:          t.UserID,
		AttrDueDate:         nil,
		AttrProjectID:       nil,
		query.AttrCreatedAt: t.CreatedAt,
		query.AttrUpdatedAt: t.UpdatedAt,
	}
	if t.DueDate != nil {
		doc[AttrDueDate] = *t.DueDate
	}
	if t.ProjectID != nil {
		doc[AttrProjectID] = *t.ProjectID
	}
	return doc
}

// TaskFromDocument converts a (possibly projected) document into a Task.
// Missing attributes keep their zero value.
func TaskFromDocument(doc query.Document) Task {
	return Task{
		ID:        stringAttr(doc, query.AttrID),
		Content:   stringAttr(doc, AttrContent),
		DueDate:   timePtrAttr(doc, AttrDueDate),
		Completed: boolAttr(doc, AttrCompleted),
		ProjectID: stringPtrAttr(doc, AttrProjectID),
		UserID:    stringAttr(doc, AttrUserID),
		CreatedAt: timeAttr(doc, query.AttrCreatedAt),
		UpdatedAt: timeAttr(doc, query.AttrUpdatedAt),
	}
}

// Document converts p to its store representation.
func (p Project) Document() query.Document {
	return query.Document{
		query.AttrID:        p.ID,
		AttrName:            p.Name,
		AttrColorName:       p.ColorName,
		AttrColorHex:        p.ColorHex,
		AttrUserID:          p.UserID,
		query.AttrCreatedAt: p.CreatedAt,
		query.AttrUpdatedAt: p.UpdatedAt,
	}
}

// ProjectFromDocument converts a (possibly projected) document into a Project.
func ProjectFromDocument(doc query.Document) Project {
	return Project{
		ID:        stringAttr(doc, query.AttrID),
		Name:      stringAttr(doc, AttrName),
		ColorName: stringAttr(doc, AttrColorName),
		ColorHex:  stringAttr(doc, AttrColorHex),
		UserID:    stringAttr(doc, AttrUserID),
		CreatedAt: timeAttr(doc, query.AttrCreatedAt),
		UpdatedAt: timeAttr(doc, query.AttrUpdatedAt),
	}
}

func stringAttr(doc query.Document, attr string) string {
	switch v := doc[attr].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func stringPtrAttr(doc query.Document, attr string) *string {
	if doc[attr] == nil {
		return nil
	}
	s := stringAttr(doc, attr)
	return &s
}

func boolAttr(doc query.Document, attr string) bool {
	switch v := doc[attr].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

func timeAttr(doc query.Document, attr string) time.Time {
	if t := timePtrAttr(doc, attr); t != nil {
		return *t
	}
	return time.Time{}
}

func timePtrAttr(doc query.Document, attr string) *time.Time {
	switch v := doc[attr].(type) {
	case time.Time:
		return &v
	case *time.Time:
		return v
	}
	return nil
}
