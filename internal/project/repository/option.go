package repository

import (
	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
)

// CreateProjectOptions holds the stored fields of a new project.
type CreateProjectOptions struct {
	Name      string
	ColorName string
	ColorHex  string
	UserID    string
}

// UpdateProjectOptions is a partial update.
type UpdateProjectOptions struct {
	Name      model.Optional[string]
	ColorName model.Optional[string]
	ColorHex  model.Optional[string]
}

// IsEmpty reports whether no field is set.
func (o UpdateProjectOptions) IsEmpty() bool {
	return !o.Name.Set && !o.ColorName.Set && !o.ColorHex.Set
}

// Fields returns the set fields keyed by attribute.
func (o UpdateProjectOptions) Fields() query.Document {
	doc := query.Document{}
	if o.Name.Set {
		doc[model.AttrName] = o.Name.Value
	}
	if o.ColorName.Set {
		doc[model.AttrColorName] = o.ColorName.Value
	}
	if o.ColorHex.Set {
		doc[model.AttrColorHex] = o.ColorHex.Value
	}
	return doc
}
