package sqlite

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

// selectDocuments runs a translated page query and decodes each row.
func (r *implRepository) selectDocuments(ctx context.Context, st query.Statement) ([]query.Document, error) {
	stmt, args := st.SelectSQL()
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	raw, err := pkgSqlite.ScanRows(rows)
	if err != nil {
		return nil, err
	}

	docs := make([]query.Document, 0, len(raw))
	for _, row := range raw {
		doc, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// count runs the total query of st.
func (r *implRepository) count(ctx context.Context, st query.Statement) (int, error) {
	stmt, args := st.CountSQL()
	var total int
	if err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func decodeRow(row map[string]any) (query.Document, error) {
	doc := make(query.Document, len(row))
	for col, v := range row {
		attr := taskSchema.AttributeOf(col)
		switch {
		case v == nil:
			doc[attr] = nil
		case timeColumns[col]:
			t, err := pkgSqlite.ParseTime(v)
			if err != nil {
				return nil, err
			}
			doc[attr] = t
		case col == "completed":
			n, _ := v.(int64)
			doc[attr] = n != 0
		default:
			doc[attr] = v
		}
	}
	return doc, nil
}

func tasksFromDocuments(docs []query.Document) []model.Task {
	tasks := make([]model.Task, len(docs))
	for i, d := range docs {
		tasks[i] = model.TaskFromDocument(d)
	}
	return tasks
}
