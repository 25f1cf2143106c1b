package sqlite

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

func (r *implRepository) selectProjects(ctx context.Context, st query.Statement) ([]model.Project, error) {
	stmt, args := st.SelectSQL()
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	raw, err := pkgSqlite.ScanRows(rows)
	if err != nil {
		return nil, err
	}

	projects := make([]model.Project, 0, len(raw))
	for _, row := range raw {
		doc := make(query.Document, len(row))
		for col, v := range row {
			attr := projectSchema.AttributeOf(col)
			if (col == "created_at" || col == "updated_at") && v != nil {
				t, err := pkgSqlite.ParseTime(v)
				if err != nil {
					return nil, err
				}
				doc[attr] = t
				continue
			}
			doc[attr] = v
		}
		projects = append(projects, model.ProjectFromDocument(doc))
	}
	return projects, nil
}

func (r *implRepository) count(ctx context.Context, st query.Statement) (int, error) {
	stmt, args := st.CountSQL()
	var total int
	err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&total)
	return total, err
}
