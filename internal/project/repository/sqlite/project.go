package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project/repository"
	"personal-task-management/internal/query"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

// FindProjectByID loads one project.
func (r *implRepository) FindProjectByID(ctx context.Context, id string) (model.Project, error) {
	st, err := projectSchema.Translate(query.New(query.Equal(query.AttrID, id), query.Limit(1)))
	if err != nil {
		return model.Project{}, repository.ErrInvalidQuery
	}
	projects, err := r.selectProjects(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindProjectByID"), err)
		return model.Project{}, repository.ErrFailedToGet
	}
	if len(projects) == 0 {
		return model.Project{}, repository.ErrNotFound
	}
	return projects[0], nil
}

// ListProjects returns the page selected by q and the total match count.
func (r *implRepository) ListProjects(ctx context.Context, q query.Query) (repository.ProjectList, error) {
	st, err := projectSchema.Translate(q)
	if err != nil {
		r.l.Warnf(ctx, "%s translate: %v", r.dsn("ListProjects"), err)
		return repository.ProjectList{}, repository.ErrInvalidQuery
	}

	total, err := r.count(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListProjects"), err)
		return repository.ProjectList{}, repository.ErrFailedToList
	}
	projects, err := r.selectProjects(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListProjects"), err)
		return repository.ProjectList{}, repository.ErrFailedToList
	}
	return repository.ProjectList{Total: total, Projects: projects}, nil
}

// CreateProject inserts a project row.
func (r *implRepository) CreateProject(ctx context.Context, id string, opt repository.CreateProjectOptions) (model.Project, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := r.now().UTC()

	const stmt = `
		INSERT INTO projects (id, name, color_name, color_hex, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, stmt,
		id, opt.Name, opt.ColorName, opt.ColorHex, opt.UserID,
		pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateProject"), err)
		return model.Project{}, repository.ErrFailedToInsert
	}

	return model.Project{
		ID:        id,
		Name:      opt.Name,
		ColorName: opt.ColorName,
		ColorHex:  opt.ColorHex,
		UserID:    opt.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateProject writes the set fields and returns the stored project.
func (r *implRepository) UpdateProject(ctx context.Context, id string, opt repository.UpdateProjectOptions) (model.Project, error) {
	fields := opt.Fields()
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, c := range projectSchema.Columns {
		if v, ok := fields[c.Attribute]; ok {
			sets = append(sets, c.Name+" = ?")
			args = append(args, v)
		}
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, pkgSqlite.FormatTime(r.now()), id)

	res, err := r.db.ExecContext(ctx, fmt.Sprintf("UPDATE projects SET %s WHERE id = ?", strings.Join(sets, ", ")), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateProject"), err)
		return model.Project{}, repository.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Project{}, repository.ErrNotFound
	}

	p, err := r.FindProjectByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return model.Project{}, repository.ErrFailedToUpdate
	}
	return p, err
}

// DeleteProject removes a project row. Its tasks are not touched here.
func (r *implRepository) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteProject"), err)
		return repository.ErrFailedToDelete
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
