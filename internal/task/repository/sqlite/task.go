package sqlite

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task/repository"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

// FindTaskByID loads one task.
func (r *implRepository) FindTaskByID(ctx context.Context, id string) (model.Task, error) {
	st, err := taskSchema.Translate(query.New(query.Equal(query.AttrID, id), query.Limit(1)))
	if err != nil {
		return model.Task{}, repository.ErrInvalidQuery
	}
	docs, err := r.selectDocuments(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindTaskByID"), err)
		return model.Task{}, repository.ErrFailedToGet
	}
	if len(docs) == 0 {
		return model.Task{}, repository.ErrNotFound
	}
	return model.TaskFromDocument(docs[0]), nil
}

// ListTasks returns the page selected by q and the total match count.
func (r *implRepository) ListTasks(ctx context.Context, q query.Query) (repository.TaskList, error) {
	st, err := taskSchema.Translate(q)
	if err != nil {
		r.l.Warnf(ctx, "%s translate: %v", r.dsn("ListTasks"), err)
		return repository.TaskList{}, repository.ErrInvalidQuery
	}

	// 1. Count total (no paging)
	total, err := r.count(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return repository.TaskList{}, repository.ErrFailedToList
	}

	// 2. Fetch page
	docs, err := r.selectDocuments(ctx, st)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return repository.TaskList{}, repository.ErrFailedToList
	}

	return repository.TaskList{Total: total, Tasks: tasksFromDocuments(docs)}, nil
}

// CreateTask inserts a task row.
func (r *implRepository) CreateTask(ctx context.Context, id string, opt repository.CreateTaskOptions) (model.Task, error) {
	if id == "" {
		id = uuid.NewString()
	}
	now := r.now().UTC()

	const stmt = `
		INSERT INTO tasks (id, content, due_date, completed, project_id, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, stmt,
		id,
		opt.Content,
		pkgSqlite.Encode(opt.DueDate),
		pkgSqlite.Encode(opt.Completed),
		pkgSqlite.Encode(opt.ProjectID),
		opt.UserID,
		pkgSqlite.FormatTime(now),
		pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	return model.Task{
		ID:        id,
		Content:   opt.Content,
		DueDate:   opt.DueDate,
		Completed: opt.Completed,
		ProjectID: opt.ProjectID,
		UserID:    opt.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateTask writes the set fields and returns the stored task.
func (r *implRepository) UpdateTask(ctx context.Context, id string, opt repository.UpdateTaskOptions) (model.Task, error) {
	fields := opt.Fields()
	sets := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)

	// iterate the schema so the statement is deterministic
	for _, c := range taskSchema.Columns {
		v, ok := fields[c.Attribute]
		if !ok {
			continue
		}
		sets = append(sets, c.Name+" = ?")
		args = append(args, pkgSqlite.Encode(v))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, pkgSqlite.FormatTime(r.now()), id)

	stmt := fmt.Sprintf("UPDATE tasks SET %s WHERE id = ?", strings.Join(sets, ", "))
	res, err := r.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repository.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Task{}, repository.ErrNotFound
	}

	t, err := r.FindTaskByID(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, repository.ErrFailedToUpdate
	}
	return t, err
}

// DeleteTask removes a task row.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repository.ErrFailedToDelete
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
