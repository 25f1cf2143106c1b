package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

var taskSchema = query.Schema{
	Table: "tasks",
	Columns: []query.Column{
		{Attribute: query.AttrID, Name: "id"},
		{Attribute: model.AttrContent, Name: "content"},
		{Attribute: model.AttrDueDate, Name: "due_date"},
		{Attribute: model.AttrCompleted, Name: "completed"},
		{Attribute: model.AttrProjectID, Name: "project_id"},
		{Attribute: model.AttrUserID, Name: "user_id"},
		{Attribute: query.AttrCreatedAt, Name: "created_at"},
		{Attribute: query.AttrUpdatedAt, Name: "updated_at"},
	},
	Encode: pkgSqlite.Encode,
}

var timeColumns = map[string]bool{
	"due_date":   true,
	"created_at": true,
	"updated_at": true,
}

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed TaskRepository.
func New(db *sql.DB, l log.Logger) repository.TaskRepository {
	if db == nil {
		panic("task/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/sqlite.%s", method)
}
