package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project/repository"
	"personal-task-management/internal/query"
	"personal-task-management/pkg/log"
	pkgSqlite "personal-task-management/pkg/sqlite"
)

var projectSchema = query.Schema{
	Table: "projects",
	Columns: []query.Column{
		{Attribute: query.AttrID, Name: "id"},
		{Attribute: model.AttrName, Name: "name"},
		{Attribute: model.AttrColorName, Name: "color_name"},
		{Attribute: model.AttrColorHex, Name: "color_hex"},
		{Attribute: model.AttrUserID, Name: "user_id"},
		{Attribute: query.AttrCreatedAt, Name: "created_at"},
		{Attribute: query.AttrUpdatedAt, Name: "updated_at"},
	},
	Encode: pkgSqlite.Encode,
}

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a SQLite-backed ProjectRepository.
func New(db *sql.DB, l log.Logger) repository.ProjectRepository {
	if db == nil {
		panic("project/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("project/repository/sqlite.%s", method)
}
