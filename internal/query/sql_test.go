package query_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"personal-task-management/internal/query"
)

var taskSchema = query.Schema{
	Table: "tasks",
	Columns: []query.Column{
		{Attribute: query.AttrID, Name: "id"},
		{Attribute: "content", Name: "content"},
		{Attribute: "due_date", Name: "due_date"},
		{Attribute: "completed", Name: "completed"},
		{Attribute: "userId", Name: "user_id"},
	},
	Encode: func(v any) any {
		switch x := v.(type) {
		case bool:
			if x {
				return 1
			}
			return 0
		case time.Time:
			return x.UTC().Format(time.RFC3339)
		}
		return v
	},
}

func TestSchemaTranslate(t *testing.T) {
	from := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	st, err := taskSchema.Translate(query.New(
		query.Equal("userId", "u1"),
		query.Equal("completed", false),
		query.GreaterThanEqual("due_date", from),
		query.OrderAsc("due_date"),
		query.Limit(5),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql, args := st.SelectSQL()
	wantSQL := "SELECT id, content, due_date, completed, user_id FROM tasks WHERE user_id = ? AND completed = ? AND due_date >= ? ORDER BY due_date ASC, rowid ASC LIMIT ?"
	if sql != wantSQL {
		t.Errorf("SelectSQL:\n got  %s\n want %s", sql, wantSQL)
	}
	wantArgs := []any{"u1", 0, "2024-06-10T00:00:00Z", 5}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("args = %v, want %v", args, wantArgs)
	}

	countSQL, countArgs := st.CountSQL()
	if countSQL != "SELECT COUNT(*) FROM tasks WHERE user_id = ? AND completed = ? AND due_date >= ?" {
		t.Errorf("CountSQL = %s", countSQL)
	}
	if len(countArgs) != 3 {
		t.Errorf("count args should exclude the limit, got %v", countArgs)
	}
}

func TestSchemaTranslateProjectionAndContains(t *testing.T) {
	st, err := taskSchema.Translate(query.New(
		query.Select(query.AttrID),
		query.Contains("content", "rent"),
		query.Offset(10),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql, args := st.SelectSQL()
	want := "SELECT id FROM tasks WHERE instr(lower(content), lower(?)) > 0 ORDER BY rowid ASC LIMIT -1 OFFSET ?"
	if sql != want {
		t.Errorf("SelectSQL:\n got  %s\n want %s", sql, want)
	}
	if !reflect.DeepEqual(args, []any{"rent", 10}) {
		t.Errorf("args = %v", args)
	}
}

func TestSchemaTranslateUnknownAttribute(t *testing.T) {
	_, err := taskSchema.Translate(query.New(query.Equal("priority", "high")))
	if !errors.Is(err, query.ErrInvalidPredicate) {
		t.Fatalf("expected ErrInvalidPredicate, got %v", err)
	}
}
