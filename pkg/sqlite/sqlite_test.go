package sqlite

import (
	"path/filepath"
	"testing"
	"time"
)

func TestOpenRunsMigrations(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	for _, table := range []string{"tasks", "projects"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}

	// Reopening must not re-apply migrations.
	if err := Migrate(db); err != nil {
		t.Errorf("second Migrate() error = %v", err)
	}
}

func TestOpenMemory(t *testing.T) {
	db, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("Open(memory) error = %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO projects (id, name, color_name, color_hex, user_id, created_at, updated_at) VALUES ('p', 'n', 'slate', '#64748b', 'u', 'x', 'x')`); err != nil {
		t.Fatalf("insert: %v", err)
	}
	rows, err := db.Query(`SELECT id, name FROM projects`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := ScanRows(rows)
	if err != nil {
		t.Fatalf("ScanRows() error = %v", err)
	}
	if len(got) != 1 || got[0]["id"] != "p" || got[0]["name"] != "n" {
		t.Errorf("ScanRows() = %v", got)
	}
}

func TestTimeRoundTripSortsLexically(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	a := time.Date(2024, 6, 10, 9, 0, 0, 0, loc)
	b := a.Add(time.Nanosecond)

	if FormatTime(a) >= FormatTime(b) {
		t.Errorf("FormatTime order broken: %s >= %s", FormatTime(a), FormatTime(b))
	}
	got, err := ParseTime(FormatTime(a))
	if err != nil {
		t.Fatalf("ParseTime() error = %v", err)
	}
	if !got.Equal(a) {
		t.Errorf("ParseTime() = %v, want %v", got, a)
	}
	if _, err := ParseTime("2024-06-10T02:00:00Z"); err != nil {
		t.Errorf("ParseTime(RFC3339) error = %v", err)
	}
	if _, err := ParseTime(42); err == nil {
		t.Error("ParseTime(int) want error")
	}
}

func TestEncode(t *testing.T) {
	var nilTime *time.Time
	var nilString *string
	s := "p1"
	tests := []struct {
		in   any
		want any
	}{
		{in: true, want: 1},
		{in: false, want: 0},
		{in: nilTime, want: nil},
		{in: nilString, want: nil},
		{in: &s, want: "p1"},
		{in: "x", want: "x"},
		{in: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), want: "2024-06-10T00:00:00.000000000Z"},
	}
	for _, tc := range tests {
		if got := Encode(tc.in); got != tc.want {
			t.Errorf("Encode(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
