package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"personal-task-management/internal/mutation"
)

func run(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(append([]string{"--user", "u1", "--db", dbPath}, args...))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func decodeTasks(t *testing.T, out string) []taskView {
	t.Helper()
	var tasks []taskView
	if err := yaml.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return tasks
}

func TestTaskLifecycle(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	out, _, err := run(t, db, "add", "Buy", "milk", "--due", "today")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	added := decodeTasks(t, out)
	if len(added) != 1 || added[0].Content != "Buy milk" || added[0].Due == "" {
		t.Fatalf("added = %+v", added)
	}
	id := added[0].ID

	out, _, err = run(t, db, "today")
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if got := decodeTasks(t, out); len(got) != 1 || got[0].ID != id {
		t.Errorf("today = %+v", got)
	}

	_, stderr, err := run(t, db, "done", id)
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if !strings.Contains(stderr, "Task completed") || !strings.Contains(stderr, "taskctl undo "+id) {
		t.Errorf("done stderr = %q", stderr)
	}

	out, _, _ = run(t, db, "completed")
	if got := decodeTasks(t, out); len(got) != 1 || !got[0].Completed {
		t.Errorf("completed = %+v", got)
	}

	if _, _, err := run(t, db, "undo", id); err != nil {
		t.Fatalf("undo: %v", err)
	}
	out, _, _ = run(t, db, "inbox")
	if got := decodeTasks(t, out); len(got) != 1 || got[0].Completed {
		t.Errorf("inbox after undo = %+v", got)
	}

	if _, _, err := run(t, db, "rm", id); err != nil {
		t.Fatalf("rm: %v", err)
	}
	out, _, _ = run(t, db, "inbox")
	if got := decodeTasks(t, out); len(got) != 0 {
		t.Errorf("inbox after rm = %+v", got)
	}
}

func TestAddValidation(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	_, stderr, err := run(t, db, "add", "   ")
	if err == nil {
		t.Fatal("add blank: error = nil")
	}
	if !strings.Contains(stderr, "Task content cannot be empty.") {
		t.Errorf("stderr = %q", stderr)
	}

	if _, _, err := run(t, db, "add", "x", "--due", "someday maybe"); err == nil {
		t.Error("add bad due: error = nil")
	}
}

func TestProjectCascade(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	out, _, err := run(t, db, "projects", "add", "Work", "--color", "red")
	if err != nil {
		t.Fatalf("projects add: %v", err)
	}
	var p projectView
	if err := yaml.Unmarshal([]byte(out), &p); err != nil || p.Color != "red" {
		t.Fatalf("project = %+v (%v)", p, err)
	}

	if _, _, err := run(t, db, "add", "Write report", "--project", p.ID); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, _, _ = run(t, db, "projects", "tasks", p.ID)
	if got := decodeTasks(t, out); len(got) != 1 || got[0].Project != p.ID {
		t.Errorf("project tasks = %+v", got)
	}

	if _, _, err := run(t, db, "projects", "rm", p.ID); err == nil {
		t.Error("rm without --yes: error = nil")
	}
	if _, _, err := run(t, db, "projects", "rm", p.ID, "--yes"); err != nil {
		t.Fatalf("rm: %v", err)
	}
	out, _, _ = run(t, db, "projects")
	if strings.Contains(out, p.ID) {
		t.Errorf("project still listed: %s", out)
	}
	if _, _, err := run(t, db, "projects", "tasks", p.ID); err != nil {
		t.Fatalf("projects tasks: %v", err)
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	out, _, err := run(t, db, "projects", "add", "Party")
	if err != nil {
		t.Fatal(err)
	}
	var p projectView
	_ = yaml.Unmarshal([]byte(out), &p)

	_, stderr, err := run(t, db, "generate", "--project", p.ID, "plan a party")
	if err == nil {
		t.Fatal("generate: error = nil")
	}
	if !strings.Contains(stderr, "No tasks generated") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestStoreLock(t *testing.T) {
	db := filepath.Join(t.TempDir(), "tasks.db")

	lock := flock.New(db + ".lock")
	if ok, err := lock.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock = %v, %v", ok, err)
	}
	defer lock.Unlock()

	if _, _, err := run(t, db, "today"); err == nil || !strings.Contains(err.Error(), "in use") {
		t.Errorf("error = %v, want store in use", err)
	}
}

func TestStatusSink(t *testing.T) {
	var buf bytes.Buffer
	sink := newStatusSink(&buf, false)

	sink.Notify(mutation.Event{Phase: mutation.PhasePending, Title: "Creating task..."})
	sink.Notify(mutation.Event{Phase: mutation.PhaseSuccess, Title: "Tasks generated", Description: "2 of 3 tasks added."})
	sink.Notify(mutation.Event{Phase: mutation.PhaseError, Title: "Failed to create task", Description: "Please try again."})

	want := "Tasks generated: 2 of 3 tasks added.\nerror: Failed to create task: Please try again.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestOfferUndo(t *testing.T) {
	tests := []struct {
		input   string
		wantRun bool
	}{
		{input: "u\n", wantRun: true},
		{input: "U", wantRun: true},
		{input: "\n", wantRun: false},
		{input: "", wantRun: false},
	}
	for _, tt := range tests {
		ran := false
		undo := &mutation.UndoAction{
			Label: "Undo",
			Run: func(context.Context) mutation.Result {
				ran = true
				return mutation.Result{Status: mutation.StatusSucceeded}
			},
		}
		var w bytes.Buffer
		if err := offerUndo(context.Background(), strings.NewReader(tt.input), &w, undo); err != nil {
			t.Errorf("input %q: error = %v", tt.input, err)
		}
		if ran != tt.wantRun {
			t.Errorf("input %q: ran = %v, want %v", tt.input, ran, tt.wantRun)
		}
	}
}
