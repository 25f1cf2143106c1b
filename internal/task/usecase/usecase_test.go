package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task"
	"personal-task-management/internal/task/repository"
	"personal-task-management/internal/task/repository/memory"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/gcalendar"
)

var (
	june10 = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	owner  = model.Scope{UserID: "u1"}
)

func newTestUseCase(cal Calendar) (*implUseCase, *mockRepo) {
	repo := &mockRepo{TaskRepository: memory.New()}
	uc := New(&mockLogger{}, repo, datemath.FixedClock(june10.Add(10*time.Hour)), cal, CalendarConfig{Timezone: "UTC"})
	return uc, repo
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrString(s string) *string     { return &s }

func mustCreate(t *testing.T, uc *implUseCase, in task.CreateInput) model.Task {
	t.Helper()
	out, err := uc.Create(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", in.Content, err)
	}
	return out.Task
}

func TestCreateValidation(t *testing.T) {
	uc, repo := newTestUseCase(nil)

	for _, content := range []string{"", "   "} {
		if _, err := uc.Create(context.Background(), owner, task.CreateInput{Content: content}); !errors.Is(err, task.ErrEmptyContent) {
			t.Errorf("Create(%q) error = %v, want ErrEmptyContent", content, err)
		}
	}
	if n := repo.callCount("CreateTask"); n != 0 {
		t.Errorf("CreateTask called %d times on invalid input", n)
	}

	got := mustCreate(t, uc, task.CreateInput{Content: "  Pay rent  "})
	if got.Content != "Pay rent" || got.UserID != "u1" || got.Completed || got.DueDate != nil || got.ProjectID != nil {
		t.Errorf("Create() = %+v", got)
	}
}

func TestServiceErrorsAreWrapped(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	cause := errors.New("disk on fire")
	repo.listFn = func(context.Context, query.Query) (repository.TaskList, error) {
		return repository.TaskList{}, cause
	}
	repo.createFn = func(context.Context, string, repository.CreateTaskOptions) (model.Task, error) {
		return model.Task{}, cause
	}
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
		want error
	}{
		{name: "today", call: func() error { _, err := uc.Today(ctx, owner); return err }, want: task.ErrLoadToday},
		{name: "inbox", call: func() error { _, err := uc.Inbox(ctx, owner); return err }, want: task.ErrLoadInbox},
		{name: "upcoming", call: func() error { _, err := uc.Upcoming(ctx, owner); return err }, want: task.ErrLoadUpcoming},
		{name: "completed", call: func() error { _, err := uc.Completed(ctx, owner); return err }, want: task.ErrLoadCompleted},
		{name: "project", call: func() error { _, err := uc.ProjectTasks(ctx, owner, "p1"); return err }, want: task.ErrLoadProject},
		{name: "today count", call: func() error { _, err := uc.TodayTaskCount(ctx, owner); return err }, want: task.ErrCountToday},
		{name: "create", call: func() error { _, err := uc.Create(ctx, owner, task.CreateInput{Content: "x"}); return err }, want: task.ErrCreateTask},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
			if errors.Is(err, cause) {
				t.Error("original error leaked to the caller")
			}
		})
	}
}

func TestViewsAndCounts(t *testing.T) {
	uc, _ := newTestUseCase(nil)
	ctx := context.Background()

	mustCreate(t, uc, task.CreateInput{Content: "A", DueDate: ptrTime(june10.Add(9 * time.Hour))})
	mustCreate(t, uc, task.CreateInput{Content: "B", DueDate: ptrTime(june10.AddDate(0, 0, 1))})
	mustCreate(t, uc, task.CreateInput{Content: "C"})
	mustCreate(t, uc, task.CreateInput{Content: "D", Completed: true, DueDate: ptrTime(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))})
	mustCreate(t, uc, task.CreateInput{Content: "F", DueDate: ptrTime(june10), ProjectID: ptrString("p1")})

	// Today lists project tasks too; only Inbox is project-less.
	today, err := uc.Today(ctx, owner)
	if err != nil || len(today.Tasks) != 2 || today.Tasks[0].Content != "A" || today.Tasks[1].Content != "F" {
		t.Fatalf("Today() = %+v, %v", today, err)
	}
	upcoming, _ := uc.Upcoming(ctx, owner)
	if len(upcoming.Tasks) != 3 || upcoming.Tasks[len(upcoming.Tasks)-1].Content != "B" {
		t.Errorf("Upcoming() = %+v", upcoming.Tasks)
	}
	completed, _ := uc.Completed(ctx, owner)
	if len(completed.Tasks) != 1 || completed.Tasks[0].Content != "D" {
		t.Errorf("Completed() = %+v", completed.Tasks)
	}

	counts, err := uc.TaskCounts(ctx, owner)
	if err != nil {
		t.Fatalf("TaskCounts() error = %v", err)
	}
	inbox, _ := uc.Inbox(ctx, owner)
	if counts.TodayTasks != len(today.Tasks) || counts.InboxTasks != len(inbox.Tasks) {
		t.Errorf("TaskCounts() = %+v, want today=%d inbox=%d", counts, len(today.Tasks), len(inbox.Tasks))
	}

	other, _ := uc.Today(ctx, model.Scope{UserID: "u2"})
	if len(other.Tasks) != 0 {
		t.Errorf("Today(u2) leaked %d tasks", len(other.Tasks))
	}
}

func TestTaskCountsFirstErrorWins(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	release := make(chan struct{})
	defer close(release)

	repo.listFn = func(_ context.Context, q query.Query) (repository.TaskList, error) {
		if q.Has(query.MethodIsNull) {
			return repository.TaskList{}, errors.New("inbox failed")
		}
		// today's count never settles until the test ends
		<-release
		return repository.TaskList{Total: 3}, nil
	}

	done := make(chan error, 1)
	go func() {
		_, err := uc.TaskCounts(context.Background(), owner)
		done <- err
	}()

	select {
	case err := <-done:
		if !errors.Is(err, task.ErrCountInbox) {
			t.Errorf("TaskCounts() error = %v, want ErrCountInbox", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TaskCounts() waited for the pending count after a failure")
	}
}

func TestTaskCountsRunConcurrently(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	started := make(chan struct{}, 2)
	gate := make(chan struct{})

	repo.listFn = func(_ context.Context, q query.Query) (repository.TaskList, error) {
		started <- struct{}{}
		<-gate
		if q.Has(query.MethodIsNull) {
			return repository.TaskList{Total: 4}, nil
		}
		return repository.TaskList{Total: 2}, nil
	}

	done := make(chan task.TaskCounts, 1)
	go func() {
		c, _ := uc.TaskCounts(context.Background(), owner)
		done <- c
	}()

	// both queries must be in flight before either is allowed to finish
	for range 2 {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("counts ran sequentially")
		}
	}
	close(gate)

	if c := <-done; c.InboxTasks != 4 || c.TodayTasks != 2 {
		t.Errorf("TaskCounts() = %+v, want inbox=4 today=2", c)
	}
}

func TestUpdateToggleDelete(t *testing.T) {
	uc, _ := newTestUseCase(nil)
	ctx := context.Background()
	created := mustCreate(t, uc, task.CreateInput{Content: "A", ProjectID: ptrString("p1")})

	if _, err := uc.Update(ctx, owner, task.UpdateInput{}); !errors.Is(err, task.ErrMissingID) {
		t.Errorf("Update(no id) error = %v, want ErrMissingID", err)
	}
	if _, err := uc.Update(ctx, owner, task.UpdateInput{ID: created.ID, Content: model.Some(" ")}); !errors.Is(err, task.ErrEmptyContent) {
		t.Errorf("Update(blank content) error = %v, want ErrEmptyContent", err)
	}
	if _, err := uc.Update(ctx, model.Scope{UserID: "u2"}, task.UpdateInput{ID: created.ID, Content: model.Some("x")}); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update(other owner) error = %v, want ErrTaskNotFound", err)
	}

	moved, err := uc.Update(ctx, owner, task.UpdateInput{ID: created.ID, ProjectID: model.Some[*string](nil)})
	if err != nil || moved.Task.ProjectID != nil || moved.Task.Content != "A" {
		t.Errorf("Update(move to inbox) = %+v, %v", moved.Task, err)
	}

	toggled, err := uc.ToggleComplete(ctx, owner, task.ToggleInput{ID: created.ID, Completed: true})
	if err != nil || !toggled.Task.Completed {
		t.Errorf("ToggleComplete() = %+v, %v", toggled.Task, err)
	}

	if err := uc.Delete(ctx, owner, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := uc.Detail(ctx, owner, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Detail(after delete) error = %v, want ErrTaskNotFound", err)
	}
	if err := uc.Delete(ctx, owner, ""); !errors.Is(err, task.ErrMissingID) {
		t.Errorf("Delete(no id) error = %v, want ErrMissingID", err)
	}
}

func TestDeleteProjectTasksIsBestEffort(t *testing.T) {
	uc, repo := newTestUseCase(nil)
	ctx := context.Background()

	a := mustCreate(t, uc, task.CreateInput{Content: "a", ProjectID: ptrString("p1")})
	b := mustCreate(t, uc, task.CreateInput{Content: "b", ProjectID: ptrString("p1"), Completed: true})
	c := mustCreate(t, uc, task.CreateInput{Content: "c", ProjectID: ptrString("p1")})
	keep := mustCreate(t, uc, task.CreateInput{Content: "other", ProjectID: ptrString("p2")})

	repo.deleteFn = func(ctx context.Context, id string) error {
		if id == b.ID {
			return repository.ErrFailedToDelete
		}
		return repo.TaskRepository.DeleteTask(ctx, id)
	}

	n, err := uc.DeleteProjectTasks(ctx, owner, "p1")
	if !errors.Is(err, task.ErrDeleteTask) || n != 2 {
		t.Errorf("DeleteProjectTasks() = %d, %v; want 2, ErrDeleteTask", n, err)
	}
	for _, id := range []string{a.ID, c.ID} {
		if _, err := uc.Detail(ctx, owner, id); !errors.Is(err, task.ErrTaskNotFound) {
			t.Errorf("task %s survived", id)
		}
	}
	for _, id := range []string{b.ID, keep.ID} {
		if _, err := uc.Detail(ctx, owner, id); err != nil {
			t.Errorf("task %s was removed: %v", id, err)
		}
	}
}

func TestCalendarMirror(t *testing.T) {
	cal := &mockCalendar{}
	uc, _ := newTestUseCase(cal)
	ctx := context.Background()

	mustCreate(t, uc, task.CreateInput{Content: "undated"})
	timed := mustCreate(t, uc, task.CreateInput{Content: "call bank", DueDate: ptrTime(june10.Add(9 * time.Hour))})
	mustCreate(t, uc, task.CreateInput{Content: "rent", DueDate: ptrTime(june10)})

	if len(cal.created) != 2 {
		t.Fatalf("created %d events, want 2", len(cal.created))
	}
	if ev := cal.created[0]; ev.AllDay || ev.EventID != gcalendar.EventIDFor(timed.ID) || !ev.End.Equal(june10.Add(9*time.Hour+30*time.Minute)) {
		t.Errorf("timed event = %+v", ev)
	}
	if ev := cal.created[1]; !ev.AllDay || !ev.End.Equal(june10.AddDate(0, 0, 1)) {
		t.Errorf("all-day event = %+v", ev)
	}

	if err := uc.Delete(ctx, owner, timed.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(cal.deleted) != 1 || cal.deleted[0] != gcalendar.EventIDFor(timed.ID) {
		t.Errorf("deleted events = %v", cal.deleted)
	}

	// calendar failures never fail the task write
	cal.fail = errors.New("quota exceeded")
	if _, err := uc.Create(ctx, owner, task.CreateInput{Content: "x", DueDate: ptrTime(june10.Add(time.Hour))}); err != nil {
		t.Errorf("Create() with failing calendar error = %v", err)
	}
}
