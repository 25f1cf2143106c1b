package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/schedule"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/datemath"
)

var june10 = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func newTestRepo() *implRepository {
	tick := june10
	return newRepository(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()

	created, err := r.CreateTask(ctx, "", repository.CreateTaskOptions{Content: "a", UserID: "u1"})
	if err != nil || created.ID == "" {
		t.Fatalf("CreateTask() = %+v, %v", created, err)
	}
	if _, err := r.CreateTask(ctx, created.ID, repository.CreateTaskOptions{Content: "dup", UserID: "u1"}); !errors.Is(err, repository.ErrFailedToInsert) {
		t.Errorf("duplicate id error = %v", err)
	}

	updated, err := r.UpdateTask(ctx, created.ID, repository.UpdateTaskOptions{Completed: model.Some(true)})
	if err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if !updated.Completed || updated.Content != "a" || !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("UpdateTask() = %+v", updated)
	}

	if err := r.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
	if _, err := r.FindTaskByID(ctx, created.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindTaskByID after delete error = %v", err)
	}
	if _, err := r.UpdateTask(ctx, created.ID, repository.UpdateTaskOptions{}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("UpdateTask after delete error = %v", err)
	}
}

func TestDeleteKeepsIndex(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()
	for _, id := range []string{"a", "b", "c"} {
		r.CreateTask(ctx, id, repository.CreateTaskOptions{Content: id, UserID: "u1"})
	}
	if err := r.DeleteTask(ctx, "a"); err != nil {
		t.Fatal(err)
	}
	got, err := r.FindTaskByID(ctx, "c")
	if err != nil || got.Content != "c" {
		t.Errorf("FindTaskByID(c) = %+v, %v", got, err)
	}
}

func TestCountMatchesListAtRest(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo()
	v := schedule.NewViews(datemath.FixedClock(june10.Add(12 * time.Hour)))

	for _, due := range []*time.Time{nil, ptrTime(june10), ptrTime(june10.Add(3 * time.Hour)), ptrTime(june10.AddDate(0, 0, 2))} {
		r.CreateTask(ctx, "", repository.CreateTaskOptions{Content: "t", DueDate: due, UserID: "u1"})
	}

	today, _ := r.ListTasks(ctx, v.Today("u1"))
	count, err := r.ListTasks(ctx, v.TodayCount("u1"))
	if err != nil {
		t.Fatal(err)
	}
	if count.Total != len(today.Tasks) || count.Total != 2 {
		t.Errorf("count total = %d, today length = %d, want 2", count.Total, len(today.Tasks))
	}
	if len(count.Tasks) != 1 || count.Tasks[0].Content != "" {
		t.Errorf("count page = %+v, want one id-only task", count.Tasks)
	}
}
