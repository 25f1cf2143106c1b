package usecase

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task"
)

// InboxTaskCount returns the Inbox badge total.
func (uc *implUseCase) InboxTaskCount(ctx context.Context, sc model.Scope) (int, error) {
	return uc.count(ctx, "InboxTaskCount", uc.views.InboxCount(sc.UserID), task.ErrCountInbox)
}

// TodayTaskCount returns the Today badge total.
func (uc *implUseCase) TodayTaskCount(ctx context.Context, sc model.Scope) (int, error) {
	return uc.count(ctx, "TodayTaskCount", uc.views.TodayCount(sc.UserID), task.ErrCountToday)
}

type countResult struct {
	inbox bool
	n     int
	err   error
}

// TaskCounts runs both badge counts concurrently. The first error is
// returned as is, without waiting for the other count.
func (uc *implUseCase) TaskCounts(ctx context.Context, sc model.Scope) (task.TaskCounts, error) {
	// buffered so the slower goroutine never blocks after an early return
	results := make(chan countResult, 2)

	go func() {
		n, err := uc.InboxTaskCount(ctx, sc)
		results <- countResult{inbox: true, n: n, err: err}
	}()
	go func() {
		n, err := uc.TodayTaskCount(ctx, sc)
		results <- countResult{n: n, err: err}
	}()

	var counts task.TaskCounts
	for range 2 {
		r := <-results
		if r.err != nil {
			return task.TaskCounts{}, r.err
		}
		if r.inbox {
			counts.InboxTasks = r.n
		} else {
			counts.TodayTasks = r.n
		}
	}
	return counts, nil
}

func (uc *implUseCase) count(ctx context.Context, op string, q query.Query, failure error) (int, error) {
	res, err := uc.repo.ListTasks(ctx, q)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s ListTasks: %v", op, err)
		return 0, failure
	}
	return res.Total, nil
}
