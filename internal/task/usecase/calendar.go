package usecase

import (
	"context"
	"errors"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/gcalendar"
)

const timedEventLength = 30 * time.Minute

// mirrorCreate writes a calendar event for a dated task. Failures are logged only.
func (uc *implUseCase) mirrorCreate(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil || t.Completed {
		return
	}

	req := gcalendar.CreateEventRequest{
		CalendarID: uc.calendarCfg.CalendarID,
		EventID:    gcalendar.EventIDFor(t.ID),
		Summary:    t.Content,
		Timezone:   uc.calendarCfg.Timezone,
	}
	due := *t.DueDate
	if due.Equal(datemath.StartOfDay(due)) {
		// a due date at midnight has no time of day
		req.AllDay = true
		req.Start = due
		req.End = due.AddDate(0, 0, 1)
	} else {
		req.Start = due
		req.End = due.Add(timedEventLength)
	}

	if _, err := uc.calendar.CreateEvent(ctx, req); err != nil {
		uc.l.Warnf(ctx, "uc.mirrorCreate: calendar event for task %s failed (non-fatal): %v", t.ID, err)
	}
}

// mirrorReplace rewrites the event of an edited task.
func (uc *implUseCase) mirrorReplace(ctx context.Context, t model.Task) {
	if uc.calendar == nil {
		return
	}
	uc.mirrorDelete(ctx, t.ID)
	uc.mirrorCreate(ctx, t)
}

func (uc *implUseCase) mirrorDelete(ctx context.Context, taskID string) {
	if uc.calendar == nil {
		return
	}
	err := uc.calendar.DeleteEvent(ctx, uc.calendarCfg.CalendarID, gcalendar.EventIDFor(taskID))
	if err != nil && !errors.Is(err, gcalendar.ErrEventNotFound) {
		uc.l.Warnf(ctx, "uc.mirrorDelete: calendar event for task %s failed (non-fatal): %v", taskID, err)
	}
}
