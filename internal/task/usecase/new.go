package usecase

import (
	"context"

	"personal-task-management/internal/schedule"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/gcalendar"
	"personal-task-management/pkg/log"
)

// Calendar mirrors dated tasks as events. *gcalendar.Client satisfies it.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarConfig selects the calendar events are written to.
type CalendarConfig struct {
	CalendarID string
	Timezone   string
}

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l           log.Logger
	repo        repository.TaskRepository
	views       schedule.Views
	calendar    Calendar // optional
	calendarCfg CalendarConfig
}

// New creates a task UseCase. calendar may be nil.
func New(
	l log.Logger,
	repo repository.TaskRepository,
	clock datemath.Clock,
	calendar Calendar,
	calendarCfg CalendarConfig,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		views:       schedule.NewViews(clock),
		calendar:    calendar,
		calendarCfg: calendarCfg,
	}
}
