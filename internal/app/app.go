// Package app wires repositories, use cases and integrations from config.
// Both binaries build their services through it.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"personal-task-management/config"
	"personal-task-management/internal/draft"
	"personal-task-management/internal/mutation"
	"personal-task-management/internal/project"
	projectMemory "personal-task-management/internal/project/repository/memory"
	projectSQLite "personal-task-management/internal/project/repository/sqlite"
	projectUsecase "personal-task-management/internal/project/usecase"
	"personal-task-management/internal/task"
	taskMemory "personal-task-management/internal/task/repository/memory"
	taskSQLite "personal-task-management/internal/task/repository/sqlite"
	taskUsecase "personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/gcalendar"
	"personal-task-management/pkg/llmprovider"
	"personal-task-management/pkg/log"
)

// Services is the wired application.
type Services struct {
	Location *time.Location
	Clock    datemath.Clock
	Tasks    task.UseCase
	Projects project.UseCase
	Drafter  mutation.Drafter // nil when no LLM provider is configured
}

// Pipeline returns a mutation pipeline reporting to notifier.
func (s *Services) Pipeline(l log.Logger, notifier mutation.Notifier) *mutation.Pipeline {
	return mutation.New(l, s.Tasks, s.Projects, s.Drafter, notifier)
}

// Build wires the services over db. A nil db selects the in-memory stores.
func Build(ctx context.Context, cfg *config.Config, l log.Logger, db *sql.DB) (*Services, error) {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("app: timezone: %w", err)
	}
	clock := datemath.SystemClock{Location: loc}

	var (
		taskRepo    = taskMemory.New()
		projectRepo = projectMemory.New()
	)
	if db != nil {
		taskRepo = taskSQLite.New(db, l)
		projectRepo = projectSQLite.New(db, l)
	}

	var calendar taskUsecase.Calendar
	if client := newCalendar(ctx, cfg.GoogleCalendar, l); client != nil {
		calendar = client
	}
	tasks := taskUsecase.New(l, taskRepo, clock, calendar, taskUsecase.CalendarConfig{
		CalendarID: cfg.GoogleCalendar.CalendarID,
		Timezone:   loc.String(),
	})
	projects := projectUsecase.New(l, projectRepo, tasks, clock)

	drafter, err := newDrafter(ctx, cfg, l, clock, loc)
	if err != nil {
		return nil, err
	}

	return &Services{
		Location: loc,
		Clock:    clock,
		Tasks:    tasks,
		Projects: projects,
		Drafter:  drafter,
	}, nil
}

// newCalendar returns nil when the mirror is disabled or cannot authorize.
// Calendar problems never stop the application.
func newCalendar(ctx context.Context, cfg config.GoogleCalendarConfig, l log.Logger) *gcalendar.Client {
	if !cfg.Enabled || cfg.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath, cfg.TokenPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Infof(ctx, "Google Calendar initialized for calendar %q", cfg.CalendarID)
	return client
}

func newDrafter(ctx context.Context, cfg *config.Config, l log.Logger, clock datemath.Clock, loc *time.Location) (mutation.Drafter, error) {
	if len(cfg.LLM.Providers) == 0 {
		l.Infof(ctx, "No LLM provider configured, task generation disabled")
		return nil, nil
	}

	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "LLM providers unavailable, task generation disabled: %v", err)
		return nil, nil
	}

	parser, err := datemath.NewParser(loc.String())
	if err != nil {
		return nil, fmt.Errorf("app: date parser: %w", err)
	}

	manager := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)
	return draft.New(l, manager, clock, parser), nil
}
