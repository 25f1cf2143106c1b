package usecase

import (
	"context"
	"sync"

	"personal-task-management/internal/model"
	"personal-task-management/internal/query"
	"personal-task-management/internal/task/repository"
	"personal-task-management/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepo wraps a real repository and lets tests override single calls.
type mockRepo struct {
	repository.TaskRepository

	mu       sync.Mutex
	calls    []string
	listFn   func(ctx context.Context, q query.Query) (repository.TaskList, error)
	createFn func(ctx context.Context, id string, opt repository.CreateTaskOptions) (model.Task, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockRepo) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockRepo) callCount(call string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, c := range m.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (m *mockRepo) ListTasks(ctx context.Context, q query.Query) (repository.TaskList, error) {
	m.record("ListTasks")
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return m.TaskRepository.ListTasks(ctx, q)
}

func (m *mockRepo) CreateTask(ctx context.Context, id string, opt repository.CreateTaskOptions) (model.Task, error) {
	m.record("CreateTask")
	if m.createFn != nil {
		return m.createFn(ctx, id, opt)
	}
	return m.TaskRepository.CreateTask(ctx, id, opt)
}

func (m *mockRepo) DeleteTask(ctx context.Context, id string) error {
	m.record("DeleteTask")
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return m.TaskRepository.DeleteTask(ctx, id)
}

type mockCalendar struct {
	fail    error
	created []gcalendar.CreateEventRequest
	deleted []string
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: req.EventID}, nil
}

func (m *mockCalendar) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	m.deleted = append(m.deleted, eventID)
	return gcalendar.ErrEventNotFound
}
