package task

import "errors"

// Validation errors, raised before any store call.
var (
	ErrEmptyContent = errors.New("task content is required")
	ErrMissingID    = errors.New("task id is required")
	ErrTaskNotFound = errors.New("task not found")
)

// Service errors. The underlying cause is logged, never returned.
var (
	ErrLoadToday     = errors.New("failed to load today's tasks")
	ErrLoadInbox     = errors.New("failed to load inbox tasks")
	ErrLoadUpcoming  = errors.New("failed to load upcoming tasks")
	ErrLoadCompleted = errors.New("failed to load completed tasks")
	ErrLoadProject   = errors.New("failed to load project tasks")
	ErrLoadTask      = errors.New("failed to load task")
	ErrCountInbox    = errors.New("failed to count inbox tasks")
	ErrCountToday    = errors.New("failed to count today's tasks")
	ErrCreateTask    = errors.New("failed to create task")
	ErrUpdateTask    = errors.New("failed to update task")
	ErrDeleteTask    = errors.New("failed to delete task")
)
