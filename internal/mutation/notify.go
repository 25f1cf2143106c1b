package mutation

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
)

// Phase of a lifecycle notification.
type Phase string

const (
	PhasePending Phase = "pending"
	PhaseSuccess Phase = "success"
	PhaseError   Phase = "error"
)

// Terminal reports whether p settles a handle.
func (p Phase) Terminal() bool {
	return p == PhaseSuccess || p == PhaseError
}

var (
	ErrUnknownHandle  = errors.New("unknown notification handle")
	ErrAlreadySettled = errors.New("notification already settled")
	ErrNotTerminal    = errors.New("outcome phase is not terminal")
)

// Action names the operation a notification belongs to.
type Action string

const (
	ActionCreateTask    Action = "create_task"
	ActionUpdateTask    Action = "update_task"
	ActionToggleTask    Action = "toggle_task"
	ActionDeleteTask    Action = "delete_task"
	ActionCreateProject Action = "create_project"
	ActionUpdateProject Action = "update_project"
	ActionDeleteProject Action = "delete_project"
	ActionBulkCreate    Action = "bulk_create"
	ActionGenerate      Action = "generate"
)

// Handle identifies one pending notification.
type Handle struct {
	ID     string
	Action Action
	Title  string
}

// UndoAction is offered with a success notification.
type UndoAction struct {
	Label string
	Run   func(ctx context.Context) Result
}

// Outcome settles a Handle.
type Outcome struct {
	Phase       Phase
	Title       string
	Description string
	Undo        *UndoAction
}

// Event is what sinks receive. Terminal events carry the HandleID of the
// pending event they replace.
type Event struct {
	HandleID    string
	Action      Action
	Phase       Phase
	Title       string
	Description string
	Undo        *UndoAction
}

// Notifier is the only way pipeline operations report progress.
type Notifier interface {
	Begin(action Action, title string) Handle
	Settle(h Handle, o Outcome) error
}

// Sink consumes events, e.g. a toast renderer.
type Sink interface {
	Notify(e Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Notify(e Event) { f(e) }

// Session is a Notifier that settles every handle exactly once and fans
// events out to its sinks in emission order.
type Session struct {
	mu    sync.Mutex
	open  map[string]bool
	sinks []Sink
	newID func() string
}

// NewSession creates a Session publishing to sinks.
func NewSession(sinks ...Sink) *Session {
	return &Session{
		open:  map[string]bool{},
		sinks: sinks,
		newID: uuid.NewString,
	}
}

// Subscribe adds a sink for subsequent events.
func (s *Session) Subscribe(sink Sink) {
	s.mu.Lock()
	s.sinks = append(s.sinks, sink)
	s.mu.Unlock()
}

// Begin emits a pending event and returns its handle.
func (s *Session) Begin(action Action, title string) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h := Handle{ID: s.newID(), Action: action, Title: title}
	s.open[h.ID] = true
	s.emit(Event{HandleID: h.ID, Action: action, Phase: PhasePending, Title: title})
	return h
}

// Settle emits the terminal event of h. A second Settle of the same handle
// is rejected and emits nothing.
func (s *Session) Settle(h Handle, o Outcome) error {
	if !o.Phase.Terminal() {
		return ErrNotTerminal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, known := s.open[h.ID]
	switch {
	case !known:
		return ErrUnknownHandle
	case !open:
		return ErrAlreadySettled
	}
	s.open[h.ID] = false
	s.emit(Event{
		HandleID:    h.ID,
		Action:      h.Action,
		Phase:       o.Phase,
		Title:       o.Title,
		Description: o.Description,
		Undo:        o.Undo,
	})
	return nil
}

// emit runs under s.mu so sinks observe events in order.
func (s *Session) emit(e Event) {
	for _, sink := range s.sinks {
		sink.Notify(e)
	}
}

// Recorder is a Sink keeping every event, in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Terminal returns the recorded terminal events.
func (r *Recorder) Terminal() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Phase.Terminal() {
			out = append(out, e)
		}
	}
	return out
}
