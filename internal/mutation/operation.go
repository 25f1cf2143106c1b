package mutation

import "sync"

// State is the lifecycle position of an Operation.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "idle"
}

// Operation guards one form or button: while it is pending, further
// submits are dropped. The zero value is idle and ready to use.
type Operation struct {
	mu    sync.Mutex
	state State
}

// State returns the current state.
func (o *Operation) State() State {
	if o == nil {
		return StateIdle
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// begin moves to pending. It reports false when a submit is already in flight.
// A nil Operation is a one-shot instance and always begins.
func (o *Operation) begin() bool {
	if o == nil {
		return true
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state == StatePending {
		return false
	}
	o.state = StatePending
	return true
}

func (o *Operation) finish(err error) {
	if o == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.state = StateError
		return
	}
	o.state = StateSuccess
}
