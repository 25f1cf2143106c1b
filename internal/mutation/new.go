package mutation

import (
	"context"
	"errors"

	"personal-task-management/internal/project"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/log"
)

var (
	ErrUnknownTarget     = errors.New("unknown delete target")
	ErrNoCandidates      = errors.New("no tasks to create")
	ErrNothingGenerated  = errors.New("no tasks generated")
	ErrAllCandidatesLost = errors.New("no task could be created")
)

// Drafter turns a free-text prompt into task candidates. It never fails;
// an empty slice means nothing usable came back.
type Drafter interface {
	Generate(ctx context.Context, prompt string) []task.Candidate
}

// Pipeline runs user mutations and reports each one through the Notifier.
type Pipeline struct {
	l        log.Logger
	tasks    task.UseCase
	projects project.UseCase
	drafter  Drafter
	notifier Notifier
}

// New creates a Pipeline. drafter may be nil, generation then yields nothing.
func New(l log.Logger, tasks task.UseCase, projects project.UseCase, drafter Drafter, notifier Notifier) *Pipeline {
	if notifier == nil {
		notifier = NewSession()
	}
	return &Pipeline{
		l:        l,
		tasks:    tasks,
		projects: projects,
		drafter:  drafter,
		notifier: notifier,
	}
}

// step is the body of one mutation. It returns the success outcome to show.
type step func(ctx context.Context) (Outcome, error)

// run executes fn under op with one pending and one terminal notification.
func (p *Pipeline) run(ctx context.Context, op *Operation, action Action, fn step) Result {
	if !op.begin() {
		return Result{Status: StatusDropped}
	}

	h := p.notifier.Begin(action, pendingTitle(action))
	outcome, err := fn(ctx)
	op.finish(err)
	if err != nil {
		outcome = failureOutcome(action, err)
	}
	if serr := p.notifier.Settle(h, outcome); serr != nil {
		p.l.Warnf(ctx, "mutation.run %s settle: %v", action, serr)
	}

	if err != nil {
		return Result{Status: StatusFailed, HandleID: h.ID, Err: err}
	}
	return Result{Status: StatusSucceeded, HandleID: h.ID}
}
