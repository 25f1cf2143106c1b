package mutation

import (
	"context"
	"strings"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

// BulkCreate stores candidates into projectID one create at a time.
// Failures are collected and the successful creates are kept.
func (p *Pipeline) BulkCreate(ctx context.Context, sc model.Scope, op *Operation, projectID string, candidates []task.Candidate) BulkResult {
	var out BulkResult
	out.Result = p.run(ctx, op, ActionBulkCreate, func(ctx context.Context) (Outcome, error) {
		if len(candidates) == 0 {
			return Outcome{}, ErrNoCandidates
		}
		out.Created, out.Failed = p.createAll(ctx, sc, projectID, candidates)
		return bulkOutcome(ActionBulkCreate, len(out.Created), len(candidates))
	})
	return out
}

// GenerateAndCreate drafts tasks from prompt and bulk-creates them.
// An empty draft fails the same way as a failed generation.
func (p *Pipeline) GenerateAndCreate(ctx context.Context, sc model.Scope, op *Operation, projectID, prompt string) BulkResult {
	var out BulkResult
	out.Result = p.run(ctx, op, ActionGenerate, func(ctx context.Context) (Outcome, error) {
		var candidates []task.Candidate
		if p.drafter != nil {
			candidates = p.drafter.Generate(ctx, prompt)
		}
		if len(candidates) == 0 {
			return Outcome{}, ErrNothingGenerated
		}
		out.Created, out.Failed = p.createAll(ctx, sc, projectID, candidates)
		return bulkOutcome(ActionGenerate, len(out.Created), len(candidates))
	})
	return out
}

func bulkOutcome(action Action, created, total int) (Outcome, error) {
	if created == 0 {
		return Outcome{}, ErrAllCandidatesLost
	}
	o := successOutcome(action)
	o.Description = bulkDescription(created, total)
	return o, nil
}

func (p *Pipeline) createAll(ctx context.Context, sc model.Scope, projectID string, candidates []task.Candidate) ([]model.Task, []BulkFailure) {
	var pid *string
	if projectID != "" {
		pid = &projectID
	}

	created := make([]model.Task, 0, len(candidates))
	var failed []BulkFailure
	for i, c := range candidates {
		input := normalize(c, pid)
		if input.Content == "" {
			failed = append(failed, BulkFailure{Index: i, Candidate: c, Err: task.ErrEmptyContent})
			continue
		}

		res, err := p.tasks.Create(ctx, sc, input)
		if err != nil {
			p.l.Warnf(ctx, "mutation.createAll candidate %d: %v", i, err)
			failed = append(failed, BulkFailure{Index: i, Candidate: c, Err: err})
			continue
		}
		created = append(created, res.Task)
	}
	return created, failed
}

// normalize fills candidate defaults and binds it to the project.
func normalize(c task.Candidate, projectID *string) task.CreateInput {
	input := task.CreateInput{
		Content:   strings.TrimSpace(c.Content),
		DueDate:   c.DueDate,
		ProjectID: projectID,
	}
	if c.Completed != nil {
		input.Completed = *c.Completed
	}
	return input
}
