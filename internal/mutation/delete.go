package mutation

import (
	"context"

	"personal-task-management/internal/model"
	"personal-task-management/internal/project"
	"personal-task-management/internal/task"
)

func deleteAction(kind TargetKind) Action {
	if kind == TargetProject {
		return ActionDeleteProject
	}
	return ActionDeleteTask
}

// Delete removes the confirmed target. onSuccess runs after the terminal
// notification, e.g. to navigate away from a deleted project.
func (p *Pipeline) Delete(ctx context.Context, sc model.Scope, op *Operation, target Target, onSuccess func()) Result {
	res := p.run(ctx, op, deleteAction(target.Kind), func(ctx context.Context) (Outcome, error) {
		switch target.Kind {
		case TargetTask:
			if target.ID == "" {
				return Outcome{}, task.ErrMissingID
			}
			if err := p.tasks.Delete(ctx, sc, target.ID); err != nil {
				return Outcome{}, err
			}
			return successOutcome(ActionDeleteTask), nil

		case TargetProject:
			if target.ID == "" {
				return Outcome{}, project.ErrMissingID
			}
			if _, err := p.projects.Delete(ctx, sc, target.ID); err != nil {
				return Outcome{}, err
			}
			return successOutcome(ActionDeleteProject), nil
		}
		return Outcome{}, ErrUnknownTarget
	})

	if res.OK() && onSuccess != nil {
		onSuccess()
	}
	return res
}
