package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
	"personal-task-management/pkg/datemath"
)

// parseDue accepts a date, an RFC3339 instant or a phrase like "tomorrow".
func (e *env) parseDue(s string) (*time.Time, error) {
	parser, err := datemath.NewParser(e.svc.Location.String())
	if err != nil {
		return nil, err
	}
	t, err := parser.ParseAny(s, e.svc.Clock.Now())
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q", s)
	}
	return &t, nil
}

func addCmd(opts *options) *cobra.Command {
	var due, projectID string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			form := &mutation.TaskForm{Content: strings.Join(args, " ")}
			if due != "" {
				t, err := e.parseDue(due)
				if err != nil {
					return err
				}
				form.DueDate = t
			}
			if projectID != "" {
				form.ProjectID = &projectID
			}

			var created model.Task
			res := e.pipeline.CreateTask(ctx, e.sc, form, func(t model.Task) { created = t })
			if err := resultErr(res); err != nil {
				return err
			}
			return writeTasks(e.out, []model.Task{created}, e.svc.Location)
		}),
	}

	cmd.Flags().StringVarP(&due, "due", "d", "", "Due date (2006-01-02, today, tomorrow, next monday...)")
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id")
	return cmd
}

func editCmd(opts *options) *cobra.Command {
	var content, due, projectID string
	var clearDue, clearProject bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			current, err := e.svc.Tasks.Detail(ctx, e.sc, args[0])
			if err != nil {
				return err
			}

			// The form carries the full new state, starting from the stored task.
			t := current.Task
			form := &mutation.TaskForm{ID: t.ID, Content: t.Content, DueDate: t.DueDate, ProjectID: t.ProjectID}
			if content != "" {
				form.Content = content
			}
			switch {
			case clearDue:
				form.DueDate = nil
			case due != "":
				if form.DueDate, err = e.parseDue(due); err != nil {
					return err
				}
			}
			switch {
			case clearProject:
				form.ProjectID = nil
			case projectID != "":
				form.ProjectID = &projectID
			}

			if err := resultErr(e.pipeline.UpdateTask(ctx, e.sc, "", form)); err != nil {
				return err
			}
			updated, err := e.svc.Tasks.Detail(ctx, e.sc, t.ID)
			if err != nil {
				return err
			}
			return writeTasks(e.out, []model.Task{updated.Task}, e.svc.Location)
		}),
	}

	cmd.Flags().StringVarP(&content, "content", "c", "", "New content")
	cmd.Flags().StringVarP(&due, "due", "d", "", "New due date")
	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Move to project id")
	cmd.Flags().BoolVar(&clearDue, "no-due", false, "Remove the due date")
	cmd.Flags().BoolVar(&clearProject, "no-project", false, "Move back to the inbox")
	return cmd
}

func doneCmd(opts *options) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a task",
		Long:  "Complete a task. With --interactive the undo offer stays open until Enter is pressed; type u to take it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd, opts)
			if err != nil {
				return err
			}
			defer e.close()

			var undo *mutation.UndoAction
			e.subscribeUndo(func(u *mutation.UndoAction) { undo = u })

			ctx := cmd.Context()
			res := e.pipeline.ToggleComplete(ctx, e.sc, nil, args[0], true, e.cfg.Schedule.UndoEnabled)
			if err := resultErr(res); err != nil {
				return err
			}
			if undo == nil {
				return nil
			}
			if !interactive {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: taskctl undo %s\n", undo.Label, args[0])
				return nil
			}
			return offerUndo(ctx, cmd.InOrStdin(), cmd.ErrOrStderr(), undo)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Keep the undo offer open")
	return cmd
}

// subscribeUndo reports the undo action carried by terminal events.
func (e *env) subscribeUndo(fn func(*mutation.UndoAction)) {
	e.session.Subscribe(mutation.SinkFunc(func(ev mutation.Event) {
		if ev.Phase.Terminal() && ev.Undo != nil {
			fn(ev.Undo)
		}
	}))
}

func offerUndo(ctx context.Context, in io.Reader, w io.Writer, undo *mutation.UndoAction) error {
	fmt.Fprintf(w, "%s? [u to undo, Enter to keep] ", undo.Label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	if strings.TrimSpace(strings.ToLower(line)) != "u" {
		return nil
	}
	return resultErr(undo.Run(ctx))
}

func undoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "undo <id>",
		Short: "Mark a completed task as incomplete",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			return resultErr(e.pipeline.ToggleComplete(ctx, e.sc, nil, args[0], false, false))
		}),
	}
}

func rmCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			target := mutation.Target{Kind: mutation.TargetTask, ID: args[0]}
			return resultErr(e.pipeline.Delete(ctx, e.sc, nil, target, nil))
		}),
	}
}
