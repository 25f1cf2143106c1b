package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
)

type viewFunc func(ctx context.Context, sc model.Scope) (task.ListOutput, error)

func (e *env) view(name string) (viewFunc, error) {
	switch name {
	case "today":
		return e.svc.Tasks.Today, nil
	case "inbox":
		return e.svc.Tasks.Inbox, nil
	case "upcoming":
		return e.svc.Tasks.Upcoming, nil
	case "completed":
		return e.svc.Tasks.Completed, nil
	}
	return nil, fmt.Errorf("unknown view %q", name)
}

func viewCmd(opts *options, name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(ctx context.Context, e *env, _ []string) error {
			fn, err := e.view(name)
			if err != nil {
				return err
			}
			out, err := fn(ctx, e.sc)
			if err != nil {
				return err
			}
			return writeTasks(e.out, out.Tasks, e.svc.Location)
		}),
	}
}

func countsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "counts",
		Short: "Show the Inbox and Today badge counts",
		Args:  cobra.NoArgs,
		RunE: withEnv(opts, func(ctx context.Context, e *env, _ []string) error {
			counts, err := e.svc.Tasks.TaskCounts(ctx, e.sc)
			if err != nil {
				return err
			}
			return writeYAML(e.out, map[string]int{
				"inbox": counts.InboxTasks,
				"today": counts.TodayTasks,
			})
		}),
	}
}
