package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
	"personal-task-management/internal/project"
)

func projectsCmd(opts *options) *cobra.Command {
	var search string
	var limit int

	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project"},
		Short:   "List and manage projects",
		Args:    cobra.NoArgs,
		RunE: withEnv(opts, func(ctx context.Context, e *env, _ []string) error {
			out, err := e.svc.Projects.List(ctx, e.sc, project.ListInput{Search: search, Limit: limit})
			if err != nil {
				return err
			}
			views := make([]projectView, len(out.Projects))
			for i, p := range out.Projects {
				views[i] = newProjectView(p)
			}
			return writeYAML(e.out, views)
		}),
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Name filter")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of projects")

	cmd.AddCommand(
		projectAddCmd(opts),
		projectEditCmd(opts),
		projectRmCmd(opts),
		projectTasksCmd(opts),
	)
	return cmd
}

func projectAddCmd(opts *options) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			form := &mutation.ProjectForm{Name: strings.Join(args, " "), ColorName: color}

			var created model.Project
			res := e.pipeline.CreateProject(ctx, e.sc, form, func(p model.Project) { created = p })
			if err := resultErr(res); err != nil {
				return err
			}
			return writeYAML(e.out, newProjectView(created))
		}),
	}

	cmd.Flags().StringVarP(&color, "color", "c", "", "Palette color name")
	return cmd
}

func projectEditCmd(opts *options) *cobra.Command {
	var name, color string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Rename or recolor a project",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			current, err := e.svc.Projects.Detail(ctx, e.sc, args[0])
			if err != nil {
				return err
			}

			form := &mutation.ProjectForm{ID: current.Project.ID, Name: current.Project.Name, ColorName: color}
			if name != "" {
				form.Name = name
			}
			return resultErr(e.pipeline.UpdateProject(ctx, e.sc, "", form))
		}),
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVarP(&color, "color", "c", "", "New palette color")
	return cmd
}

func projectRmCmd(opts *options) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a project and all of its tasks",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			if !yes {
				return fmt.Errorf("deleting a project removes its tasks; rerun with --yes")
			}
			target := mutation.Target{Kind: mutation.TargetProject, ID: args[0]}
			return resultErr(e.pipeline.Delete(ctx, e.sc, nil, target, nil))
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm the deletion")
	return cmd
}

func projectTasksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <id>",
		Short: "Pending tasks of a project",
		Args:  cobra.ExactArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			out, err := e.svc.Tasks.ProjectTasks(ctx, e.sc, args[0])
			if err != nil {
				return err
			}
			return writeTasks(e.out, out.Tasks, e.svc.Location)
		}),
	}
}

func generateCmd(opts *options) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "generate <goal>",
		Short: "Draft tasks for a project from a free-text goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: withEnv(opts, func(ctx context.Context, e *env, args []string) error {
			if projectID == "" {
				return fmt.Errorf("--project is required")
			}
			if _, err := e.svc.Projects.Detail(ctx, e.sc, projectID); err != nil {
				return err
			}

			res := e.pipeline.GenerateAndCreate(ctx, e.sc, nil, projectID, strings.Join(args, " "))
			if err := resultErr(res.Result); err != nil {
				return err
			}
			return writeTasks(e.out, res.Created, e.svc.Location)
		}),
	}

	cmd.Flags().StringVarP(&projectID, "project", "p", "", "Project id")
	return cmd
}
