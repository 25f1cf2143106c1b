package main

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
)

// statusSink prints lifecycle notifications. Pending events are shown
// only in verbose mode.
type statusSink struct {
	w       io.Writer
	verbose bool
}

func newStatusSink(w io.Writer, verbose bool) *statusSink {
	return &statusSink{w: w, verbose: verbose}
}

func (s *statusSink) Notify(e mutation.Event) {
	switch e.Phase {
	case mutation.PhasePending:
		if s.verbose {
			fmt.Fprintf(s.w, "... %s\n", e.Title)
		}
		return
	case mutation.PhaseError:
		fmt.Fprint(s.w, "error: ")
	}

	fmt.Fprint(s.w, e.Title)
	if e.Description != "" {
		fmt.Fprintf(s.w, ": %s", e.Description)
	}
	fmt.Fprintln(s.w)
}

type taskView struct {
	ID        string `yaml:"id"`
	Content   string `yaml:"content"`
	Due       string `yaml:"due,omitempty"`
	Project   string `yaml:"project,omitempty"`
	Completed bool   `yaml:"completed,omitempty"`
}

func newTaskView(t model.Task, loc *time.Location) taskView {
	v := taskView{ID: t.ID, Content: t.Content, Completed: t.Completed}
	if t.DueDate != nil {
		v.Due = t.DueDate.In(loc).Format(time.DateOnly)
	}
	if t.ProjectID != nil {
		v.Project = *t.ProjectID
	}
	return v
}

type projectView struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

func newProjectView(p model.Project) projectView {
	return projectView{ID: p.ID, Name: p.Name, Color: p.ColorName}
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func writeTasks(w io.Writer, tasks []model.Task, loc *time.Location) error {
	views := make([]taskView, len(tasks))
	for i, t := range tasks {
		views[i] = newTaskView(t, loc)
	}
	return writeYAML(w, views)
}
