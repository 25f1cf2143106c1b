package mutation

import (
	"errors"
	"fmt"

	"personal-task-management/internal/project"
	"personal-task-management/internal/task"
)

type message struct {
	Title       string
	Description string
}

// messages holds the fixed copy of one action.
type messages struct {
	Pending string
	Success message
	Failure message
}

const retryHint = "Please try again."

var catalog = map[Action]messages{
	ActionCreateTask: {
		Pending: "Creating task...",
		Success: message{"Task created", "Your task has been added."},
		Failure: message{"Failed to create task", retryHint},
	},
	ActionUpdateTask: {
		Pending: "Saving task...",
		Success: message{"Task updated", "Your changes have been saved."},
		Failure: message{"Failed to update task", retryHint},
	},
	ActionToggleTask: {
		Pending: "Updating task...",
		Success: message{"Task completed", ""},
		Failure: message{"Failed to update task", retryHint},
	},
	ActionDeleteTask: {
		Pending: "Deleting task...",
		Success: message{"Task deleted", "The task has been removed."},
		Failure: message{"Failed to delete task", retryHint},
	},
	ActionCreateProject: {
		Pending: "Creating project...",
		Success: message{"Project created", "Your project has been added."},
		Failure: message{"Failed to create project", retryHint},
	},
	ActionUpdateProject: {
		Pending: "Saving project...",
		Success: message{"Project updated", "Your changes have been saved."},
		Failure: message{"Failed to update project", retryHint},
	},
	ActionDeleteProject: {
		Pending: "Deleting project...",
		Success: message{"Project deleted", "The project and its tasks have been removed."},
		Failure: message{"Failed to delete project", retryHint},
	},
	ActionBulkCreate: {
		Pending: "Creating tasks...",
		Success: message{"Tasks created", ""},
		Failure: message{"Failed to create tasks", retryHint},
	},
	ActionGenerate: {
		Pending: "Generating tasks...",
		Success: message{"Tasks generated", ""},
		Failure: message{"No tasks generated", "Try describing the project in more detail."},
	},
}

var (
	msgTaskReopened = message{"Task marked as incomplete", ""}
	msgUndoLabel    = "Undo"
)

// validationText is the description shown for errors the user can fix.
var validationText = map[error]string{
	task.ErrEmptyContent:       "Task content cannot be empty.",
	task.ErrMissingID:          "No task was selected.",
	task.ErrTaskNotFound:       "The task no longer exists.",
	project.ErrEmptyName:       "Project name cannot be empty.",
	project.ErrNameTooLong:     "Project name is too long.",
	project.ErrInvalidColor:    "Pick a color from the palette.",
	project.ErrMissingID:       "No project was selected.",
	project.ErrProjectNotFound: "The project no longer exists.",
	ErrUnknownTarget:           "Nothing to delete.",
	ErrNoCandidates:            "There were no tasks to create.",
}

func pendingTitle(action Action) string {
	return catalog[action].Pending
}

func successOutcome(action Action) Outcome {
	m := catalog[action].Success
	return Outcome{Phase: PhaseSuccess, Title: m.Title, Description: m.Description}
}

// failureOutcome never exposes err text; unknown errors get the generic hint.
func failureOutcome(action Action, err error) Outcome {
	m := catalog[action].Failure
	out := Outcome{Phase: PhaseError, Title: m.Title, Description: m.Description}
	for target, text := range validationText {
		if errors.Is(err, target) {
			out.Description = text
			break
		}
	}
	return out
}

func bulkDescription(created, total int) string {
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	if created == total {
		return fmt.Sprintf("%d %s added.", created, noun)
	}
	return fmt.Sprintf("%d of %d %s added.", created, total, noun)
}
