package http

import (
	"unicode/utf8"

	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
	"personal-task-management/internal/project"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/response"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"

	maxListLimit = 100
)

// --- Request DTOs ---

type listReq struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
}

func (r listReq) toInput() project.ListInput {
	limit := r.Limit
	if limit < 0 {
		limit = 0
	}
	return project.ListInput{Search: r.Search, Limit: min(limit, maxListLimit)}
}

type projectData struct {
	Name      *string `json:"name"`
	ColorName *string `json:"color_name"`
	ColorHex  *string `json:"color_hex"`
}

// actionReq is the body of POST /projects/action.
type actionReq struct {
	Action string      `json:"action"`
	ID     string      `json:"id"`
	Data   projectData `json:"data"`
}

func (d projectData) validate(requireName bool) error {
	if d.Name == nil {
		if requireName {
			return errMissingName
		}
		return nil
	}
	if utf8.RuneCountInString(*d.Name) > model.ProjectNameMaxLength {
		return errNameTooLong
	}
	return nil
}

func (r actionReq) toCreateInput() project.CreateInput {
	in := project.CreateInput{ID: r.ID}
	if r.Data.Name != nil {
		in.Name = *r.Data.Name
	}
	if r.Data.ColorName != nil {
		in.ColorName = *r.Data.ColorName
	}
	if r.Data.ColorHex != nil {
		in.ColorHex = *r.Data.ColorHex
	}
	return in
}

func (r actionReq) toUpdateInput() project.UpdateInput {
	in := project.UpdateInput{ID: r.ID}
	if r.Data.Name != nil {
		in.Name = model.Some(*r.Data.Name)
	}
	if r.Data.ColorName != nil || r.Data.ColorHex != nil {
		in.ColorName = model.Some(deref(r.Data.ColorName))
		in.ColorHex = model.Some(deref(r.Data.ColorHex))
	}
	return in
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type generateReq struct {
	Prompt string `json:"prompt"`
}

// --- Response DTOs ---

type projectResp struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	ColorName string            `json:"color_name"`
	ColorHex  string            `json:"color_hex"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newProjectResp(p model.Project) projectResp {
	return projectResp{
		ID:        p.ID,
		Name:      p.Name,
		ColorName: p.ColorName,
		ColorHex:  p.ColorHex,
		CreatedAt: response.NewDateTime(&p.CreatedAt),
	}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Total    int           `json:"total"`
}

func newListResp(out project.ListOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{Projects: projects, Total: out.Total}
}

type taskResp struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	DueDate   response.DateTime `json:"due_date"`
	Completed bool              `json:"completed"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Content:   t.Content,
		DueDate:   response.NewDateTime(t.DueDate),
		Completed: t.Completed,
	}
}

type tasksResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newTasksResp(out task.ListOutput) tasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return tasksResp{Tasks: tasks, Total: out.Total}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

// notificationResp mirrors the terminal lifecycle event of an operation.
type notificationResp struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

func newGenerateData(res mutation.BulkResult, events []mutation.Event) map[string]any {
	created := make([]taskResp, len(res.Created))
	for i, t := range res.Created {
		created[i] = newTaskResp(t)
	}
	data := map[string]any{
		"tasks":  created,
		"failed": len(res.Failed),
	}
	for _, e := range events {
		if e.Phase.Terminal() {
			data["notification"] = notificationResp{Title: e.Title, Description: e.Description}
		}
	}
	return data
}
