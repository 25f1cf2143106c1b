package http

import (
	"bytes"
	"encoding/json"
	"time"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/response"
)

const (
	actionCreate = "create"
	actionUpdate = "update"
	actionDelete = "delete"
)

// --- Request DTOs ---

// actionReq is the body of POST /tasks/action.
type actionReq struct {
	Action string                     `json:"action"`
	ID     string                     `json:"id"`
	Data   map[string]json.RawMessage `json:"data"`
}

// toggleReq is the body of PATCH /tasks/:id/toggle.
type toggleReq struct {
	Completed *bool `json:"completed"`
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func (r actionReq) toCreateInput(loc *time.Location) (task.CreateInput, error) {
	in := task.CreateInput{ID: r.ID}

	content, err := r.optString(model.AttrContent)
	if err != nil {
		return in, err
	}
	if !content.Set || content.Value == nil {
		return in, errMissingContent
	}
	in.Content = *content.Value

	due, err := r.optDate(model.AttrDueDate, loc)
	if err != nil {
		return in, err
	}
	in.DueDate = due.Value

	done, err := r.optBool(model.AttrCompleted)
	if err != nil {
		return in, err
	}
	in.Completed = done.Value

	project, err := r.optString(model.AttrProjectID)
	if err != nil {
		return in, err
	}
	in.ProjectID = project.Value
	return in, nil
}

// toUpdateInput keeps absent fields unset; an explicit null clears
// due_date or projectId.
func (r actionReq) toUpdateInput(loc *time.Location) (task.UpdateInput, error) {
	in := task.UpdateInput{ID: r.ID}

	content, err := r.optString(model.AttrContent)
	if err != nil {
		return in, err
	}
	if content.Set {
		if content.Value == nil {
			return in, errMissingContent
		}
		in.Content = model.Some(*content.Value)
	}

	if in.DueDate, err = r.optDate(model.AttrDueDate, loc); err != nil {
		return in, err
	}
	if in.Completed, err = r.optBool(model.AttrCompleted); err != nil {
		return in, err
	}
	if in.ProjectID, err = r.optString(model.AttrProjectID); err != nil {
		return in, err
	}
	return in, nil
}

func (r actionReq) optString(key string) (model.Optional[*string], error) {
	raw, ok := r.Data[key]
	if !ok {
		return model.Optional[*string]{}, nil
	}
	if isNull(raw) {
		return model.Some[*string](nil), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.Optional[*string]{}, errInvalidField
	}
	return model.Some(&s), nil
}

func (r actionReq) optBool(key string) (model.Optional[bool], error) {
	raw, ok := r.Data[key]
	if !ok || isNull(raw) {
		return model.Optional[bool]{}, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return model.Optional[bool]{}, errInvalidField
	}
	return model.Some(b), nil
}

func (r actionReq) optDate(key string, loc *time.Location) (model.Optional[*time.Time], error) {
	s, err := r.optString(key)
	if err != nil || !s.Set {
		return model.Optional[*time.Time]{}, err
	}
	if s.Value == nil || *s.Value == "" {
		return model.Some[*time.Time](nil), nil
	}
	t, err := datemath.ParseDate(*s.Value, loc)
	if err != nil {
		return model.Optional[*time.Time]{}, errInvalidDueDate
	}
	return model.Some(&t), nil
}

// --- Response DTOs ---

type taskResp struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	DueDate   response.DateTime `json:"due_date"`
	Completed bool              `json:"completed"`
	ProjectID *string           `json:"projectId"`
	CreatedAt response.DateTime `json:"createdAt"`
	UpdatedAt response.DateTime `json:"updatedAt"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Content:   t.Content,
		DueDate:   response.NewDateTime(t.DueDate),
		Completed: t.Completed,
		ProjectID: t.ProjectID,
		CreatedAt: response.NewDateTime(&t.CreatedAt),
		UpdatedAt: response.NewDateTime(&t.UpdatedAt),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: out.Total}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

// undoHint tells the client how to revert a completion.
type undoHint struct {
	Completed bool `json:"completed"`
}
