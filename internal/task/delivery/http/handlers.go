package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/response"
)

type viewFunc func(ctx context.Context, sc model.Scope) (task.ListOutput, error)

func (h *handler) view(c *gin.Context, name string, fn viewFunc) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	out, err := fn(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "task.http.%s: %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, h.newListResp(out))
}

// Today godoc
// @Summary     Today's tasks
// @Description Pending tasks due today, project tasks included.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/today [GET]
func (h *handler) Today(c *gin.Context) { h.view(c, "Today", h.uc.Today) }

// Inbox godoc
// @Summary     Inbox tasks
// @Description Pending tasks without a project.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/inbox [GET]
func (h *handler) Inbox(c *gin.Context) { h.view(c, "Inbox", h.uc.Inbox) }

// Upcoming godoc
// @Summary     Upcoming tasks
// @Description Pending tasks due today or later, earliest first.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) { h.view(c, "Upcoming", h.uc.Upcoming) }

// Completed godoc
// @Summary     Completed tasks
// @Description Completed tasks, most recently updated first.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/completed [GET]
func (h *handler) Completed(c *gin.Context) { h.view(c, "Completed", h.uc.Completed) }

// Counts godoc
// @Summary     Navigation counters
// @Description Inbox and Today totals.
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Success     200 {object} task.TaskCounts
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/counts [GET]
func (h *handler) Counts(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	counts, err := h.uc.TaskCounts(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "task.http.Counts: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, counts)
}

// Detail godoc
// @Summary     Task detail
// @Tags        Tasks
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "task.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, detailResp{Task: newTaskResp(out.Task)})
}

// Action godoc
// @Summary     Mutate a task
// @Description Dispatches {"action": "create|update|delete", "id", "data"}.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       body body actionReq true "Action"
// @Success     200 {object} response.ActionResp
// @Failure     400 {object} response.ActionResp "Missing required fields"
// @Failure     404 {object} response.ActionResp "Unknown task"
// @Failure     405 {object} response.ActionResp "Unsupported action"
// @Failure     500 {object} response.ActionResp "Internal Server Error"
// @Router      /api/v1/tasks/action [POST]
func (h *handler) Action(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}

	req, err := h.processActionReq(c)
	if err != nil {
		response.ActionError(c, err)
		return
	}

	switch req.Action {
	case actionCreate:
		h.create(c, sc, req)
	case actionUpdate:
		h.update(c, sc, req)
	case actionDelete:
		h.delete(c, sc, req)
	default:
		response.ActionError(c, errUnsupportedAction)
	}
}

func (h *handler) create(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()

	input, err := req.toCreateInput(h.loc)
	if err != nil {
		response.ActionError(c, err)
		return
	}

	out, err := h.uc.Create(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "task.http.create: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Task created successfully", map[string]any{"task": newTaskResp(out.Task)})
}

func (h *handler) update(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()
	if req.ID == "" {
		response.ActionError(c, errMissingID)
		return
	}

	input, err := req.toUpdateInput(h.loc)
	if err != nil {
		response.ActionError(c, err)
		return
	}

	out, err := h.uc.Update(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "task.http.update: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Task updated successfully", map[string]any{"task": newTaskResp(out.Task)})
}

func (h *handler) delete(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()
	if req.ID == "" {
		response.ActionError(c, errMissingID)
		return
	}

	if err := h.uc.Delete(ctx, sc, req.ID); err != nil {
		h.l.Errorf(ctx, "task.http.delete: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Task deleted successfully", map[string]any{"id": req.ID})
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Sets the completed flag. Completing returns an undo hint.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id   path string    true "Task ID"
// @Param       body body toggleReq true "Completion"
// @Success     200 {object} response.ActionResp
// @Failure     400 {object} response.ActionResp "Bad Request"
// @Failure     404 {object} response.ActionResp "Unknown task"
// @Router      /api/v1/tasks/{id}/toggle [PATCH]
func (h *handler) Toggle(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	id, completed, err := h.processToggleReq(c)
	if err != nil {
		response.ActionError(c, err)
		return
	}

	out, err := h.uc.ToggleComplete(ctx, sc, task.ToggleInput{ID: id, Completed: completed})
	if err != nil {
		h.l.Errorf(ctx, "task.http.Toggle: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}

	data := map[string]any{"task": newTaskResp(out.Task)}
	if !completed {
		response.ActionOK(c, "Task marked as incomplete", data)
		return
	}
	data["undo"] = undoHint{Completed: false}
	response.ActionOK(c, "Task completed", data)
}
