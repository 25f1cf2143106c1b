package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
	"personal-task-management/pkg/response"
)

// List godoc
// @Summary     List projects
// @Description Projects of the caller, newest first. search matches a name substring.
// @Tags        Projects
// @Produce     json
// @Param       X-User-ID header string true  "Owner id"
// @Param       search    query  string false "Name filter"
// @Param       limit     query  int    false "Maximum number of projects"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/projects [GET]
func (h *handler) List(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "project.http.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newListResp(out))
}

// Detail godoc
// @Summary     Project detail
// @Tags        Projects
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id path string true "Project ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	out, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "project.http.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, detailResp{Project: newProjectResp(out.Project)})
}

// Tasks godoc
// @Summary     Project tasks
// @Description Pending tasks of a project, earliest due date first.
// @Tags        Projects
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id path string true "Project ID"
// @Success     200 {object} tasksResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/projects/{id}/tasks [GET]
func (h *handler) Tasks(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	p, err := h.uc.Detail(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "project.http.Tasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out, err := h.tasks.ProjectTasks(ctx, sc, p.Project.ID)
	if err != nil {
		h.l.Errorf(ctx, "project.http.Tasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newTasksResp(out))
}

// Action godoc
// @Summary     Mutate a project
// @Description Dispatches {"action": "create|update|delete", "id", "data"}. Delete removes the project's tasks first.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       body body actionReq true "Action"
// @Success     200 {object} response.ActionResp
// @Failure     400 {object} response.ActionResp "Invalid name or color"
// @Failure     404 {object} response.ActionResp "Unknown project"
// @Failure     405 {object} response.ActionResp "Unsupported action"
// @Router      /api/v1/projects/action [POST]
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
	if err := req.Data.validate(true); err != nil {
		response.ActionError(c, err)
		return
	}

	out, err := h.uc.Create(ctx, sc, req.toCreateInput())
	if err != nil {
		h.l.Errorf(ctx, "project.http.create: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Project created successfully", map[string]any{"project": newProjectResp(out.Project)})
}

func (h *handler) update(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()
	if req.ID == "" {
		response.ActionError(c, errMissingID)
		return
	}
	if err := req.Data.validate(false); err != nil {
		response.ActionError(c, err)
		return
	}

	out, err := h.uc.Update(ctx, sc, req.toUpdateInput())
	if err != nil {
		h.l.Errorf(ctx, "project.http.update: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Project updated successfully", map[string]any{"project": newProjectResp(out.Project)})
}

func (h *handler) delete(c *gin.Context, sc model.Scope, req actionReq) {
	ctx := c.Request.Context()
	if req.ID == "" {
		response.ActionError(c, errMissingID)
		return
	}

	out, err := h.uc.Delete(ctx, sc, req.ID)
	if err != nil {
		h.l.Errorf(ctx, "project.http.delete: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}
	response.ActionOK(c, "Project deleted successfully", map[string]any{
		"id":           req.ID,
		"deletedTasks": out.DeletedTasks,
	})
}

// Generate godoc
// @Summary     Generate project tasks
// @Description Drafts tasks from a free-text goal and creates them in the project. Partial results are kept.
// @Tags        Projects
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner id"
// @Param       id   path string      true "Project ID"
// @Param       body body generateReq true "Goal"
// @Success     200 {object} response.ActionResp
// @Failure     400 {object} response.ActionResp "Missing prompt"
// @Failure     404 {object} response.ActionResp "Unknown project"
// @Failure     422 {object} response.ActionResp "Nothing generated"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/projects/{id}/tasks/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	sc, ok := h.scope(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	id, req, err := h.processGenerateReq(c)
	if err != nil {
		response.ActionError(c, err)
		return
	}

	if _, err := h.uc.Detail(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "project.http.Generate: %v", err)
		response.ActionError(c, h.mapError(err))
		return
	}

	rec := &mutation.Recorder{}
	pipeline := mutation.New(h.l, h.tasks, h.uc, h.drafter, mutation.NewSession(rec))
	res := pipeline.GenerateAndCreate(ctx, sc, nil, id, req.Prompt)
	if !res.OK() {
		h.l.Warnf(ctx, "project.http.Generate: %v", res.Err)
		if errors.Is(res.Err, mutation.ErrNothingGenerated) {
			response.ActionError(c, errNothingGenerated)
			return
		}
		response.ActionError(c, h.mapError(res.Err))
		return
	}
	response.ActionOK(c, "Tasks generated", newGenerateData(res, rec.Events()))
}
