package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/response"
)

// scope returns the caller set by the Auth middleware, answering 401 when absent.
func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

func (h *handler) processActionReq(c *gin.Context) (actionReq, error) {
	var req actionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processActionReq: %v", err)
		return req, errWrongBody
	}
	req.Action = strings.ToLower(strings.TrimSpace(req.Action))
	req.ID = strings.TrimSpace(req.ID)
	return req, nil
}

func (h *handler) processToggleReq(c *gin.Context) (string, bool, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", false, errMissingID
	}

	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processToggleReq: %v", err)
		return "", false, errWrongBody
	}
	if req.Completed == nil {
		return "", false, errMissingCompleted
	}
	return id, *req.Completed, nil
}
