package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/model"
	"personal-task-management/pkg/response"
)

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok {
		response.Unauthorized(c)
	}
	return sc, ok
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "project.delivery.http.processListReq: %v", err)
		return req, errWrongQuery
	}
	req.Search = strings.TrimSpace(req.Search)
	return req, nil
}

func (h *handler) processActionReq(c *gin.Context) (actionReq, error) {
	var req actionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "project.delivery.http.processActionReq: %v", err)
		return req, errWrongBody
	}
	req.Action = strings.ToLower(strings.TrimSpace(req.Action))
	req.ID = strings.TrimSpace(req.ID)
	return req, nil
}

func (h *handler) processGenerateReq(c *gin.Context) (string, generateReq, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", generateReq{}, errMissingID
	}

	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "project.delivery.http.processGenerateReq: %v", err)
		return "", req, errWrongBody
	}
	req.Prompt = strings.TrimSpace(req.Prompt)
	if req.Prompt == "" {
		return "", req, errMissingPrompt
	}
	return id, req, nil
}
