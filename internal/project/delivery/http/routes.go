package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps the project endpoints under rg. Generation is
// additionally rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	projects := rg.Group("/projects", mw.Auth())
	{
		projects.GET("", h.List)
		projects.POST("/action", h.Action)
		projects.GET("/:id", h.Detail)
		projects.GET("/:id/tasks", h.Tasks)
		projects.POST("/:id/tasks/generate", mw.RateLimit(), h.Generate)
	}
}
