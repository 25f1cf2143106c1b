package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
)

// RegisterRoutes maps the task endpoints under rg. Every route needs Auth.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("/today", h.Today)
		tasks.GET("/inbox", h.Inbox)
		tasks.GET("/upcoming", h.Upcoming)
		tasks.GET("/completed", h.Completed)
		tasks.GET("/counts", h.Counts)
		tasks.POST("/action", h.Action)
		tasks.GET("/:id", h.Detail)
		tasks.PATCH("/:id/toggle", h.Toggle)
	}
}
