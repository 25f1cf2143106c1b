package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/task"
	"personal-task-management/pkg/log"
)

// Handler is the task HTTP delivery layer.
type Handler interface {
	Today(c *gin.Context)
	Inbox(c *gin.Context)
	Upcoming(c *gin.Context)
	Completed(c *gin.Context)
	Counts(c *gin.Context)
	Detail(c *gin.Context)
	Action(c *gin.Context)
	Toggle(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	loc *time.Location
}

// New creates a task handler. Bare dates in requests are read in loc.
func New(l log.Logger, uc task.UseCase, loc *time.Location) Handler {
	if loc == nil {
		loc = time.Local
	}
	return &handler{
		l:   l,
		uc:  uc,
		loc: loc,
	}
}
