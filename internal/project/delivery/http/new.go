package http

import (
	"github.com/gin-gonic/gin"

	"personal-task-management/internal/mutation"
	"personal-task-management/internal/project"
	"personal-task-management/internal/task"
	"personal-task-management/pkg/log"
)

// Handler is the project HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Tasks(c *gin.Context)
	Action(c *gin.Context)
	Generate(c *gin.Context)
}

type handler struct {
	l       log.Logger
	uc      project.UseCase
	tasks   task.UseCase
	drafter mutation.Drafter
}

// New creates a project handler. drafter may be nil, generation then
// always reports that nothing was generated.
func New(l log.Logger, uc project.UseCase, tasks task.UseCase, drafter mutation.Drafter) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		tasks:   tasks,
		drafter: drafter,
	}
}
