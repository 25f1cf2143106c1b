package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-management/internal/middleware"
	projectHTTP "personal-task-management/internal/project/delivery/http"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	"personal-task-management/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	taskHandler    taskHTTP.Handler
	projectHandler projectHTTP.Handler
	mw             middleware.Middleware

	ready func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	TaskHandler    taskHTTP.Handler
	ProjectHandler projectHTTP.Handler
	Middleware     middleware.Middleware

	// ReadyCheck backs /ready, typically a database ping. Optional.
	ReadyCheck func(ctx context.Context) error
}

// New creates a new HTTPServer with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		taskHandler:    cfg.TaskHandler,
		projectHandler: cfg.ProjectHandler,
		mw:             cfg.Middleware,
		ready:          cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.projectHandler == nil {
		return errors.New("project handler is required")
	}
	return nil
}
