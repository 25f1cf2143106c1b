package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-task-management/config"
	"personal-task-management/internal/middleware"
	projectHTTP "personal-task-management/internal/project/delivery/http"
	projectMemory "personal-task-management/internal/project/repository/memory"
	projectUsecase "personal-task-management/internal/project/usecase"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	taskMemory "personal-task-management/internal/task/repository/memory"
	taskUsecase "personal-task-management/internal/task/usecase"
	"personal-task-management/pkg/datemath"
	"personal-task-management/pkg/log"
)

func newTestConfig(ready func(context.Context) error) Config {
	l := log.NewNop()
	clock := datemath.FixedClock(time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC))
	tasks := taskUsecase.New(l, taskMemory.New(), clock, nil, taskUsecase.CalendarConfig{})
	projects := projectUsecase.New(l, projectMemory.New(), tasks, clock)

	return Config{
		Logger:         l,
		Port:           8080,
		Mode:           gin.TestMode,
		Environment:    "test",
		TaskHandler:    taskHTTP.New(l, tasks, time.UTC),
		ProjectHandler: projectHTTP.New(l, projects, tasks, nil),
		Middleware:     middleware.New(l, config.RateLimitConfig{}),
		ReadyCheck:     ready,
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no mode", mutate: func(c *Config) { c.Mode = "" }},
		{name: "no port", mutate: func(c *Config) { c.Port = 0 }},
		{name: "no task handler", mutate: func(c *Config) { c.TaskHandler = nil }},
		{name: "no project handler", mutate: func(c *Config) { c.ProjectHandler = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newTestConfig(nil)
			tt.mutate(&cfg)
			if _, err := New(cfg.Logger, cfg); err == nil {
				t.Error("New() error = nil, want validation error")
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	cfg := newTestConfig(nil)
	srv, err := New(cfg.Logger, cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		path   string
		user   string
		status int
	}{
		{path: "/health", status: http.StatusOK},
		{path: "/live", status: http.StatusOK},
		{path: "/ready", status: http.StatusOK},
		{path: "/api/v1/tasks/today", status: http.StatusUnauthorized},
		{path: "/api/v1/tasks/today", user: "u1", status: http.StatusOK},
		{path: "/api/v1/projects", user: "u1", status: http.StatusOK},
		{path: "/api/v1/nope", user: "u1", status: http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		if tt.user != "" {
			req.Header.Set(middleware.HeaderUserID, tt.user)
		}
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		if w.Code != tt.status {
			t.Errorf("GET %s (user %q) = %d, want %d", tt.path, tt.user, w.Code, tt.status)
		}
		if w.Header().Get(middleware.HeaderRequestID) == "" {
			t.Errorf("GET %s: missing request id header", tt.path)
		}
	}
}

func TestHealthBody(t *testing.T) {
	cfg := newTestConfig(nil)
	srv, err := New(cfg.Logger, cfg)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body struct {
		Data map[string]string `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Data["service"] != ServiceName || body.Data["status"] != "healthy" {
		t.Errorf("health = %v", body.Data)
	}
}

func TestReadyReportsStoreFailure(t *testing.T) {
	cfg := newTestConfig(func(context.Context) error { return errors.New("database is locked") })
	srv, err := New(cfg.Logger, cfg)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}
