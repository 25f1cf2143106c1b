package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"personal-task-management/config"
	_ "personal-task-management/docs" // Swagger docs
	"personal-task-management/internal/app"
	"personal-task-management/internal/httpserver"
	"personal-task-management/internal/middleware"
	projectHTTP "personal-task-management/internal/project/delivery/http"
	taskHTTP "personal-task-management/internal/task/delivery/http"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/sqlite"
)

// @title       Personal Task Management API
// @description Task scheduling and mutation engine for a personal task manager.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	dbPath := cfg.Database.Path
	if dbPath == "" {
		dbPath = sqlite.DefaultPath()
	}
	db, err := sqlite.Open(dbPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database %s: %v", dbPath, err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", dbPath)

	// 4. Domain services
	svc, err := app.Build(ctx, cfg, logger, db)
	if err != nil {
		logger.Errorf(ctx, "Failed to build services: %v", err)
		return
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TaskHandler:    taskHTTP.New(logger, svc.Tasks, svc.Location),
		ProjectHandler: projectHTTP.New(logger, svc.Projects, svc.Tasks, svc.Drafter),
		Middleware:     middleware.New(logger, cfg.RateLimit),
		ReadyCheck:     db.PingContext,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
