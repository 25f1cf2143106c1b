package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"personal-task-management/config"
	"personal-task-management/internal/app"
	"personal-task-management/internal/model"
	"personal-task-management/internal/mutation"
	"personal-task-management/pkg/log"
	"personal-task-management/pkg/sqlite"
)

type options struct {
	user    string
	dbPath  string
	memory  bool
	verbose bool
}

// env is one command invocation: wired services plus the held store lock.
type env struct {
	cfg      *config.Config
	l        log.Logger
	svc      *app.Services
	sc       model.Scope
	session  *mutation.Session
	pipeline *mutation.Pipeline
	out      io.Writer

	db   *sql.DB
	lock *flock.Flock
}

func openEnv(cmd *cobra.Command, opts *options) (*env, error) {
	ctx := cmd.Context()

	user := strings.TrimSpace(opts.user)
	if user == "" {
		return nil, errors.New("a user is required (--user)")
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := "warn"
	if opts.verbose {
		level = "debug"
	}
	l := log.Init(log.ZapConfig{Level: level, Mode: log.ModeProduction, Encoding: log.EncodingConsole, Stderr: true})

	e := &env{
		cfg: cfg,
		l:   l,
		sc:  model.Scope{UserID: user},
		out: cmd.OutOrStdout(),
	}

	if !opts.memory {
		path := opts.dbPath
		if path == "" {
			path = cfg.Database.Path
		}
		if path == "" {
			path = sqlite.DefaultPath()
		}
		if err := e.openStore(path); err != nil {
			return nil, err
		}
	}

	svc, err := app.Build(ctx, cfg, l, e.db)
	if err != nil {
		e.close()
		return nil, err
	}
	e.svc = svc

	e.session = mutation.NewSession(newStatusSink(cmd.ErrOrStderr(), opts.verbose))
	e.pipeline = svc.Pipeline(l, e.session)
	return e, nil
}

// openStore takes the store lock, then opens the database. Only one
// taskctl may write a database at a time.
func (e *env) openStore(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("%s is in use by another taskctl", path)
	}
	e.lock = lock

	db, err := sqlite.Open(path)
	if err != nil {
		e.close()
		return err
	}
	e.db = db
	return nil
}

func (e *env) close() {
	if e.db != nil {
		e.db.Close()
	}
	if e.lock != nil {
		e.lock.Unlock()
	}
}

// withEnv runs fn with an open env and releases it afterwards.
func withEnv(opts *options, fn func(ctx context.Context, e *env, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		e, err := openEnv(cmd, opts)
		if err != nil {
			return err
		}
		defer e.close()
		return fn(cmd.Context(), e, args)
	}
}

// resultErr turns a failed mutation into a command error. The user has
// already seen the notification, so the message stays short.
func resultErr(res mutation.Result) error {
	switch res.Status {
	case mutation.StatusFailed:
		return errors.New("operation failed")
	case mutation.StatusDropped:
		return errors.New("operation already in progress")
	}
	return nil
}
