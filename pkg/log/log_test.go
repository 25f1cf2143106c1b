package log_test

import (
	"context"
	"testing"

	"personal-task-management/pkg/log"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{name: "debug console", cfg: log.ZapConfig{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true}},
		{name: "production json", cfg: log.ZapConfig{Level: "info", Mode: "production", Encoding: "json"}},
		{name: "invalid level falls back", cfg: log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatalf("expected logger, got nil")
			}
			ctx := log.WithRequestID(context.Background(), "req-1")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(ctx, "debug line")
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded: %v", 1)
}
