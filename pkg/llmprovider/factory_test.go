package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"personal-task-management/config"
)

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k2", Model: "gemini-2.5-pro"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k1", Model: "gemini-2.5-flash", Timeout: "10s"},
			{Name: "gemini", Enabled: false, Priority: 3, APIKey: "k3", Model: "off"},
			{Name: "unknown", Enabled: true, Priority: 4, APIKey: "k4", Model: "m"},
		},
	}
	logger := &mockLogger{}

	providers, err := InitializeProviders(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("got %d providers, want 2", len(providers))
	}
	if providers[0].Model() != "gemini-2.5-flash" || providers[1].Model() != "gemini-2.5-pro" {
		t.Errorf("order = %s, %s", providers[0].Model(), providers[1].Model())
	}
	if logger.warns != 1 {
		t.Errorf("warns = %d, want 1 for the unknown provider", logger.warns)
	}
}

func TestInitializeProvidersErrors(t *testing.T) {
	if _, err := InitializeProviders(context.Background(), &config.LLMConfig{}, &mockLogger{}); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("empty config err = %v", err)
	}

	noKey := &config.LLMConfig{Providers: []config.ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, Model: "m"}}}
	if _, err := InitializeProviders(context.Background(), noKey, &mockLogger{}); err == nil {
		t.Error("expected error when no provider initializes")
	}
}

func TestManagerConfig(t *testing.T) {
	got := ManagerConfig(&config.LLMConfig{FallbackEnabled: true, RetryAttempts: 0, RetryDelay: "250ms", MaxTotalTimeout: "bogus"})
	if got.RetryAttempts != 1 || got.RetryDelay != 250*time.Millisecond || got.MaxTotalTimeout != 60*time.Second || !got.FallbackEnabled {
		t.Errorf("ManagerConfig = %+v", got)
	}
}

func TestInitializeCompatProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k2", Model: "deepseek-chat"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "k1", Model: "qwen-plus"},
		},
	}
	providers, err := InitializeProviders(context.Background(), cfg, &mockLogger{})
	if err != nil {
		t.Fatalf("InitializeProviders: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("got %d providers", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "deepseek" || providers[1].Model() != "deepseek-chat" {
		t.Errorf("providers = %s/%s, %s/%s", providers[0].Name(), providers[0].Model(), providers[1].Name(), providers[1].Model())
	}
}
