package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/nkostic/transferhub/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("NATS_URL", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL == "" {
		t.Fatalf("expected default database URL to be set")
	}

	if cfg.NATSURL != "" {
		t.Fatalf("expected NATS URL default to be empty, got %q", cfg.NATSURL)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.PlayerCacheTTL != 5*time.Minute {
		t.Fatalf("expected default player cache TTL 5m, got %s", cfg.PlayerCacheTTL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("REDIS_URL", "redis://example")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PLAYER_DIRECTORY_URL", "http://players.internal")
	t.Setenv("TEAM_DIRECTORY_URL", "http://teams.internal")
	t.Setenv("DIRECTORY_TIMEOUT", "2s")
	t.Setenv("NATS_URL", "nats://example:4222")
	t.Setenv("OUTBOX_INTERVAL", "1s")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DatabaseURL != "postgres://example" {
		t.Fatalf("expected custom database URL, got %s", cfg.DatabaseURL)
	}

	if cfg.RedisURL != "redis://example" {
		t.Fatalf("expected custom redis URL, got %s", cfg.RedisURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.PlayerDirectoryURL != "http://players.internal" || cfg.TeamDirectoryURL != "http://teams.internal" {
		t.Fatalf("expected directory URL overrides, got %s and %s", cfg.PlayerDirectoryURL, cfg.TeamDirectoryURL)
	}

	if cfg.DirectoryTimeout != 2*time.Second {
		t.Fatalf("expected directory timeout override, got %s", cfg.DirectoryTimeout)
	}

	if cfg.NATSURL != "nats://example:4222" || cfg.OutboxInterval != time.Second {
		t.Fatalf("expected event settings to be set, got url=%s interval=%s", cfg.NATSURL, cfg.OutboxInterval)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
