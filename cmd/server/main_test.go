package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/nkostic/transferhub/internal/infrastructure/config"
)

func TestNewSlogger(t *testing.T) {
	logger := newSlogger(&config.Config{LogLevel: "debug", LogFormat: "text"})
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected debug level to be enabled")
	}

	logger = newSlogger(&config.Config{LogLevel: "warn", LogFormat: "json"})
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info level to be disabled at warn")
	}

	// Unknown levels fall back to info.
	logger = newSlogger(&config.Config{LogLevel: "bogus"})
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatalf("expected info level fallback")
	}
}
