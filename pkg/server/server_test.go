package server

import (
	"context"
	"log/slog"
	"testing"

	"github.com/NVIDIA/datacontract/pkg/logging"
)

func TestNewAppliesConfigLogLevel(t *testing.T) {
	logging.Setup(false, false)
	defer logging.SetLevel("info")

	cfg := DefaultConfig()
	cfg.LogLevel = "error"
	New(cfg)

	ctx := context.Background()
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("expected info to be disabled when config sets error level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelError) {
		t.Error("expected error to remain enabled")
	}
}
