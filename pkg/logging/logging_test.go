package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetLevelAdjustsInstalledHandler(t *testing.T) {
	Setup(false, false)
	defer SetLevel("info")

	ctx := context.Background()

	SetLevel("error")
	if slog.Default().Enabled(ctx, slog.LevelInfo) {
		t.Error("expected info to be disabled at error level")
	}
	if !slog.Default().Enabled(ctx, slog.LevelError) {
		t.Error("expected error to be enabled at error level")
	}

	SetLevel("debug")
	if !slog.Default().Enabled(ctx, slog.LevelDebug) {
		t.Error("expected debug to be enabled after SetLevel(debug)")
	}
}
