/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package logging configures the process-wide structured logger.
//
// All packages in this module log through log/slog; this package installs the
// default handler based on CLI flags and the LOG_LEVEL environment variable.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// level backs the installed handler so the level can be adjusted after
// Setup, e.g. from server configuration.
var level slog.LevelVar

// Setup installs the default slog handler.
//
// When debug is true the level is forced to debug; otherwise the level is
// taken from the LOG_LEVEL environment variable (debug, info, warn, error),
// defaulting to info. When jsonOut is true logs are emitted as JSON lines,
// which is what log collectors expect in cluster deployments.
func Setup(debug, jsonOut bool) {
	level.Set(slog.LevelInfo)
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level.Set(parseLevel(v))
	}
	if debug {
		level.Set(slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{Level: &level}

	var handler slog.Handler
	if jsonOut {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// SetLevel adjusts the level of the handler installed by Setup. Unknown
// names fall back to info.
func SetLevel(s string) {
	level.Set(parseLevel(s))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
