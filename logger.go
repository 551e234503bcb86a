// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framehost

import (
	"log/slog"

	"github.com/gogpu/framehost/internal/logging"
)

// SetLogger configures the logger for framehost and all its sub-packages.
// By default, framehost produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by framehost:
//   - [slog.LevelDebug]: per-event diagnostics (resizes, ignored keys, poll failures)
//   - [slog.LevelInfo]: lifecycle events (driver bound, session started/stopped)
//   - [slog.LevelWarn]: non-fatal issues (present failures)
//
// Example:
//
//	framehost.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by framehost.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Get()
}
