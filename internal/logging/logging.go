// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package logging holds the logger shared by framehost and its sub-packages.
//
// The root package re-exports SetLogger and Logger; sub-packages that cannot
// import the root package (it imports them) read the logger from here.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(Nop())
}

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Set stores l as the active logger. A nil logger restores silent output.
func Set(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	loggerPtr.Store(l)
}

// Get returns the active logger. It never returns nil.
func Get() *slog.Logger {
	return loggerPtr.Load()
}
