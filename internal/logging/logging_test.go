// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("k", "v")}).(nopHandler); !ok {
		t.Error("WithAttrs did not return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup did not return nopHandler")
	}
}

func TestDefaultSilent(t *testing.T) {
	l := Get()
	if l == nil {
		t.Fatal("Get() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestSet(t *testing.T) {
	orig := Get()
	t.Cleanup(func() { Set(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Set(custom)

	if Get() != custom {
		t.Fatal("Get() did not return the logger passed to Set")
	}
	Get().Info("frame presented", "n", 1)
	if !strings.Contains(buf.String(), "frame presented") {
		t.Errorf("log output = %q, want it to contain the message", buf.String())
	}

	Set(nil)
	if Get().Enabled(context.Background(), slog.LevelError) {
		t.Error("Set(nil) should restore the silent logger")
	}
}
