package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/framehost"
	"github.com/gogpu/framehost/config"
	"github.com/gogpu/framehost/snapshot"
	"github.com/spf13/cobra"
)

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	var f flags
	cmd := &cobra.Command{}
	f.register(cmd)
	if err := cmd.ParseFlags([]string{"--host", "image", "-n", "5", "--fixed", "--scroll-x", "2"}); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.Width = 99
	f.apply(cmd, &cfg)

	if cfg.Host != "image" || cfg.Frames != 5 || !cfg.Buffer.Fixed || cfg.Scroll.X != 2 {
		t.Errorf("flags not applied: %+v", cfg)
	}
	if cfg.Width != 99 {
		t.Errorf("unset flag replaced file value: width = %d", cfg.Width)
	}
}

func TestHostName(t *testing.T) {
	if got, err := hostName("image"); err != nil || got != "image" {
		t.Errorf("hostName(image) = %q, %v", got, err)
	}
	got, err := hostName(config.AutoHost)
	if err != nil || got == "" {
		t.Errorf("hostName(auto) = %q, %v", got, err)
	}
}

func TestListHosts(t *testing.T) {
	var buf bytes.Buffer
	listHosts(&buf)
	out := buf.String()
	if !strings.Contains(out, "image") || !strings.Contains(out, "terminal") {
		t.Errorf("listHosts output missing hosts:\n%s", out)
	}
}

func TestRunHeadless(t *testing.T) {
	t.Cleanup(func() { framehost.SetLogger(nil) })
	dir := t.TempDir()

	cfg := config.Default()
	cfg.Host = "image"
	cfg.Width, cfg.Height = 8, 6
	cfg.Frames = 3
	cfg.Workers = 2
	cfg.Snapshot = filepath.Join(dir, "last.png")
	cfg.Log.File = filepath.Join(dir, "framehost.log")

	var stderr bytes.Buffer
	if err := run(context.Background(), cfg, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if _, err := os.Stat(cfg.Snapshot); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
	logData, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"session started", "session stopped", "frames=3"} {
		if !strings.Contains(string(logData), want) {
			t.Errorf("log missing %q:\n%s", want, logData)
		}
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr should be empty when logging to a file, got %q", stderr.String())
	}
}

func TestRunBadSnapshotPath(t *testing.T) {
	t.Cleanup(func() { framehost.SetLogger(nil) })

	cfg := config.Default()
	cfg.Host = "image"
	cfg.Frames = 1
	cfg.Snapshot = filepath.Join(t.TempDir(), "missing", "last.png")

	var stderr bytes.Buffer
	err := run(context.Background(), cfg, &stderr)
	if err == nil {
		t.Fatal("run() should fail when the snapshot cannot be written")
	}
	if errors.Is(err, snapshot.ErrUnknownFormat) {
		t.Errorf("unexpected format error: %v", err)
	}
}

func TestRunUnknownHost(t *testing.T) {
	t.Cleanup(func() { framehost.SetLogger(nil) })
	cfg := config.Default()
	cfg.Host = "nope"
	if err := run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("run() should fail for an unknown host")
	}
}
