package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/framehost"
	"github.com/gogpu/framehost/config"
	"github.com/gogpu/framehost/host"
	"github.com/gogpu/framehost/input"
	"github.com/gogpu/framehost/render"
	"github.com/gogpu/framehost/snapshot"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// flags mirrors the configuration keys that can be overridden on the
// command line. Only flags the user set replace file values.
type flags struct {
	host         string
	width        int
	height       int
	frames       int
	frameRate    int
	workers      int
	snapshot     string
	fixed        bool
	bufferWidth  int
	bufferHeight int
	scrollX      int
	scrollY      int
	feedback     float64
	logLevel     string
	logFile      string
}

func (f *flags) register(cmd *cobra.Command) {
	d := config.Default()
	fs := cmd.Flags()
	fs.StringVar(&f.host, "host", d.Host, "Host to present to (see 'framehost hosts')")
	fs.IntVar(&f.width, "width", d.Width, "Client width for hosts that choose their size")
	fs.IntVar(&f.height, "height", d.Height, "Client height for hosts that choose their size")
	fs.IntVarP(&f.frames, "frames", "n", d.Frames, "Stop the headless host after this many frames (0 = unlimited)")
	fs.IntVar(&f.frameRate, "frame-rate", d.FrameRate, "Frames per second for self-pacing hosts")
	fs.IntVar(&f.workers, "workers", d.Workers, "Render frames in bands on this many goroutines (0 = loop goroutine)")
	fs.StringVar(&f.snapshot, "snapshot", d.Snapshot, "Write the last headless frame to this file (.png, .webp, .tga)")
	fs.BoolVar(&f.fixed, "fixed", d.Buffer.Fixed, "Keep a fixed-size back buffer and stretch it")
	fs.IntVar(&f.bufferWidth, "buffer-width", d.Buffer.Width, "Fixed back buffer width")
	fs.IntVar(&f.bufferHeight, "buffer-height", d.Buffer.Height, "Fixed back buffer height")
	fs.IntVar(&f.scrollX, "scroll-x", d.Scroll.X, "Horizontal offset added after every frame")
	fs.IntVar(&f.scrollY, "scroll-y", d.Scroll.Y, "Vertical offset added after every frame")
	fs.Float64Var(&f.feedback, "feedback", d.Input.Feedback, "Controller motor intensity in [0, 1]")
	fs.StringVar(&f.logLevel, "log-level", d.Log.Level, "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFile, "log-file", d.Log.File, "Write logs to this file instead of stderr")
}

func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("host") {
		cfg.Host = f.host
	}
	if set("width") {
		cfg.Width = f.width
	}
	if set("height") {
		cfg.Height = f.height
	}
	if set("frames") {
		cfg.Frames = f.frames
	}
	if set("frame-rate") {
		cfg.FrameRate = f.frameRate
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("snapshot") {
		cfg.Snapshot = f.snapshot
	}
	if set("fixed") {
		cfg.Buffer.Fixed = f.fixed
	}
	if set("buffer-width") {
		cfg.Buffer.Width = f.bufferWidth
	}
	if set("buffer-height") {
		cfg.Buffer.Height = f.bufferHeight
	}
	if set("scroll-x") {
		cfg.Scroll.X = f.scrollX
	}
	if set("scroll-y") {
		cfg.Scroll.Y = f.scrollY
	}
	if set("feedback") {
		cfg.Input.Feedback = f.feedback
	}
	if set("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if set("log-file") {
		cfg.Log.File = f.logFile
	}
}

// run executes one session with cfg.
func run(ctx context.Context, cfg config.Config, stderr io.Writer) error {
	name, err := hostName(cfg.Host)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log, name, stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	log := framehost.Logger()

	h, err := host.NewByName(name, host.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		FrameRate: cfg.FrameRate,
	})
	if err != nil {
		return err
	}
	if c, ok := h.(io.Closer); ok {
		defer func() { _ = c.Close() }()
	}
	img, headless := h.(*host.ImageHost)
	if headless && cfg.Frames > 0 {
		img.CloseAfter(cfg.Frames)
	}

	pads := input.Resolve(input.DefaultLoader(), cfg.Input.Candidates)
	opts := append(cfg.SessionOptions(), framehost.WithInput(pads))
	if cfg.Workers > 0 {
		banded := render.NewBanded(cfg.Workers, render.GradientRows)
		defer banded.Close()
		opts = append(opts, framehost.WithRenderer(banded.Render))
	}
	s := framehost.NewSession(h, opts...)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	runErr := s.Run(ctx)
	log.Info("framehost: done", "host", name, "frames", s.Frames(), "elapsed", time.Since(start))

	if headless && cfg.Snapshot != "" {
		if err := snapshot.Save(cfg.Snapshot, img.Snapshot()); err != nil {
			return errors.Join(runErr, err)
		}
		log.Info("framehost: snapshot written", "path", cfg.Snapshot)
	}
	return runErr
}

// hostName resolves "auto" to the best available registered host.
func hostName(name string) (string, error) {
	if name != config.AutoHost {
		return name, nil
	}
	available := host.Available()
	if len(available) == 0 {
		return "", host.ErrNoHostAvailable
	}
	return available[0], nil
}

// setupLogging installs a tint handler. Logging to stderr is disabled while
// the terminal host owns the screen unless a log file is given.
func setupLogging(lc config.LogConfig, hostName string, stderr io.Writer) (func(), error) {
	level, err := lc.SlogLevel()
	if err != nil {
		return nil, err
	}

	w := stderr
	noColor := true
	closeFn := func() {}
	switch {
	case lc.File != "":
		f, err := os.OpenFile(lc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("framehost: open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	case hostName == "terminal":
		framehost.SetLogger(nil)
		return closeFn, nil
	default:
		if fd, ok := stderr.(interface{ Fd() uintptr }); ok {
			noColor = !term.IsTerminal(int(fd.Fd()))
		}
	}

	framehost.SetLogger(slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    noColor,
	})))
	return closeFn, nil
}
