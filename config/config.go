// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package config loads framehost settings from a TOML file.
//
// A minimal file:
//
//	host = "terminal"
//	frames = 0
//
//	[scroll]
//	x = 1
//
//	[log]
//	level = "debug"
//	file = "framehost.log"
//
// Every key is optional; missing keys keep the values from Default.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/framehost"
	"github.com/gogpu/framehost/input"
	"github.com/gogpu/framehost/snapshot"
)

// AutoHost selects the highest-priority available host.
const AutoHost = "auto"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete runtime configuration.
type Config struct {
	// Host names a registered host, or "auto".
	Host string `toml:"host"`

	// Width and Height size hosts that can choose their client area.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Frames stops the headless host after this many frames. Zero runs
	// until the host closes.
	Frames int `toml:"frames"`

	// FrameRate caps presents per second for self-pacing hosts.
	FrameRate int `toml:"frame_rate"`

	// Workers renders each frame in bands on this many goroutines.
	// Zero renders on the loop goroutine.
	Workers int `toml:"workers"`

	// Snapshot is the image file written with the last headless frame.
	Snapshot string `toml:"snapshot,omitempty"`

	Buffer BufferConfig `toml:"buffer"`
	Scroll ScrollConfig `toml:"scroll"`
	Input  InputConfig  `toml:"input"`
	Log    LogConfig    `toml:"log"`
}

// BufferConfig controls the back buffer size policy.
type BufferConfig struct {
	// Fixed keeps the buffer at Width×Height and stretches it to the client.
	Fixed  bool `toml:"fixed"`
	Width  int  `toml:"width"`
	Height int  `toml:"height"`
}

// ScrollConfig is the per-frame automatic offset change.
type ScrollConfig struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

// InputConfig controls the controller binding.
type InputConfig struct {
	// Candidates are the driver libraries to try, in order.
	Candidates []string `toml:"candidates"`

	// Feedback is the motor intensity in [0, 1].
	Feedback float64 `toml:"feedback"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File receives the log. Empty means stderr.
	File string `toml:"file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Host:      AutoHost,
		Width:     320,
		Height:    240,
		FrameRate: 30,
		Buffer: BufferConfig{
			Width:  1280,
			Height: 720,
		},
		Input: InputConfig{
			Candidates: slices.Clone(input.DefaultCandidates),
			Feedback:   float64(framehost.DefaultFeedbackIntensity) / 65535,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default.
func LoadOptional(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Host == "":
		return fmt.Errorf("%w: host must not be empty", ErrInvalid)
	case c.Width < 0 || c.Height < 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.FrameRate < 0:
		return fmt.Errorf("%w: frame_rate %d", ErrInvalid, c.FrameRate)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Buffer.Fixed && (c.Buffer.Width <= 0 || c.Buffer.Height <= 0):
		return fmt.Errorf("%w: fixed buffer %dx%d", ErrInvalid, c.Buffer.Width, c.Buffer.Height)
	case c.Input.Feedback < 0 || c.Input.Feedback > 1:
		return fmt.Errorf("%w: input.feedback %v outside [0, 1]", ErrInvalid, c.Input.Feedback)
	}
	if c.Snapshot != "" {
		if _, err := snapshot.FormatFromPath(c.Snapshot); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses Level.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("%w: log.level %q", ErrInvalid, l.Level)
	}
	return level, nil
}

// SessionOptions converts the loop settings into session options.
// The input source is left to the caller.
func (c Config) SessionOptions() []framehost.Option {
	opts := []framehost.Option{
		framehost.WithAutoScroll(c.Scroll.X, c.Scroll.Y),
		framehost.WithFeedbackIntensity(input.Intensity(c.Input.Feedback)),
	}
	if c.Buffer.Fixed {
		opts = append(opts, framehost.WithFixedBuffer(c.Buffer.Width, c.Buffer.Height))
	}
	return opts
}
