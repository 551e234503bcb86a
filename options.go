// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framehost

import (
	"github.com/gogpu/framehost/input"
	"github.com/gogpu/framehost/pixbuf"
	"github.com/gogpu/framehost/render"
)

// DefaultFeedbackIntensity is the motor speed sent while a pad direction
// is held.
const DefaultFeedbackIntensity uint16 = 60000

// Option configures a Session during creation.
//
// Example:
//
//	s := framehost.NewSession(h,
//	    framehost.WithInput(pads),
//	    framehost.WithFixedBuffer(1280, 720),
//	)
type Option func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	input     input.Source
	render    render.Func
	buffer    *pixbuf.Buffer
	auto      Offset
	fixedW    int
	fixedH    int
	intensity uint16
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		input:     input.Unbound(),
		render:    render.Gradient,
		intensity: DefaultFeedbackIntensity,
	}
}

// WithInput sets the controller source. Without it the session runs with
// an unbound binding and only keyboard input.
func WithInput(src input.Source) Option {
	return func(o *sessionOptions) {
		if src != nil {
			o.input = src
		}
	}
}

// WithRenderer replaces the gradient renderer.
func WithRenderer(fn render.Func) Option {
	return func(o *sessionOptions) {
		if fn != nil {
			o.render = fn
		}
	}
}

// WithBuffer sets the back buffer the session owns. Use it to inject a
// buffer with a custom allocator. The session releases it when Run returns.
func WithBuffer(buf *pixbuf.Buffer) Option {
	return func(o *sessionOptions) {
		o.buffer = buf
	}
}

// WithAutoScroll adds (dx, dy) to the offset after every presented frame.
func WithAutoScroll(dx, dy int) Option {
	return func(o *sessionOptions) {
		o.auto = Offset{X: dx, Y: dy}
	}
}

// WithFixedBuffer keeps the back buffer at width×height for the whole
// session. Resize events then only move the destination rectangle and the
// frame is stretched onto it. Non-positive dimensions disable the option.
func WithFixedBuffer(width, height int) Option {
	return func(o *sessionOptions) {
		if width <= 0 || height <= 0 {
			o.fixedW, o.fixedH = 0, 0
			return
		}
		o.fixedW, o.fixedH = width, height
	}
}

// WithFeedbackIntensity sets the motor speed sent while a pad direction is
// held. The value is in the device's native range; see input.Intensity.
func WithFeedbackIntensity(v uint16) Option {
	return func(o *sessionOptions) {
		o.intensity = v
	}
}
