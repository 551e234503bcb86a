// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framehost

import (
	"context"
	"fmt"
	"image"

	"github.com/gogpu/framehost/host"
	"github.com/gogpu/framehost/input"
	"github.com/gogpu/framehost/internal/logging"
	"github.com/gogpu/framehost/pixbuf"
	"github.com/gogpu/framehost/render"
)

// State is the lifecycle state of a Session.
type State uint8

// Session states. Stopped is terminal.
const (
	Initializing State = iota
	Running
	Stopped
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Offset is the scroll phase of the gradient. It wraps through the
// renderer's 8-bit truncation, so it never needs normalising.
type Offset struct {
	X, Y int
}

// Session is the presentation loop. It owns the back buffer, the tracked
// client size, the running state and the scroll offset.
type Session struct {
	host      host.Host
	input     input.Source
	render    render.Func
	buf       *pixbuf.Buffer
	auto      Offset
	fixedW    int
	fixedH    int
	intensity uint16

	state   State
	err     error
	clientW int
	clientH int
	offset  Offset
	keys    keyboard
	frames  int
}

// NewSession creates a session presenting to h. The back buffer starts
// empty and is sized by the first resize event (or WithFixedBuffer).
func NewSession(h host.Host, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.buffer == nil {
		o.buffer = pixbuf.New()
	}
	return &Session{
		host:      h,
		input:     o.input,
		render:    o.render,
		buf:       o.buffer,
		auto:      o.auto,
		fixedW:    o.fixedW,
		fixedH:    o.fixedH,
		intensity: o.intensity,
		keys:      newKeyboard(),
	}
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Err returns the error that stopped the session, if any.
func (s *Session) Err() error { return s.err }

// Offset returns the current scroll offset.
func (s *Session) Offset() Offset { return s.offset }

// SetOffset replaces the scroll offset.
func (s *Session) SetOffset(o Offset) { s.offset = o }

// ClientSize returns the last client size reported by the host.
func (s *Session) ClientSize() (width, height int) { return s.clientW, s.clientH }

// Buffer returns the back buffer. It is owned by the session.
func (s *Session) Buffer() *pixbuf.Buffer { return s.buf }

// Frames returns the number of frames rendered.
func (s *Session) Frames() int { return s.frames }

// Stop requests the session to stop. The frame in progress, if any, still
// completes.
func (s *Session) Stop() {
	s.stop("requested")
}

// Run drives frames until the session stops or ctx is done. Cancellation is
// checked between frames. The back buffer is released before Run returns.
//
// Run returns nil on a normal stop and a non-nil error only when the back
// buffer could not be allocated.
func (s *Session) Run(ctx context.Context) error {
	defer s.buf.Release()

	for s.state != Stopped {
		if ctx.Err() != nil {
			s.stop("context done")
			break
		}
		if err := s.Frame(); err != nil {
			return err
		}
	}
	return s.err
}

// Frame runs one iteration of the loop. It returns a non-nil error only
// when back buffer allocation failed, after which the session is Stopped.
func (s *Session) Frame() error {
	if s.state == Initializing {
		s.start()
	}
	if s.state == Stopped {
		return s.err
	}

	s.drain()
	if s.state == Stopped {
		return s.err
	}

	s.applyInput()
	if s.state == Stopped {
		return nil
	}

	s.render(s.buf, s.offset.X, s.offset.Y)
	s.present()

	s.offset.X += s.auto.X
	s.offset.Y += s.auto.Y
	s.frames++
	return nil
}

func (s *Session) start() {
	s.state = Running
	logging.Get().Info("framehost: session started", "fixed_buffer", s.fixedW > 0)
	if s.fixedW > 0 {
		if err := s.buf.Resize(s.fixedW, s.fixedH); err != nil {
			s.fail(err)
		}
	}
}

func (s *Session) stop(reason string) {
	if s.state == Stopped {
		return
	}
	s.state = Stopped
	logging.Get().Info("framehost: session stopped", "reason", reason, "frames", s.frames)
}

func (s *Session) fail(err error) {
	s.err = fmt.Errorf("framehost: back buffer: %w", err)
	logging.Get().Error("framehost: back buffer allocation failed", "err", err)
	s.stop("allocation failure")
}

// drain handles every pending host event. It returns early once the
// session stops.
func (s *Session) drain() {
	for {
		ev, ok := s.host.PollEvent()
		if !ok {
			return
		}
		s.handle(ev)
		if s.state == Stopped {
			return
		}
	}
}

func (s *Session) handle(ev host.Event) {
	log := logging.Get()
	switch ev := ev.(type) {
	case host.Close:
		s.stop("close")
	case host.Resize:
		log.Debug("framehost: resize", "width", ev.Width, "height", ev.Height)
		s.clientW, s.clientH = ev.Width, ev.Height
		if s.fixedW > 0 || ev.Width <= 0 || ev.Height <= 0 {
			return
		}
		if err := s.buf.Resize(ev.Width, ev.Height); err != nil {
			s.fail(err)
		}
	case host.Key:
		switch {
		case ev.Code == host.KeyEscape && ev.Down():
			s.stop("escape")
		case ev.Code == host.KeyF4 && ev.Alt && ev.Down():
			s.stop("alt+f4")
		default:
			s.keys.update(ev)
		}
	}
}

// applyInput applies keyboard and pad directions to the offset and sends
// pad feedback.
func (s *Session) applyInput() {
	d := s.keys.direction()
	s.keys.endFrame()
	s.move(d)

	for i := 0; i < s.input.Slots(); i++ {
		state, ok := s.input.Poll(i)
		if !ok {
			continue
		}
		b := state.Buttons
		if b.Start && b.Back {
			s.stop("start+back")
			return
		}
		d := direction{up: b.Up, down: b.Down, left: b.Left, right: b.Right}
		dx := s.move(d)

		var v input.Vibration
		switch {
		case dx < 0:
			v.Left = s.intensity
		case dx > 0:
			v.Right = s.intensity
		}
		s.input.SetFeedback(i, v)
	}
}

// move applies one step of d to the offset and returns the horizontal step.
func (s *Session) move(d direction) int {
	dx, dy := d.delta()
	s.offset.X += dx
	s.offset.Y += dy
	return dx
}

func (s *Session) present() {
	if s.buf.Empty() || s.clientW <= 0 || s.clientH <= 0 {
		return
	}
	dst := image.Rect(0, 0, s.clientW, s.clientH)
	if err := s.host.Present(dst, s.buf); err != nil {
		logging.Get().Warn("framehost: present failed", "err", err)
	}
}
