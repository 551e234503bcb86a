// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package terminal presents frames on a character terminal through tcell.
//
// Each cell shows two vertically stacked pixels using the upper half block:
// the foreground colour is the top pixel, the background the bottom one. A
// terminal of cols×rows cells is therefore a client area of cols×(rows*2)
// pixels, less the status line when it is enabled.
//
// Terminals report key presses but not releases, so every press is delivered
// as a press immediately followed by a release.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/framehost/host"
	"github.com/gogpu/framehost/internal/logging"
	"github.com/gogpu/framehost/pixbuf"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const upperHalfBlock = '▀'

// DefaultFrameRate is the pacing used by the registered "terminal" host.
const DefaultFrameRate = 30

// Host is a tcell screen acting as a framehost host.
//
// PollEvent and Present must be called from one goroutine; a private
// goroutine reads the terminal and feeds the event queue.
type Host struct {
	*host.Queue

	screen   tcell.Screen
	status   bool
	staging  *image.RGBA
	frames   int
	interval time.Duration
	last     time.Time

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Host.
type Option func(*Host)

// WithStatusLine enables or disables the bottom status line. It is on by
// default.
func WithStatusLine(on bool) Option {
	return func(h *Host) { h.status = on }
}

// WithFrameRate limits presentation to fps frames per second by waiting in
// Present, the way a vsynced swap would. Zero or negative disables pacing.
func WithFrameRate(fps int) Option {
	return func(h *Host) {
		if fps <= 0 {
			h.interval = 0
			return
		}
		h.interval = time.Second / time.Duration(fps)
	}
}

// New initialises screen and starts reading its events. The current size is
// queued as the first Resize event.
func New(screen tcell.Screen, opts ...Option) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	h := &Host{
		Queue:  host.NewQueue(),
		screen: screen,
		status: true,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}

	w, hh := h.ClientSize()
	h.Push(host.Resize{Width: w, Height: hh})

	go h.pump()
	return h, nil
}

// ClientSize returns the pixel area available for frames.
func (h *Host) ClientSize() (width, height int) {
	cols, rows := h.screen.Size()
	if h.status {
		rows--
	}
	if cols < 0 || rows < 0 {
		return 0, 0
	}
	return cols, rows * 2
}

func (h *Host) pump() {
	defer close(h.done)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		for _, out := range h.translate(ev) {
			h.Push(out)
		}
	}
}

// translate converts a tcell event into zero or more host events.
func (h *Host) translate(ev tcell.Event) []host.Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, hh := h.ClientSize()
		return []host.Event{host.Resize{Width: w, Height: hh}}
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return []host.Event{host.Close{}}
		}
		code := keyCode(ev)
		if code == host.KeyUnknown {
			logging.Get().Debug("terminal: ignored key", "key", ev.Name())
			return nil
		}
		alt := ev.Modifiers()&tcell.ModAlt != 0
		return []host.Event{
			host.Key{Code: code, Pressed: true, Alt: alt},
			host.Key{Code: code, WasPressed: true, Alt: alt},
		}
	}
	return nil
}

func keyCode(ev *tcell.EventKey) host.KeyCode {
	switch ev.Key() {
	case tcell.KeyEscape:
		return host.KeyEscape
	case tcell.KeyF4:
		return host.KeyF4
	case tcell.KeyUp:
		return host.KeyUp
	case tcell.KeyDown:
		return host.KeyDown
	case tcell.KeyLeft:
		return host.KeyLeft
	case tcell.KeyRight:
		return host.KeyRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return host.KeyW
		case 'a', 'A':
			return host.KeyA
		case 's', 'S':
			return host.KeyS
		case 'd', 'D':
			return host.KeyD
		case 'q', 'Q':
			return host.KeyQ
		case 'e', 'E':
			return host.KeyE
		case ' ':
			return host.KeySpace
		}
	}
	return host.KeyUnknown
}

// Present implements host.Presenter.
func (h *Host) Present(dst image.Rectangle, src *pixbuf.Buffer) error {
	select {
	case <-h.done:
		return host.ErrNoSurface
	default:
	}
	if dst.Empty() {
		return host.ErrNoSurface
	}

	if h.staging == nil || h.staging.Bounds().Size() != dst.Size() {
		h.staging = image.NewRGBA(image.Rectangle{Max: dst.Size()})
	}
	host.Stretch(h.staging, h.staging.Bounds(), src)

	cellY0 := dst.Min.Y / 2
	for cy := 0; cy*2 < dst.Dy(); cy++ {
		for x := 0; x < dst.Dx(); x++ {
			top := h.staging.RGBAAt(x, cy*2)
			style := tcell.StyleDefault.Foreground(rgb(top))
			if cy*2+1 < dst.Dy() {
				style = style.Background(rgb(h.staging.RGBAAt(x, cy*2+1)))
			}
			h.screen.SetContent(dst.Min.X+x, cellY0+cy, upperHalfBlock, nil, style)
		}
	}

	h.frames++
	if h.status {
		h.drawStatus(fmt.Sprintf(" framehost  %dx%d  frame %d  arrows/wasd scroll  esc quit",
			src.Width(), src.Height(), h.frames))
	}
	h.screen.Show()
	h.pace()
	return nil
}

func (h *Host) pace() {
	if h.interval <= 0 {
		return
	}
	if wait := h.interval - time.Since(h.last); wait > 0 {
		time.Sleep(wait)
	}
	h.last = time.Now()
}

func (h *Host) drawStatus(text string) {
	cols, rows := h.screen.Size()
	if rows <= 0 || cols <= 0 {
		return
	}
	y := rows - 1
	style := tcell.StyleDefault.Reverse(true)
	text = runewidth.Truncate(text, cols, "…")

	x := 0
	for _, r := range text {
		h.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	for ; x < cols; x++ {
		h.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Frames returns the number of frames presented.
func (h *Host) Frames() int { return h.frames }

// Close restores the terminal. Close is idempotent.
func (h *Host) Close() error {
	h.closeOnce.Do(func() {
		h.screen.Fini()
	})
	return nil
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Available reports whether stdout is attached to a terminal.
func Available() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func init() {
	host.Register("terminal", 50, func(opts host.Options) (host.Host, error) {
		screen, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("terminal: %w", err)
		}
		fps := opts.FrameRate
		if fps <= 0 {
			fps = DefaultFrameRate
		}
		h, err := New(screen, WithFrameRate(fps))
		if err != nil {
			return nil, err
		}
		return h, nil
	}, Available)
}

var _ host.Host = (*Host)(nil)
