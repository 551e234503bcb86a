// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"sync"

	"github.com/gogpu/framehost/host"
	"github.com/gogpu/gpucontext"
)

// Events turns gpucontext window callbacks into queued host events.
type Events struct {
	*host.Queue

	mu   sync.Mutex
	down map[gpucontext.Key]bool
}

// NewEvents registers resize and keyboard callbacks on src. The window's
// current size, when known, should be reported with Resize after creation.
func NewEvents(src gpucontext.EventSource) *Events {
	e := &Events{
		Queue: host.NewQueue(),
		down:  make(map[gpucontext.Key]bool),
	}
	src.OnResize(e.Resize)
	src.OnKeyPress(func(k gpucontext.Key, mods gpucontext.Modifiers) { e.key(k, mods, true) })
	src.OnKeyRelease(func(k gpucontext.Key, mods gpucontext.Modifiers) { e.key(k, mods, false) })
	return e
}

// Resize queues a Resize event.
func (e *Events) Resize(width, height int) {
	e.Push(host.Resize{Width: width, Height: height})
}

// Close queues a Close event. Call it from the window's close handler.
func (e *Events) Close() {
	e.Push(host.Close{})
}

func (e *Events) key(k gpucontext.Key, mods gpucontext.Modifiers, pressed bool) {
	code := keyCode(k)
	if code == host.KeyUnknown {
		return
	}
	e.mu.Lock()
	was := e.down[k]
	e.down[k] = pressed
	e.mu.Unlock()

	e.Push(host.Key{Code: code, Pressed: pressed, WasPressed: was, Alt: mods.HasAlt()})
}

func keyCode(k gpucontext.Key) host.KeyCode {
	switch k {
	case gpucontext.KeyEscape:
		return host.KeyEscape
	case gpucontext.KeyF4:
		return host.KeyF4
	case gpucontext.KeySpace:
		return host.KeySpace
	case gpucontext.KeyUp:
		return host.KeyUp
	case gpucontext.KeyDown:
		return host.KeyDown
	case gpucontext.KeyLeft:
		return host.KeyLeft
	case gpucontext.KeyRight:
		return host.KeyRight
	case gpucontext.KeyW:
		return host.KeyW
	case gpucontext.KeyA:
		return host.KeyA
	case gpucontext.KeyS:
		return host.KeyS
	case gpucontext.KeyD:
		return host.KeyD
	case gpucontext.KeyQ:
		return host.KeyQ
	case gpucontext.KeyE:
		return host.KeyE
	}
	return host.KeyUnknown
}

var _ host.EventSource = (*Events)(nil)
