// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/framehost/pixbuf"
)

// ErrNoSurface is returned by Present when the host has nothing to draw on,
// typically before the first resize or after the host was closed.
var ErrNoSurface = errors.New("host: no surface to present to")

// EventSource delivers host events without blocking.
type EventSource interface {
	// PollEvent returns the next pending event, or false when the queue is
	// empty.
	PollEvent() (Event, bool)
}

// Presenter copies a back buffer onto a visible surface.
type Presenter interface {
	// Present stretches the whole of src onto dst. dst may differ in size
	// from src; no aspect-ratio correction is applied.
	Present(dst image.Rectangle, src *pixbuf.Buffer) error
}

// Host is an event source that can also present frames.
type Host interface {
	EventSource
	Presenter
}

// Compose joins an event source and a presenter into a Host.
func Compose(events EventSource, p Presenter) Host {
	return composed{EventSource: events, Presenter: p}
}

type composed struct {
	EventSource
	Presenter
}

// Queue is a FIFO of events. Push may be called from any goroutine;
// PollEvent is meant for the loop goroutine.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev to the queue.
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events = append(q.events, ev)
	q.mu.Unlock()
}

// PollEvent implements EventSource.
func (q *Queue) PollEvent() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil, false
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return ev, true
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
