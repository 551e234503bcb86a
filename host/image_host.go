// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"

	"github.com/gogpu/framehost/pixbuf"
)

// ImageHost is a headless host that presents into an in-memory image.
//
// The surface always matches the simulated client area, so the loop sees the
// same resize protocol a window would give it. ImageHost is used by tests and
// by the CLI when no terminal is attached.
//
// ImageHost is NOT safe for concurrent use, except for Push.
type ImageHost struct {
	*Queue

	surface    *image.RGBA
	presented  int
	closeAfter int
	lastDst    image.Rectangle
}

// NewImageHost creates a host with a width×height client area and queues the
// initial Resize event. Non-positive dimensions create a host without a
// surface; call Resize later.
func NewImageHost(width, height int) *ImageHost {
	h := &ImageHost{Queue: NewQueue()}
	if width > 0 && height > 0 {
		h.Resize(width, height)
	}
	return h
}

// Resize simulates the client area changing size. The surface is replaced
// and a Resize event is queued.
func (h *ImageHost) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		h.surface = nil
	} else {
		h.surface = image.NewRGBA(image.Rect(0, 0, width, height))
	}
	h.Push(Resize{Width: width, Height: height})
}

// CloseAfter queues a Close event once n frames have been presented.
// Zero disables the limit.
func (h *ImageHost) CloseAfter(n int) {
	h.closeAfter = n
}

// ClientSize returns the current surface size.
func (h *ImageHost) ClientSize() (width, height int) {
	if h.surface == nil {
		return 0, 0
	}
	b := h.surface.Bounds()
	return b.Dx(), b.Dy()
}

// Present implements Presenter.
func (h *ImageHost) Present(dst image.Rectangle, src *pixbuf.Buffer) error {
	if h.surface == nil {
		return ErrNoSurface
	}
	Stretch(h.surface, dst, src)
	h.lastDst = dst
	h.presented++
	if h.closeAfter > 0 && h.presented == h.closeAfter {
		h.Push(Close{})
	}
	return nil
}

// Presented returns the number of successful Present calls.
func (h *ImageHost) Presented() int { return h.presented }

// LastDest returns the destination rectangle of the last Present.
func (h *ImageHost) LastDest() image.Rectangle { return h.lastDst }

// Snapshot returns a copy of the surface, or nil if there is none.
func (h *ImageHost) Snapshot() *image.RGBA {
	if h.surface == nil {
		return nil
	}
	out := image.NewRGBA(h.surface.Bounds())
	copy(out.Pix, h.surface.Pix)
	return out
}

var _ Host = (*ImageHost)(nil)
