// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixbuf provides the off-screen back buffer a frame is rendered into.
//
// A Buffer owns one rectangular region of 32-bit pixels. Each pixel is the
// word 0x00RRGGBB stored little-endian, so the bytes in memory read B, G, R
// and an unused padding byte. Rows are tightly packed: the pitch is always
// width*BytesPerPixel.
//
// The memory is reallocated as a whole whenever the buffer is resized. The
// previous region is released first, so a Buffer never holds two regions.
//
// Buffers are NOT safe for concurrent use.
package pixbuf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// BytesPerPixel is the size of one pixel in bytes.
const BytesPerPixel = 4

// Common errors returned by Buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("pixbuf: invalid dimensions")

	// ErrAllocation is returned when the allocator cannot provide the memory.
	ErrAllocation = errors.New("pixbuf: allocation failed")
)

// Buffer is a resizable back buffer.
type Buffer struct {
	memory []byte
	width  int
	height int
	pitch  int
	alloc  Allocator
}

// Option configures a Buffer during creation.
type Option func(*Buffer)

// WithAllocator sets the allocator used for the pixel memory.
func WithAllocator(a Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}

// New creates an empty buffer. Call Resize before rendering into it.
func New(opts ...Option) *Buffer {
	b := &Buffer{alloc: HeapAllocator{}}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Resize releases the current memory and allocates width*height*4 bytes.
//
// The buffer is reallocated even when the dimensions are unchanged. Pixel
// contents after a resize are unspecified. Invalid dimensions leave the
// buffer untouched. If the allocator fails the buffer is left empty and the
// returned error wraps ErrAllocation.
func (b *Buffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	b.Release()

	size := width * height * BytesPerPixel
	if size/BytesPerPixel/height != width {
		return fmt.Errorf("%w: %dx%d overflows", ErrAllocation, width, height)
	}

	mem, err := b.alloc.Alloc(size)
	if err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = fmt.Errorf("%w: %w", ErrAllocation, err)
		}
		return err
	}
	if len(mem) != size {
		b.alloc.Free(mem)
		return fmt.Errorf("%w: allocator returned %d bytes, want %d", ErrAllocation, len(mem), size)
	}

	b.memory = mem
	b.width = width
	b.height = height
	b.pitch = width * BytesPerPixel
	return nil
}

// Release frees the pixel memory and resets the dimensions to zero.
// Release is idempotent.
func (b *Buffer) Release() {
	if b.memory != nil {
		b.alloc.Free(b.memory)
	}
	b.memory = nil
	b.width = 0
	b.height = 0
	b.pitch = 0
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int { return b.height }

// Pitch returns the number of bytes between the starts of consecutive rows.
func (b *Buffer) Pitch() int { return b.pitch }

// Size returns width and height as a convenience.
func (b *Buffer) Size() (width, height int) { return b.width, b.height }

// Len returns the size of the pixel memory in bytes.
func (b *Buffer) Len() int { return len(b.memory) }

// Empty reports whether the buffer currently holds no memory.
func (b *Buffer) Empty() bool { return b.memory == nil }

// Format returns the GPU texture format matching the in-memory byte order.
func (b *Buffer) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Data returns the raw pixel memory. The slice is invalidated by the next
// Resize or Release.
func (b *Buffer) Data() []byte { return b.memory }

// Row returns the bytes of row y, or nil if y is out of range.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.pitch
	return b.memory[start : start+b.pitch]
}

// SetPixel stores the 32-bit pixel value at (x, y).
// Out-of-range coordinates are silently ignored.
func (b *Buffer) SetPixel(x, y int, v uint32) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := y*b.pitch + x*BytesPerPixel
	binary.LittleEndian.PutUint32(b.memory[i:i+BytesPerPixel], v)
}

// Pixel returns the 32-bit pixel value at (x, y), or 0 if out of range.
func (b *Buffer) Pixel(x, y int) uint32 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0
	}
	i := y*b.pitch + x*BytesPerPixel
	return binary.LittleEndian.Uint32(b.memory[i : i+BytesPerPixel])
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements the image.Image interface. The padding byte is ignored and
// every pixel is reported opaque.
func (b *Buffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.RGBA{}
	}
	i := y*b.pitch + x*BytesPerPixel
	return color.RGBA{R: b.memory[i+2], G: b.memory[i+1], B: b.memory[i], A: 0xff}
}

// RGBA converts the buffer into dst, which must have the same size.
// It returns false without writing if the sizes differ.
func (b *Buffer) RGBA(dst *image.RGBA) bool {
	r := dst.Bounds()
	if r.Dx() != b.width || r.Dy() != b.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		src := b.Row(y)
		out := dst.Pix[y*dst.Stride : y*dst.Stride+b.width*4]
		for i := 0; i < len(src); i += BytesPerPixel {
			out[i+0] = src[i+2]
			out[i+1] = src[i+1]
			out[i+2] = src[i+0]
			out[i+3] = 0xff
		}
	}
	return true
}
