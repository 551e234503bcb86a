// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render fills back buffers with procedural content.
package render

import (
	"encoding/binary"

	"github.com/gogpu/framehost/pixbuf"
)

// Func renders into buf using the current scroll offset.
type Func func(buf *pixbuf.Buffer, xOffset, yOffset int)

// RowsFunc renders rows [y0, y1) of buf. Calls on disjoint row ranges may
// run concurrently.
type RowsFunc func(buf *pixbuf.Buffer, y0, y1, xOffset, yOffset int)

// Gradient overwrites every pixel of buf with a blue/green gradient.
//
// The pixel at (x, y) becomes (g << 8) | b where b is the low byte of
// x+xOffset and g the low byte of y+yOffset. Red and the top byte stay zero.
// The truncation wraps, so the pattern repeats every 256 pixels and scrolls
// smoothly for any offset. An empty buffer is left alone.
func Gradient(buf *pixbuf.Buffer, xOffset, yOffset int) {
	GradientRows(buf, 0, buf.Height(), xOffset, yOffset)
}

// GradientRows is Gradient restricted to rows [y0, y1).
func GradientRows(buf *pixbuf.Buffer, y0, y1, xOffset, yOffset int) {
	w := buf.Width()
	y0, y1 = max(y0, 0), min(y1, buf.Height())
	for y := y0; y < y1; y++ {
		g := uint32(uint8(y + yOffset))
		row := buf.Row(y)
		for x := 0; x < w; x++ {
			b := uint32(uint8(x + xOffset))
			binary.LittleEndian.PutUint32(row[x*pixbuf.BytesPerPixel:], g<<8|b)
		}
	}
}

var (
	_ Func     = Gradient
	_ RowsFunc = GradientRows
)
