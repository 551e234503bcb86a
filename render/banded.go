// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/gogpu/framehost/internal/parallel"
	"github.com/gogpu/framehost/pixbuf"
)

// minBandRows keeps bands large enough to amortise scheduling.
const minBandRows = 16

// Banded splits each frame into horizontal bands rendered on a worker pool.
//
// Use its Render method as a Func:
//
//	b := render.NewBanded(0, render.GradientRows)
//	defer b.Close()
//	s := framehost.NewSession(h, framehost.WithRenderer(b.Render))
type Banded struct {
	pool *parallel.Pool
	rows RowsFunc
}

// NewBanded creates a banded renderer with the given number of workers.
// Non-positive workers means GOMAXPROCS.
func NewBanded(workers int, rows RowsFunc) *Banded {
	return &Banded{pool: parallel.NewPool(workers), rows: rows}
}

// Render renders buf band by band and returns when every band is done.
// Small buffers are rendered on the calling goroutine.
func (b *Banded) Render(buf *pixbuf.Buffer, xOffset, yOffset int) {
	h := buf.Height()
	bands := min(b.pool.Workers(), h/minBandRows)
	if bands <= 1 {
		b.rows(buf, 0, h, xOffset, yOffset)
		return
	}

	step := (h + bands - 1) / bands
	work := make([]func(), 0, bands)
	for y0 := 0; y0 < h; y0 += step {
		y1 := min(y0+step, h)
		work = append(work, func() { b.rows(buf, y0, y1, xOffset, yOffset) })
	}
	b.pool.Run(work)
}

// Workers returns the number of worker goroutines.
func (b *Banded) Workers() int { return b.pool.Workers() }

// Close stops the workers. Render keeps working afterwards on the calling
// goroutine.
func (b *Banded) Close() { b.pool.Close() }
