// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import (
	"image"

	"github.com/gogpu/framehost/pixbuf"
	"golang.org/x/image/draw"
)

// Stretch scales the whole of src onto the rectangle r of dst using
// nearest-neighbour sampling. Each axis is scaled independently.
//
// Nothing is drawn when src is empty or r is empty.
func Stretch(dst draw.Image, r image.Rectangle, src *pixbuf.Buffer) {
	if src == nil || src.Empty() || r.Empty() {
		return
	}

	if rgba, ok := dst.(*image.RGBA); ok && r.Dx() == src.Width() && r.Dy() == src.Height() {
		if sub, ok := rgba.SubImage(r).(*image.RGBA); ok && src.RGBA(sub) {
			return
		}
	}

	draw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
}
