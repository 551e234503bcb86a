// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/gogpu/framehost/pixbuf"
)

func mustBuffer(t *testing.T, w, h int) *pixbuf.Buffer {
	t.Helper()
	b := pixbuf.New()
	if err := b.Resize(w, h); err != nil {
		t.Fatalf("Resize(%d, %d) = %v", w, h, err)
	}
	return b
}

func expected(x, y, xOff, yOff int) uint32 {
	return uint32(((y+yOff)%256+256)%256)<<8 | uint32(((x+xOff)%256+256)%256)
}

func TestGradientFormula(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		xOff, yOff int
	}{
		{"origin", 4, 3, 0, 0},
		{"wide wrap", 300, 2, 0, 0},
		{"tall wrap", 2, 300, 0, 0},
		{"positive offsets", 17, 9, 1000, 77},
		{"negative offsets", 9, 17, -5, -300},
		{"large offsets", 5, 5, 1 << 30, -(1 << 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := mustBuffer(t, tt.w, tt.h)
			Gradient(b, tt.xOff, tt.yOff)
			for y := 0; y < tt.h; y++ {
				for x := 0; x < tt.w; x++ {
					if got, want := b.Pixel(x, y), expected(x, y, tt.xOff, tt.yOff); got != want {
						t.Fatalf("pixel(%d, %d) = %#08x, want %#08x", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestGradientWrapExample(t *testing.T) {
	b := mustBuffer(t, 2, 1)
	Gradient(b, 255, 0)
	if got := b.Pixel(0, 0); got != 0x000000FF {
		t.Errorf("pixel(0, 0) = %#08x, want 0x000000ff", got)
	}
	if got := b.Pixel(1, 0); got != 0x00000000 {
		t.Errorf("pixel(1, 0) = %#08x, want 0x00000000", got)
	}
}

func TestGradientOverwritesEverything(t *testing.T) {
	b := mustBuffer(t, 8, 8)
	for i := range b.Data() {
		b.Data()[i] = 0xEE
	}
	Gradient(b, 3, 4)
	row := b.Row(5)
	// Top byte of every pixel must be cleared.
	for x := 0; x < 8; x++ {
		if row[x*4+3] != 0 || row[x*4+2] != 0 {
			t.Fatalf("pixel %d kept stale red/top bytes: % x", x, row[x*4:x*4+4])
		}
	}
}

func TestGradientEmptyBuffer(t *testing.T) {
	b := pixbuf.New()
	Gradient(b, 10, 10)
	if !b.Empty() {
		t.Error("rendering into an empty buffer must not allocate")
	}
}

func BenchmarkGradient720p(b *testing.B) {
	buf := pixbuf.New()
	if err := buf.Resize(1280, 720); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Gradient(buf, i, i)
	}
}
