// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package snapshot

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{G: uint8(y), B: uint8(x), A: 0xff})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"frame.png", PNG, false},
		{"out/Frame.PNG", PNG, false},
		{"frame.webp", WebP, false},
		{"frame.tga", TGA, false},
		{"frame.jpg", 0, true},
		{"frame", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("error = %v, want ErrUnknownFormat", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatFromPath() = %v, %v; want %v", got, err, tt.want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if PNG.String() != "png" || WebP.String() != "webp" || TGA.String() != "tga" {
		t.Error("unexpected format names")
	}
	if got := Format(7).String(); got != "Format(7)" {
		t.Errorf("Format(7).String() = %q", got)
	}
}

func assertSamePixels(t *testing.T, got image.Image, want *image.RGBA) {
	t.Helper()
	if got.Bounds().Size() != want.Bounds().Size() {
		t.Fatalf("size = %v, want %v", got.Bounds().Size(), want.Bounds().Size())
	}
	off := got.Bounds().Min
	for y := 0; y < want.Rect.Dy(); y++ {
		for x := 0; x < want.Rect.Dx(); x++ {
			g := color.RGBAModel.Convert(got.At(off.X+x, off.Y+y)).(color.RGBA)
			if w := want.RGBAAt(x, y); g != w {
				t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	img := testImage()
	if err := Encode(&buf, img, PNG); err != nil {
		t.Fatal(err)
	}
	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertSamePixels(t, got, img)
}

func TestEncodeWebP(t *testing.T) {
	var buf bytes.Buffer
	img := testImage()
	if err := Encode(&buf, img, WebP); err != nil {
		t.Fatal(err)
	}
	got, err := nativewebp.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	assertSamePixels(t, got, img)
}

func TestEncodeTGA(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testImage(), TGA); err != nil {
		t.Fatal(err)
	}
	// The TGA header stores width and height little-endian at offsets 12 and 14.
	b := buf.Bytes()
	if len(b) < 18 {
		t.Fatalf("TGA output is %d bytes, shorter than its header", len(b))
	}
	if w, h := int(b[12])|int(b[13])<<8, int(b[14])|int(b[15])<<8; w != 4 || h != 3 {
		t.Errorf("header size = %dx%d, want 4x3", w, h)
	}
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, PNG); !errors.Is(err, ErrNoImage) {
		t.Errorf("Encode(nil) error = %v", err)
	}
	if err := Encode(&buf, image.NewRGBA(image.Rectangle{}), PNG); !errors.Is(err, ErrNoImage) {
		t.Errorf("Encode(empty) error = %v", err)
	}
	if err := Encode(&buf, testImage(), Format(9)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(Format(9)) error = %v", err)
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	img := testImage()
	if err := Save(path, img); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	assertSamePixels(t, got, img)

	if err := Save(filepath.Join(dir, "frame.bmp"), img); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Save(.bmp) error = %v", err)
	}
}
