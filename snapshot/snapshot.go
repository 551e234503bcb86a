// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package snapshot writes presented frames to image files.
//
// PNG uses the standard library encoder, WebP is written lossless by
// nativewebp and TGA by ftrvxmtrx/tga.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an output image format.
type Format uint8

// Supported formats.
const (
	PNG Format = iota
	WebP
	TGA
)

// ErrUnknownFormat is returned for an unrecognised format or file extension.
var ErrUnknownFormat = errors.New("snapshot: unknown image format")

// ErrNoImage is returned when there is nothing to encode.
var ErrNoImage = errors.New("snapshot: no image")

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case WebP:
		return "webp"
	case TGA:
		return "tga"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return PNG, nil
	case ".webp":
		return WebP, nil
	case ".tga":
		return TGA, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	if img == nil || img.Bounds().Empty() {
		return ErrNoImage
	}
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("snapshot: encode %v: %w", f, err)
	}
	return nil
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
