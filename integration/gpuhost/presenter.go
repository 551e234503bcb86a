// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/framehost/host"
	"github.com/gogpu/framehost/internal/logging"
	"github.com/gogpu/framehost/pixbuf"
	"github.com/gogpu/gpucontext"
)

// Common errors returned by Presenter operations.
var (
	// ErrPresenterClosed is returned when Present is called after Close.
	ErrPresenterClosed = errors.New("gpuhost: presenter is closed")

	// ErrNilDrawer is returned when a nil TextureDrawer is passed.
	ErrNilDrawer = errors.New("gpuhost: nil TextureDrawer")

	// ErrNoTextureCreator is returned when the drawer has no texture creator.
	ErrNoTextureCreator = errors.New("gpuhost: drawer must provide a gpucontext.TextureCreator")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Presenter uploads presented frames to a GPU texture and draws it.
//
// Presenter is NOT safe for concurrent use.
type Presenter struct {
	dc      gpucontext.TextureDrawer
	staging *image.RGBA
	texture gpucontext.Texture
	uploads int
	closed  bool
}

// New creates a Presenter drawing through dc.
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
func New(dc gpucontext.TextureDrawer) (*Presenter, error) {
	if dc == nil {
		return nil, ErrNilDrawer
	}
	return &Presenter{dc: dc}, nil
}

// Present implements host.Presenter. The frame is stretched to dst and the
// texture is drawn at dst.Min.
func (p *Presenter) Present(dst image.Rectangle, src *pixbuf.Buffer) error {
	if p.closed {
		return ErrPresenterClosed
	}
	if src == nil || src.Empty() || dst.Empty() {
		return nil
	}

	w, h := dst.Dx(), dst.Dy()
	if p.staging == nil || p.staging.Rect.Dx() != w || p.staging.Rect.Dy() != h {
		p.staging = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	host.Stretch(p.staging, p.staging.Rect, src)

	if err := p.upload(w, h); err != nil {
		return err
	}
	return p.dc.DrawTexture(p.texture, float32(dst.Min.X), float32(dst.Min.Y))
}

// upload writes the staging image into the texture, creating or replacing
// the texture when it is missing or has the wrong size.
func (p *Presenter) upload(w, h int) error {
	if p.texture != nil && p.texture.Width() == w && p.texture.Height() == h {
		if updater, ok := p.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(p.staging.Pix); err != nil {
				return fmt.Errorf("gpuhost: texture update failed: %w", err)
			}
			p.uploads++
			return nil
		}
	}

	creator := p.dc.TextureCreator()
	if creator == nil {
		return ErrNoTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(w, h, p.staging.Pix)
	if err != nil {
		return fmt.Errorf("gpuhost: NewTextureFromRGBA failed: %w", err)
	}
	logging.Get().Debug("gpuhost: texture created", "width", w, "height", h)

	// The creation upload waits for the GPU, so the old texture is idle now.
	destroy(p.texture)
	p.texture = tex
	p.uploads++
	return nil
}

// Texture returns the current texture, or nil before the first Present.
func (p *Presenter) Texture() gpucontext.Texture {
	return p.texture
}

// Uploads returns the number of frames uploaded to the GPU.
func (p *Presenter) Uploads() int {
	return p.uploads
}

// Close destroys the texture. Close is idempotent.
func (p *Presenter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	destroy(p.texture)
	p.texture = nil
	p.staging = nil
	return nil
}

func destroy(tex gpucontext.Texture) {
	if tex == nil {
		return
	}
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}

var _ host.Presenter = (*Presenter)(nil)
