// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuhost presents framehost frames in gogpu GPU-accelerated windows.
//
// The data flow is:
//
//	pixbuf.Buffer (CPU) -> staging RGBA -> GPU Texture -> Window
//
// # Architecture
//
// Presenter implements host.Presenter on top of a gpucontext.TextureDrawer:
//
//   - the frame is stretched onto a staging image of the destination size
//   - the texture is created lazily on the first Present
//   - later frames of the same size are uploaded in place
//   - a size change recreates the texture
//
// Events adapts a gpucontext.EventSource into the host event protocol, so
// the pair forms a complete host:
//
//	events := gpuhost.NewEvents(app.EventSource())
//	p, err := gpuhost.New(dc.AsTextureDrawer())
//	h := host.Compose(events, p)
//
// # Thread Safety
//
// Presenter is NOT safe for concurrent use. Events may receive callbacks
// from any goroutine.
//
// # Integration Without Circular Imports
//
// This package depends only on gpucontext interfaces, never on gogpu itself.
package gpuhost
