// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package host defines the boundary between the presentation loop and the
// platform that owns the window.
//
// A host does two things for the loop:
//
//   - delivers discrete events (resize, close, key) through a non-blocking
//     EventSource that the loop drains to exhaustion every frame
//   - presents a back buffer onto its surface through a Presenter,
//     stretching the buffer rectangle onto a destination rectangle
//
// # Hosts
//
//   - ImageHost: headless host presenting into an *image.RGBA
//   - terminal.Host (host/terminal): a tcell screen drawn with half blocks
//   - gpuhost.Presenter (integration/gpuhost): a gogpu texture, combined
//     with any EventSource through Compose
//
// # Registry
//
// Hosts register themselves by name and priority, mirroring the way
// rendering backends are selected:
//
//	h, err := host.New(host.Options{Width: 640, Height: 360})
//	// or a specific one:
//	h, err := host.NewByName("image", host.Options{Width: 640, Height: 360})
package host
