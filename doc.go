// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package framehost runs a minimal interactive rendering loop: it owns an
// off-screen back buffer, renders a scrolling gradient into it every frame,
// and presents it onto a host surface whose size may differ from the
// buffer's.
//
// # Frame Sequence
//
// Each call to Session.Frame performs, in order:
//
//  1. drain every pending host event (resize, close, key)
//  2. poll every controller slot and apply digital pad input to the offset
//  3. render into the back buffer
//  4. present the buffer onto the host's client rectangle
//
// A close event, Escape, Alt+F4 or the Start+Back chord stops the session
// before the render step of the current frame.
//
// # Usage
//
//	h := host.NewImageHost(640, 360)
//	s := framehost.NewSession(h,
//	    framehost.WithInput(input.Resolve(input.DefaultLoader(), input.DefaultCandidates)),
//	    framehost.WithAutoScroll(1, 1),
//	)
//	if err := s.Run(ctx); err != nil {
//	    // back buffer allocation failed
//	}
//
// # Thread Safety
//
// A Session is NOT safe for concurrent use. One goroutine owns the whole
// loop; no step blocks except where the host chooses to pace presentation.
//
// # Logging
//
// framehost is silent by default. See SetLogger.
package framehost
