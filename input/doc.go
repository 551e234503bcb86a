// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package input polls game controllers through an optional native driver.
//
// The driver is located once at startup by probing an ordered list of
// library names, newest ABI first. When none of them can be loaded the
// Binding stays unbound for the lifetime of the process: every poll reports
// the slot as disconnected and feedback commands are dropped. Callers never
// branch on whether a driver is installed; they only check the presence flag
// returned by Poll.
//
// # Usage
//
//	pads := input.Resolve(input.DefaultLoader(), input.DefaultCandidates)
//	for i := 0; i < pads.Slots(); i++ {
//	    state, ok := pads.Poll(i)
//	    if !ok {
//	        continue
//	    }
//	    if state.Buttons.A {
//	        pads.SetFeedback(i, input.Vibration{Left: input.Intensity(0.5)})
//	    }
//	}
//
// # Thread Safety
//
// A Binding is immutable after Resolve returns and may be read from any
// goroutine. Whether the underlying driver tolerates concurrent calls is up
// to the driver.
package input
