// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import "errors"

// MaxDevices is the number of controller slots polled every frame.
const MaxDevices = 4

// DefaultCandidates lists the XInput libraries probed by Resolve,
// newest ABI first.
var DefaultCandidates = []string{
	"xinput1_4.dll",
	"xinput1_3.dll",
	"xinput9_1_0.dll",
}

// Errors reported by drivers and loaders. None of them reach Binding callers.
var (
	// ErrNotConnected is returned by a driver when the slot has no device.
	ErrNotConnected = errors.New("input: device not connected")

	// ErrUnsupported is returned by loaders on platforms without a native
	// controller driver.
	ErrUnsupported = errors.New("input: native driver not supported on this platform")

	// ErrMissingEntryPoint is returned when a library loads but does not
	// export the functions a driver needs.
	ErrMissingEntryPoint = errors.New("input: missing driver entry point")
)

// Driver is a resolved native controller driver.
type Driver interface {
	// GetState reads slot index. A disconnected slot returns ErrNotConnected.
	GetState(index int) (RawState, error)

	// SetState sends a vibration command to slot index.
	SetState(index int, v Vibration) error
}

// Loader opens a driver by library name.
type Loader interface {
	Open(name string) (Driver, error)
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(name string) (Driver, error)

// Open implements Loader.
func (f LoaderFunc) Open(name string) (Driver, error) { return f(name) }

// unbound is the driver used when no library could be resolved.
type unbound struct{}

func (unbound) GetState(int) (RawState, error) { return RawState{}, ErrNotConnected }
func (unbound) SetState(int, Vibration) error  { return ErrNotConnected }
