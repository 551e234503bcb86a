// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build windows

package input

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// errDeviceNotConnected is ERROR_DEVICE_NOT_CONNECTED.
const errDeviceNotConnected = 1167

// DefaultLoader returns a loader that opens XInput system libraries.
func DefaultLoader() Loader {
	return LoaderFunc(openXInput)
}

func openXInput(name string) (Driver, error) {
	dll := windows.NewLazySystemDLL(name)
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("input: load %s: %w", name, err)
	}

	get := dll.NewProc("XInputGetState")
	if err := get.Find(); err != nil {
		return nil, fmt.Errorf("%w: %s!XInputGetState: %w", ErrMissingEntryPoint, name, err)
	}
	set := dll.NewProc("XInputSetState")
	if err := set.Find(); err != nil {
		return nil, fmt.Errorf("%w: %s!XInputSetState: %w", ErrMissingEntryPoint, name, err)
	}
	return &xinput{get: get, set: set}, nil
}

type xinput struct {
	get *windows.LazyProc
	set *windows.LazyProc
}

func (x *xinput) GetState(index int) (RawState, error) {
	var s RawState
	r, _, _ := x.get.Call(uintptr(index), uintptr(unsafe.Pointer(&s)))
	if err := xinputResult(r); err != nil {
		return RawState{}, err
	}
	return s, nil
}

func (x *xinput) SetState(index int, v Vibration) error {
	r, _, _ := x.set.Call(uintptr(index), uintptr(unsafe.Pointer(&v)))
	return xinputResult(r)
}

func xinputResult(r uintptr) error {
	switch r {
	case 0:
		return nil
	case errDeviceNotConnected:
		return ErrNotConnected
	}
	return windows.Errno(r)
}
