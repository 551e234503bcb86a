// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"errors"

	"github.com/gogpu/framehost/internal/logging"
)

// Source is the polling surface consumed by the presentation loop.
type Source interface {
	// Poll returns the state of slot index and whether a device is present.
	Poll(index int) (ControlState, bool)

	// SetFeedback sends a best-effort vibration command to slot index.
	SetFeedback(index int, v Vibration)

	// Slots returns the number of pollable slots.
	Slots() int
}

// Binding is the result of driver resolution: either bound to a native
// driver or unbound. Both states satisfy Source.
type Binding struct {
	name   string
	driver Driver
}

// Unbound returns a Binding with no driver. Every slot reads as disconnected.
func Unbound() *Binding {
	return &Binding{driver: unbound{}}
}

// Bind returns a Binding backed by d. A nil driver yields an unbound Binding.
func Bind(name string, d Driver) *Binding {
	if d == nil {
		return Unbound()
	}
	return &Binding{name: name, driver: d}
}

// Resolve probes candidates in order and binds the first one loader opens.
//
// Failure to resolve any candidate is not an error: the returned Binding is
// unbound and stays that way.
func Resolve(loader Loader, candidates []string) *Binding {
	log := logging.Get()
	if loader == nil {
		return Unbound()
	}
	for _, name := range candidates {
		d, err := loader.Open(name)
		if err != nil {
			log.Debug("input: driver candidate unavailable", "name", name, "err", err)
			continue
		}
		if d == nil {
			continue
		}
		log.Info("input: driver bound", "name", name)
		return Bind(name, d)
	}
	log.Info("input: no controller driver, running without controllers")
	return Unbound()
}

// Bound reports whether a native driver was resolved.
func (b *Binding) Bound() bool {
	_, isUnbound := b.driver.(unbound)
	return !isUnbound
}

// Name returns the library name that was bound, or "" when unbound.
func (b *Binding) Name() string { return b.name }

// Slots returns MaxDevices.
func (b *Binding) Slots() int { return MaxDevices }

// Poll reads slot index. Unbound bindings, out-of-range slots and driver
// errors all report (ControlState{}, false).
func (b *Binding) Poll(index int) (ControlState, bool) {
	if index < 0 || index >= MaxDevices {
		return ControlState{}, false
	}
	raw, err := b.driver.GetState(index)
	if err != nil {
		if !errors.Is(err, ErrNotConnected) {
			logging.Get().Debug("input: poll failed", "slot", index, "err", err)
		}
		return ControlState{}, false
	}
	return Decode(raw), true
}

// SetFeedback sends v to slot index. Errors are dropped.
func (b *Binding) SetFeedback(index int, v Vibration) {
	if index < 0 || index >= MaxDevices {
		return
	}
	_ = b.driver.SetState(index, v)
}

var _ Source = (*Binding)(nil)
