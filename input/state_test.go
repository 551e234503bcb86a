// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import (
	"math"
	"testing"
	"unsafe"
)

func TestDecodeEachButton(t *testing.T) {
	tests := []struct {
		mask uint16
		get  func(Buttons) bool
		name string
	}{
		{maskDPadUp, func(b Buttons) bool { return b.Up }, "up"},
		{maskDPadDown, func(b Buttons) bool { return b.Down }, "down"},
		{maskDPadLeft, func(b Buttons) bool { return b.Left }, "left"},
		{maskDPadRight, func(b Buttons) bool { return b.Right }, "right"},
		{maskStart, func(b Buttons) bool { return b.Start }, "start"},
		{maskBack, func(b Buttons) bool { return b.Back }, "back"},
		{maskLeftThumb, func(b Buttons) bool { return b.LeftThumb }, "left thumb"},
		{maskRightThumb, func(b Buttons) bool { return b.RightThumb }, "right thumb"},
		{maskLeftShoulder, func(b Buttons) bool { return b.LeftShoulder }, "left shoulder"},
		{maskRightShoulder, func(b Buttons) bool { return b.RightShoulder }, "right shoulder"},
		{maskA, func(b Buttons) bool { return b.A }, "a"},
		{maskB, func(b Buttons) bool { return b.B }, "b"},
		{maskX, func(b Buttons) bool { return b.X }, "x"},
		{maskY, func(b Buttons) bool { return b.Y }, "y"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Decode(RawState{Buttons: tt.mask})
			if !tt.get(s.Buttons) {
				t.Errorf("mask %#04x did not set %s", tt.mask, tt.name)
			}
			set := 0
			for _, other := range tests {
				if other.get(s.Buttons) {
					set++
				}
			}
			if set != 1 {
				t.Errorf("mask %#04x set %d buttons, want 1", tt.mask, set)
			}
		})
	}
}

func TestEncodeDecode(t *testing.T) {
	in := ControlState{
		Connected:    true,
		Packet:       42,
		Buttons:      Buttons{Left: true, Start: true, Back: true, Y: true},
		LeftStick:    Stick{X: 100, Y: -100},
		RightStick:   Stick{X: math.MinInt16, Y: math.MaxInt16},
		LeftTrigger:  10,
		RightTrigger: 255,
	}
	if got := Decode(Encode(in)); got != in {
		t.Errorf("Decode(Encode(s)) = %+v, want %+v", got, in)
	}
}

func TestRawStateLayout(t *testing.T) {
	// XINPUT_STATE is 16 bytes; XINPUT_VIBRATION is 4.
	if got := unsafe.Sizeof(RawState{}); got != 16 {
		t.Errorf("sizeof(RawState) = %d, want 16", got)
	}
	if got := unsafe.Sizeof(Vibration{}); got != 4 {
		t.Errorf("sizeof(Vibration) = %d, want 4", got)
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{-1, 0},
		{0, 0},
		{math.NaN(), 0},
		{0.5, 32768},
		{1, 65535},
		{3, 65535},
	}
	for _, tt := range tests {
		if got := Intensity(tt.in); got != tt.want {
			t.Errorf("Intensity(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
