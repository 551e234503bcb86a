// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package input

import "math"

// Button masks of the packed button word reported by the driver.
const (
	maskDPadUp        uint16 = 0x0001
	maskDPadDown      uint16 = 0x0002
	maskDPadLeft      uint16 = 0x0004
	maskDPadRight     uint16 = 0x0008
	maskStart         uint16 = 0x0010
	maskBack          uint16 = 0x0020
	maskLeftThumb     uint16 = 0x0040
	maskRightThumb    uint16 = 0x0080
	maskLeftShoulder  uint16 = 0x0100
	maskRightShoulder uint16 = 0x0200
	maskA             uint16 = 0x1000
	maskB             uint16 = 0x2000
	maskX             uint16 = 0x4000
	maskY             uint16 = 0x8000
)

// RawState is the device state exactly as the native driver reports it.
// The field layout matches XINPUT_STATE so drivers can fill it in place.
type RawState struct {
	Packet       uint32
	Buttons      uint16
	LeftTrigger  uint8
	RightTrigger uint8
	ThumbLX      int16
	ThumbLY      int16
	ThumbRX      int16
	ThumbRY      int16
}

// Buttons holds the digital buttons of a controller.
type Buttons struct {
	Up, Down, Left, Right bool

	Start, Back bool

	LeftThumb, RightThumb       bool
	LeftShoulder, RightShoulder bool

	A, B, X, Y bool
}

// Stick is the position of an analog stick. Each axis spans the full
// signed 16-bit range.
type Stick struct {
	X, Y int16
}

// ControlState is a decoded snapshot of one controller.
type ControlState struct {
	Connected bool
	Packet    uint32

	Buttons Buttons

	LeftStick, RightStick     Stick
	LeftTrigger, RightTrigger uint8
}

// Decode converts a raw driver state into a ControlState.
// The button word is unpacked once here so call sites use named fields.
func Decode(raw RawState) ControlState {
	w := raw.Buttons
	return ControlState{
		Connected: true,
		Packet:    raw.Packet,
		Buttons: Buttons{
			Up:            w&maskDPadUp != 0,
			Down:          w&maskDPadDown != 0,
			Left:          w&maskDPadLeft != 0,
			Right:         w&maskDPadRight != 0,
			Start:         w&maskStart != 0,
			Back:          w&maskBack != 0,
			LeftThumb:     w&maskLeftThumb != 0,
			RightThumb:    w&maskRightThumb != 0,
			LeftShoulder:  w&maskLeftShoulder != 0,
			RightShoulder: w&maskRightShoulder != 0,
			A:             w&maskA != 0,
			B:             w&maskB != 0,
			X:             w&maskX != 0,
			Y:             w&maskY != 0,
		},
		LeftStick:    Stick{X: raw.ThumbLX, Y: raw.ThumbLY},
		RightStick:   Stick{X: raw.ThumbRX, Y: raw.ThumbRY},
		LeftTrigger:  raw.LeftTrigger,
		RightTrigger: raw.RightTrigger,
	}
}

// Encode packs a ControlState back into the driver representation.
// Test drivers use it to script device input.
func Encode(s ControlState) RawState {
	var w uint16
	set := func(on bool, mask uint16) {
		if on {
			w |= mask
		}
	}
	b := s.Buttons
	set(b.Up, maskDPadUp)
	set(b.Down, maskDPadDown)
	set(b.Left, maskDPadLeft)
	set(b.Right, maskDPadRight)
	set(b.Start, maskStart)
	set(b.Back, maskBack)
	set(b.LeftThumb, maskLeftThumb)
	set(b.RightThumb, maskRightThumb)
	set(b.LeftShoulder, maskLeftShoulder)
	set(b.RightShoulder, maskRightShoulder)
	set(b.A, maskA)
	set(b.B, maskB)
	set(b.X, maskX)
	set(b.Y, maskY)

	return RawState{
		Packet:       s.Packet,
		Buttons:      w,
		LeftTrigger:  s.LeftTrigger,
		RightTrigger: s.RightTrigger,
		ThumbLX:      s.LeftStick.X,
		ThumbLY:      s.LeftStick.Y,
		ThumbRX:      s.RightStick.X,
		ThumbRY:      s.RightStick.Y,
	}
}

// Vibration is a motor speed pair in the device's native range.
// The layout matches XINPUT_VIBRATION.
type Vibration struct {
	Left  uint16
	Right uint16
}

// Intensity maps f in [0, 1] onto the native motor range.
// Values outside the range are clamped.
func Intensity(f float64) uint16 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 1:
		return math.MaxUint16
	}
	return uint16(math.Round(f * math.MaxUint16))
}
