// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package host

import "fmt"

// Event is a discrete message from the host. The concrete types are
// Resize, Close and Key.
type Event interface {
	isEvent()
}

// Resize reports the new size of the client area in pixels.
type Resize struct {
	Width, Height int
}

// Close reports that the window was closed or destroyed.
type Close struct{}

// Key reports a keyboard transition.
//
// Pressed is the state after the transition and WasPressed the state before
// it; a repeat while held has both set. Alt reports whether the Alt modifier
// was down.
type Key struct {
	Code       KeyCode
	Pressed    bool
	WasPressed bool
	Alt        bool
}

func (Resize) isEvent() {}
func (Close) isEvent()  {}
func (Key) isEvent()    {}

// Down reports a fresh press: the key went from up to down.
func (k Key) Down() bool { return k.Pressed && !k.WasPressed }

func (k Key) String() string {
	state := "up"
	if k.Pressed {
		state = "down"
	}
	if k.Alt {
		return fmt.Sprintf("alt+%s %s", k.Code, state)
	}
	return fmt.Sprintf("%s %s", k.Code, state)
}

// KeyCode identifies the keys the loop reacts to.
type KeyCode uint8

// Key codes.
const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyF4
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyEscape:  "escape",
	KeyF4:      "f4",
	KeySpace:   "space",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
	KeyQ:       "q",
	KeyE:       "e",
}

// String returns the lower-case key name.
func (k KeyCode) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("KeyCode(%d)", uint8(k))
}
