// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package framehost

import "github.com/gogpu/framehost/host"

// direction is the set of directions active in one frame.
type direction struct {
	up, down, left, right bool
}

// delta returns one unit per active direction. Opposing directions on the
// same axis cancel, so that axis does not move.
func (d direction) delta() (dx, dy int) {
	if d.left != d.right {
		if d.left {
			dx = -1
		} else {
			dx = 1
		}
	}
	if d.up != d.down {
		if d.up {
			dy = -1
		} else {
			dy = 1
		}
	}
	return dx, dy
}

// keyboard tracks direction keys across frames. A key is active while it is
// held, and also for the frame in which it was pressed, so hosts that report
// press and release together (terminals) still move the offset.
type keyboard struct {
	held   map[host.KeyCode]bool
	tapped map[host.KeyCode]bool
}

func newKeyboard() keyboard {
	return keyboard{
		held:   make(map[host.KeyCode]bool),
		tapped: make(map[host.KeyCode]bool),
	}
}

func (k keyboard) update(ev host.Key) {
	if ev.Pressed && !ev.WasPressed {
		k.tapped[ev.Code] = true
	}
	k.held[ev.Code] = ev.Pressed
}

func (k keyboard) active(codes ...host.KeyCode) bool {
	for _, c := range codes {
		if k.held[c] || k.tapped[c] {
			return true
		}
	}
	return false
}

func (k keyboard) direction() direction {
	return direction{
		up:    k.active(host.KeyUp, host.KeyW),
		down:  k.active(host.KeyDown, host.KeyS),
		left:  k.active(host.KeyLeft, host.KeyA),
		right: k.active(host.KeyRight, host.KeyD),
	}
}

// endFrame forgets presses already applied.
func (k keyboard) endFrame() {
	clear(k.tapped)
}
