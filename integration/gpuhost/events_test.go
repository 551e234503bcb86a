// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"testing"

	"github.com/gogpu/framehost/host"
	"github.com/gogpu/gpucontext"
)

// mockSource records the callbacks registered by NewEvents.
type mockSource struct {
	gpucontext.NullEventSource

	press   func(gpucontext.Key, gpucontext.Modifiers)
	release func(gpucontext.Key, gpucontext.Modifiers)
	resize  func(int, int)
}

func (m *mockSource) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers))   { m.press = fn }
func (m *mockSource) OnKeyRelease(fn func(gpucontext.Key, gpucontext.Modifiers)) { m.release = fn }
func (m *mockSource) OnResize(fn func(int, int))                                 { m.resize = fn }

func drain(e *Events) []host.Event {
	var out []host.Event
	for {
		ev, ok := e.PollEvent()
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

func TestEventsTranslate(t *testing.T) {
	src := &mockSource{}
	e := NewEvents(src)
	if src.press == nil || src.release == nil || src.resize == nil {
		t.Fatal("NewEvents did not register all callbacks")
	}

	src.resize(640, 480)
	src.press(gpucontext.KeyRight, 0)
	src.press(gpucontext.KeyRight, 0)
	src.release(gpucontext.KeyRight, 0)
	src.press(gpucontext.KeyF4, gpucontext.ModAlt)
	src.press(gpucontext.KeyZ, 0)
	e.Close()

	want := []host.Event{
		host.Resize{Width: 640, Height: 480},
		host.Key{Code: host.KeyRight, Pressed: true},
		host.Key{Code: host.KeyRight, Pressed: true, WasPressed: true},
		host.Key{Code: host.KeyRight, WasPressed: true},
		host.Key{Code: host.KeyF4, Pressed: true, Alt: true},
		host.Close{},
	}
	got := drain(e)
	if len(got) != len(want) {
		t.Fatalf("got %d events %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		in   gpucontext.Key
		want host.KeyCode
	}{
		{gpucontext.KeyEscape, host.KeyEscape},
		{gpucontext.KeyUp, host.KeyUp},
		{gpucontext.KeyDown, host.KeyDown},
		{gpucontext.KeyLeft, host.KeyLeft},
		{gpucontext.KeyW, host.KeyW},
		{gpucontext.KeyA, host.KeyA},
		{gpucontext.KeyS, host.KeyS},
		{gpucontext.KeyD, host.KeyD},
		{gpucontext.KeyEnter, host.KeyUnknown},
	}
	for _, tt := range tests {
		if got := keyCode(tt.in); got != tt.want {
			t.Errorf("keyCode(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
