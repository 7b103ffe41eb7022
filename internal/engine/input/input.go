// Package input polls SDL2 events into a per-frame snapshot.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Movement keys by scancode, so the layout does not matter.
var movementKeys = []struct {
	code sdl.Scancode
	key  Key
}{
	{sdl.SCANCODE_W, KeyForward},
	{sdl.SCANCODE_S, KeyBack},
	{sdl.SCANCODE_A, KeyLeft},
	{sdl.SCANCODE_D, KeyRight},
	{sdl.SCANCODE_Z, KeyUp},
	{sdl.SCANCODE_X, KeyDown},
}

// Input turns SDL events and keyboard state into Frames.
type Input struct {
	last  uint64
	freq  float64
	frame Frame
}

// New creates an input poller. The first Poll reports zero elapsed time.
func New() *Input {
	return &Input{
		last: sdl.GetPerformanceCounter(),
		freq: float64(sdl.GetPerformanceFrequency()),
	}
}

// Poll drains pending events and returns this frame's snapshot.
func (i *Input) Poll() Frame {
	now := sdl.GetPerformanceCounter()
	i.frame = Frame{Elapsed: float32(float64(now-i.last) / i.freq)}
	i.last = now

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}
	i.frame.Keys = heldKeys(sdl.GetKeyboardState())
	return i.frame
}

func (i *Input) handle(event sdl.Event) {
	f := &i.frame
	switch e := event.(type) {
	case *sdl.QuitEvent:
		f.Actions |= ActionQuit

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			f.Actions |= ActionResize
			f.Width, f.Height = int(e.Data1), int(e.Data2)
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			f.Actions |= keyAction(e.Keysym.Scancode)
		}

	case *sdl.MouseMotionEvent:
		f.CursorDX += float32(e.XRel)
		f.CursorDY += float32(e.YRel)

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		f.Scroll += y
	}
}

// keyAction maps a key press to its one-shot action.
func keyAction(code sdl.Scancode) Action {
	switch code {
	case sdl.SCANCODE_ESCAPE:
		return ActionQuit
	case sdl.SCANCODE_F1:
		return ActionWireframe
	case sdl.SCANCODE_TAB:
		return ActionToggleCamera
	case sdl.SCANCODE_F12:
		return ActionScreenshot
	}
	return 0
}

// heldKeys reads movement keys from an SDL keyboard state array.
func heldKeys(state []uint8) Key {
	var k Key
	for _, m := range movementKeys {
		if int(m.code) < len(state) && state[m.code] != 0 {
			k |= m.key
		}
	}
	return k
}
