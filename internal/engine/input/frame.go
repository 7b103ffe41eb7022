package input

// Key is a bit set of movement keys held down.
type Key uint8

// Movement keys.
const (
	KeyForward Key = 1 << iota // W
	KeyBack                    // S
	KeyLeft                    // A
	KeyRight                   // D
	KeyUp                      // Z
	KeyDown                    // X
)

// Action is a bit set of one-shot commands triggered this frame.
type Action uint8

// One-shot actions.
const (
	ActionQuit           Action = 1 << iota // Esc or window close
	ActionWireframe                         // F1
	ActionToggleCamera                      // Tab
	ActionResize                            // window size changed
	ActionScreenshot                        // F12
)

// Frame is everything the viewer needs from one poll.
type Frame struct {
	Elapsed  float32 // seconds since the previous poll
	CursorDX float32 // relative mouse motion in pixels, +x right
	CursorDY float32 // +y down
	Scroll   float32 // wheel steps, +y away from the user
	Keys     Key
	Actions  Action
	Width    int // new size when ActionResize is set
	Height   int
}

// Held reports whether k is down.
func (f Frame) Held(k Key) bool {
	return f.Keys&k != 0
}

// Triggered reports whether a happened this frame.
func (f Frame) Triggered(a Action) bool {
	return f.Actions&a != 0
}
