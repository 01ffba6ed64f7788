package app

// Event is an input or window event delivered by a Window.
type Event interface {
	event()
}

// Key represents a keyboard key.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyF11
	KeyCount
)

// Action is what happened to a key or button.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

// Mod is a bitmask of held modifier keys.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// KeyEvent reports a key press, repeat or release.
type KeyEvent struct {
	Key    Key
	Action Action
	Mods   Mod
}

// CursorPosEvent reports the cursor position in window coordinates.
type CursorPosEvent struct {
	X, Y float64
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   Mod
}

// FramebufferSizeEvent reports a new framebuffer size in pixels.
type FramebufferSizeEvent struct {
	Width, Height int
}

// CloseEvent reports a request to close the window.
type CloseEvent struct{}

func (KeyEvent) event()             {}
func (CursorPosEvent) event()       {}
func (MouseButtonEvent) event()     {}
func (FramebufferSizeEvent) event() {}
func (CloseEvent) event()           {}

// Pressed returns true if the event is a fresh press of key with exactly the
// given modifiers held.
func (e KeyEvent) Pressed(key Key, mods Mod) bool {
	return e.Action == Press && e.Key == key && e.Mods == mods
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	names := map[Key]string{
		KeyUnknown:   "--",
		KeyEscape:    "Esc",
		KeySpace:     "Space",
		KeyEnter:     "Enter",
		KeyTab:       "Tab",
		KeyBackspace: "Backspace",
		KeyLeft:      "Left",
		KeyRight:     "Right",
		KeyUp:        "Up",
		KeyDown:      "Down",
		KeyF11:       "F11",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "?"
}
