package ui

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
)

// uiLogger is the logger for the ui package.
var uiLogger = gfx.Logger().With("component", "ui")

// MouseState is the state of the primary mouse button.
type MouseState int

const (
	MouseReleased MouseState = iota
	MousePressed
)

func (m MouseState) String() string {
	if m == MousePressed {
		return "pressed"
	}
	return "released"
}

// ActiveState says whether an item is active, or whether one may become
// active.
type ActiveState int

const (
	// ActiveNone means no item is active and one may become active.
	ActiveNone ActiveState = iota
	// ActiveItem means the item returned alongside is active.
	ActiveItem
	// ActiveUnavailable means no item is active and none can become active
	// until the mouse is released. This happens when the press started over
	// empty space, so dragging onto a widget does not press it.
	ActiveUnavailable
)

// State holds the UI state that persists between frames.
type State struct {
	mousePos   gfx.Vec2
	mouse      MouseState
	screen     gfx.Vec2
	projection gfx.Mat4

	hot      ID
	hasHot   bool
	active   ID
	activeSt ActiveState

	store *Store
	font  *gfx.Font
}

// NewState creates a UI state for a screen of the given size.
func NewState(width, height int) *State {
	s := &State{store: NewStore()}
	s.resize(width, height)
	return s
}

// SetFont sets the font used for widget labels. Labels are skipped while no
// font is set.
func (s *State) SetFont(f *gfx.Font) {
	s.font = f
}

// Font returns the label font, or nil.
func (s *State) Font() *gfx.Font {
	return s.font
}

// Store returns the per-widget state store.
func (s *State) Store() *Store {
	return s.store
}

// HandleEvent updates the mouse and screen state from a window event.
func (s *State) HandleEvent(e app.Event) {
	switch e := e.(type) {
	case app.CursorPosEvent:
		s.mousePos = gfx.Vec2{X: float32(e.X), Y: float32(e.Y)}
	case app.MouseButtonEvent:
		if e.Button != app.MouseButtonLeft {
			return
		}
		switch e.Action {
		case app.Press:
			s.mouse = MousePressed
		case app.Release:
			s.mouse = MouseReleased
		}
	case app.FramebufferSizeEvent:
		s.resize(e.Width, e.Height)
	}
}

func (s *State) resize(width, height int) {
	s.screen = gfx.Vec2{X: float32(width), Y: float32(height)}
	s.projection = gfx.ScreenProjection(s.screen.X, s.screen.Y)
}

// Projection maps (0,0) to the top-left corner of the screen and
// (width,height) to the bottom-right corner.
func (s *State) Projection() gfx.Mat4 {
	return s.projection
}

// ScreenSize returns the screen size in pixels.
func (s *State) ScreenSize() gfx.Vec2 {
	return s.screen
}

// MousePosition returns the cursor position in screen coordinates.
func (s *State) MousePosition() gfx.Vec2 {
	return s.mousePos
}

// MouseState returns the primary button's state.
func (s *State) MouseState() MouseState {
	return s.mouse
}

// SetHovered marks id as the hot item. It becomes active if the mouse is
// pressed and no other item is or cannot be active.
func (s *State) SetHovered(id ID) {
	s.hot, s.hasHot = id, true
	if s.activeSt == ActiveNone && s.mouse == MousePressed {
		s.active, s.activeSt = id, ActiveItem
	}
}

// Hovered returns the hot item, if any.
func (s *State) Hovered() (ID, bool) {
	return s.hot, s.hasHot
}

// IsHovered returns true if id is the hot item.
func (s *State) IsHovered(id ID) bool {
	return s.hasHot && s.hot == id
}

// Active returns the active item and the active state. The ID is only
// meaningful when the state is ActiveItem.
func (s *State) Active() (ID, ActiveState) {
	return s.active, s.activeSt
}

// IsActive returns true if id is the active item.
func (s *State) IsActive(id ID) bool {
	return s.activeSt == ActiveItem && s.active == id
}

// Render runs one frame of UI code. The hot item is recomputed by the
// widgets drawn in body; afterwards the active item is released if the
// mouse was released.
func (s *State) Render(body func(*State) error) error {
	s.hasHot = false
	s.store.nextFrame()

	if err := body(s); err != nil {
		return err
	}

	switch {
	case s.mouse == MouseReleased:
		s.activeSt = ActiveNone
	case s.activeSt == ActiveNone:
		s.activeSt = ActiveUnavailable
	}
	return nil
}
