package ui

import (
	"fmt"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
)

// Widget is a building block of a retained view. Widgets turn window events
// into messages of type M and draw themselves into a frame.
//
// Layout happens in two passes. A parent first calls Measure on each child,
// then calls Place to put it on screen. Widgets choose their own size but
// never their own position. The root is placed at the top-left corner of the
// screen.
type Widget[M any] interface {
	// HandleEvent returns a message when e completes an interaction.
	HandleEvent(s *State, e app.Event) (msg M, ok bool)
	Draw(s *State, vs gfx.VertexStream) error
	// Measure returns the widget's size. It must not exceed limit.
	Measure(s *State, limit gfx.Vec2) gfx.Vec2
	Place(s *State, pos gfx.Vec2)
}

// View is application state that can describe itself as a widget tree and
// change in response to the messages that tree emits.
type View[M any] interface {
	// View builds the widget tree for the current state.
	View() Widget[M]
	// Update applies a message emitted by the tree.
	Update(msg M) error
}

// UI drives a View: events go to the current widget tree, emitted messages
// are applied to the View, and the tree is rebuilt after every message.
type UI[M any] struct {
	state *State
	view  View[M]
	root  Widget[M]
}

// NewUI builds the initial tree for v and lays it out on s.
func NewUI[M any](s *State, v View[M]) *UI[M] {
	u := &UI[M]{state: s, view: v}
	u.Flush()
	return u
}

// State returns the underlying UI state.
func (u *UI[M]) State() *State {
	return u.state
}

// Projection returns the screen space projection for the current size.
func (u *UI[M]) Projection() gfx.Mat4 {
	return u.state.Projection()
}

// HandleEvent feeds e to the widget tree. A message emitted by the tree is
// applied to the View and returned; otherwise the tree is only laid out
// again, since e may have resized the screen.
func (u *UI[M]) HandleEvent(e app.Event) (M, bool, error) {
	u.state.HandleEvent(e)

	msg, ok := u.root.HandleEvent(u.state, e)
	if !ok {
		u.layout()
		return msg, false, nil
	}

	uiLogger.Debug("message", "msg", fmt.Sprintf("%v", msg))
	if err := u.view.Update(msg); err != nil {
		return msg, true, fmt.Errorf("update %v: %w", msg, err)
	}
	u.Flush()
	return msg, true, nil
}

// Flush rebuilds the widget tree from the View and lays it out. Call it when
// the View changed outside of Update.
func (u *UI[M]) Flush() {
	u.root = u.view.View()
	u.layout()
}

func (u *UI[M]) layout() {
	u.root.Measure(u.state, u.state.ScreenSize())
	u.root.Place(u.state, gfx.Vec2{})
}

// Draw renders the current tree as one UI frame.
func (u *UI[M]) Draw(vs gfx.VertexStream) error {
	return u.state.Render(func(s *State) error {
		return u.root.Draw(s, vs)
	})
}
