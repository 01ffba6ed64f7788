package widgets

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// ButtonState is kept in the ui.Store under the button's ID, so a press
// survives the tree being rebuilt.
type ButtonState uint8

const (
	ButtonIdle ButtonState = iota
	ButtonHover
	ButtonPressed
)

func (b ButtonState) String() string {
	switch b {
	case ButtonHover:
		return "hover"
	case ButtonPressed:
		return "pressed"
	default:
		return "idle"
	}
}

// Button emits its message when the left mouse button is pressed over it and
// then released. It takes the size of its child, or Size when it has none.
type Button[M any] struct {
	Color        gfx.Color
	HoverColor   gfx.Color
	PressedColor gfx.Color
	Size         gfx.Vec2

	id     ui.ID
	child  ui.Widget[M]
	msg    M
	hasMsg bool
	bounds gfx.Rect
}

// NewButton returns a button wrapping child, which may be nil.
func NewButton[M any](id ui.ID, child ui.Widget[M]) *Button[M] {
	return &Button[M]{
		Color:        gfx.ColorWhite,
		HoverColor:   gfx.ColorRed,
		PressedColor: gfx.ColorBlack,
		Size:         gfx.Vec2{X: 1, Y: 1},
		id:           id,
		child:        child,
	}
}

// OnClick sets the message sent on a click.
func (b *Button[M]) OnClick(msg M) *Button[M] {
	b.msg, b.hasMsg = msg, true
	return b
}

// WithColors sets the idle, hover and pressed fills.
func (b *Button[M]) WithColors(idle, hover, pressed gfx.Color) *Button[M] {
	b.Color, b.HoverColor, b.PressedColor = idle, hover, pressed
	return b
}

// WithSize sets the size used when the button has no child.
func (b *Button[M]) WithSize(w, h float32) *Button[M] {
	b.Size = gfx.Vec2{X: w, Y: h}
	return b
}

// Bounds returns the button's rectangle from the last layout.
func (b *Button[M]) Bounds() gfx.Rect {
	return b.bounds
}

func (b *Button[M]) state(s *ui.State) *ButtonState {
	return ui.GetState(s.Store(), b.id, ButtonIdle)
}

func (b *Button[M]) HandleEvent(s *ui.State, e app.Event) (M, bool) {
	var zero M
	st := b.state(s)
	switch e := e.(type) {
	case app.CursorPosEvent:
		switch {
		case !b.bounds.Contains(gfx.Vec2{X: float32(e.X), Y: float32(e.Y)}):
			*st = ButtonIdle
		case *st == ButtonIdle:
			*st = ButtonHover
		}
	case app.MouseButtonEvent:
		if e.Button != app.MouseButtonLeft {
			return zero, false
		}
		switch {
		case e.Action == app.Press && *st == ButtonHover:
			*st = ButtonPressed
		case e.Action == app.Release && *st == ButtonPressed:
			*st = ButtonIdle
			if b.bounds.Contains(s.MousePosition()) {
				*st = ButtonHover
			}
			return b.msg, b.hasMsg
		}
	}
	return zero, false
}

func (b *Button[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	fill := b.Color
	switch *b.state(s) {
	case ButtonHover:
		fill = b.HoverColor
	case ButtonPressed:
		fill = b.PressedColor
	}
	if err := gfx.FillRect(vs, b.bounds, fill); err != nil {
		return err
	}
	if b.child == nil {
		return nil
	}
	return b.child.Draw(s, vs)
}

func (b *Button[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	size := b.Size.Min(limit)
	if b.child != nil {
		size = b.child.Measure(s, limit)
	}
	b.bounds.W, b.bounds.H = size.X, size.Y
	return size
}

func (b *Button[M]) Place(s *ui.State, pos gfx.Vec2) {
	b.bounds.X, b.bounds.Y = pos.X, pos.Y
	if b.child != nil {
		b.child.Place(s, pos)
	}
}
