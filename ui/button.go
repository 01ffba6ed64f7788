package ui

import "github.com/go-theft-auto/gfx"

// Button is a rectangular push button with a drop shadow.
type Button struct {
	Bounds       gfx.Rect
	ShadowOffset gfx.Vec2
	Color        gfx.Color // fill while hovered or pressed
	IdleColor    gfx.Color // fill otherwise
	ShadowColor  gfx.Color
	Label        string
	LabelColor   gfx.Color
	LabelScale   float32
}

// NewButton returns a button with the default look.
func NewButton(bounds gfx.Rect) Button {
	return Button{
		Bounds:       bounds,
		ShadowOffset: gfx.Vec2{X: 8, Y: 8},
		Color:        gfx.ColorWhite,
		IdleColor:    gfx.ColorGray,
		ShadowColor:  gfx.ColorBlack.WithAlpha(0.3),
		LabelColor:   gfx.ColorBlack,
		LabelScale:   2,
	}
}

// Button draws b and returns true when a click completes: the mouse was
// pressed and released while over b.
func (s *State) Button(vs gfx.VertexStream, id ID, b Button) (bool, error) {
	if b.Bounds.Contains(s.MousePosition()) {
		s.SetHovered(id)
	}

	var err error
	switch {
	case s.IsHovered(id) && s.IsActive(id):
		err = b.drawPressed(vs, s.font)
	case s.IsHovered(id):
		err = b.draw(vs, s.font, b.Bounds, b.Color)
	default:
		err = b.draw(vs, s.font, b.Bounds, b.IdleColor)
	}
	if err != nil {
		return false, err
	}

	clicked := s.MouseState() == MouseReleased && s.IsHovered(id) && s.IsActive(id)
	if clicked {
		uiLogger.Debug("button clicked", "id", uint64(id), "label", b.Label)
	}
	return clicked, nil
}

// drawPressed shifts the face halfway towards its shadow.
func (b Button) drawPressed(vs gfx.VertexStream, font *gfx.Font) error {
	return b.draw(vs, font, b.Bounds.Translate(b.ShadowOffset.Mul(0.5)), b.Color)
}

func (b Button) draw(vs gfx.VertexStream, font *gfx.Font, face gfx.Rect, c gfx.Color) error {
	if err := gfx.FillRect(vs, b.Bounds.Translate(b.ShadowOffset), b.ShadowColor); err != nil {
		return err
	}
	if err := gfx.FillRect(vs, face, c); err != nil {
		return err
	}
	if b.Label == "" || font == nil {
		return nil
	}
	scale := b.LabelScale
	if scale <= 0 {
		scale = 1
	}
	size := font.MeasureText(b.Label, scale)
	pos := gfx.Vec2{
		X: face.X + (face.W-size.X)/2,
		Y: face.Y + (face.H-size.Y)/2,
	}
	return font.DrawText(vs, b.Label, pos, scale, b.LabelColor)
}
