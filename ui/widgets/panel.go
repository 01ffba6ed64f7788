package widgets

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// DefaultPanelColor is a faint blue-white wash.
var DefaultPanelColor = gfx.Color{R: 0.8, G: 0.8, B: 1, A: 0.1}

// Panel draws a background behind its child. The background covers the
// padding too.
type Panel[M any] struct {
	Color    gfx.Color
	TexIndex int32
	Padding  float32

	child      ui.Widget[M]
	background gfx.Rect
}

func NewPanel[M any](child ui.Widget[M]) *Panel[M] {
	return &Panel[M]{Color: DefaultPanelColor, child: child}
}

// WithPadding sets the space between the panel's edge and its child.
func (p *Panel[M]) WithPadding(padding float32) *Panel[M] {
	p.Padding = padding
	return p
}

// WithColor sets the background color.
func (p *Panel[M]) WithColor(c gfx.Color) *Panel[M] {
	p.Color = c
	return p
}

// Bounds returns the background rectangle from the last layout.
func (p *Panel[M]) Bounds() gfx.Rect {
	return p.background
}

func (p *Panel[M]) HandleEvent(s *ui.State, e app.Event) (M, bool) {
	return p.child.HandleEvent(s, e)
}

func (p *Panel[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	bg := gfx.Tile{Model: p.background, Color: p.Color, TexIndex: p.TexIndex}
	if p.Color.A > 0 {
		if err := bg.Fill(vs); err != nil {
			return err
		}
	}
	return p.child.Draw(s, vs)
}

func (p *Panel[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	pad := gfx.Vec2{X: 2 * p.Padding, Y: 2 * p.Padding}
	size := p.child.Measure(s, nonNegative(limit.Sub(pad))).Add(pad).Min(limit)
	p.background.W, p.background.H = size.X, size.Y
	return size
}

func (p *Panel[M]) Place(s *ui.State, pos gfx.Vec2) {
	p.background.X, p.background.Y = pos.X, pos.Y
	p.child.Place(s, pos.Add(gfx.Vec2{X: p.Padding, Y: p.Padding}))
}
