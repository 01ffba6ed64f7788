package widgets

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// Insets is space reserved on each side of a widget.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Uniform returns the same inset on every side.
func Uniform(v float32) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

func (in Insets) size() gfx.Vec2 {
	return gfx.Vec2{X: in.Left + in.Right, Y: in.Top + in.Bottom}
}

// Padded surrounds a child with empty space.
type Padded[M any] struct {
	Insets Insets

	child ui.Widget[M]
}

// Pad wraps child with the same padding on every side.
func Pad[M any](child ui.Widget[M], padding float32) *Padded[M] {
	return &Padded[M]{Insets: Uniform(padding), child: child}
}

func (p *Padded[M]) HandleEvent(s *ui.State, e app.Event) (M, bool) {
	return p.child.HandleEvent(s, e)
}

func (p *Padded[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	return p.child.Draw(s, vs)
}

func (p *Padded[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	inner := p.child.Measure(s, nonNegative(limit.Sub(p.Insets.size())))
	return inner.Add(p.Insets.size()).Min(limit)
}

func (p *Padded[M]) Place(s *ui.State, pos gfx.Vec2) {
	p.child.Place(s, pos.Add(gfx.Vec2{X: p.Insets.Left, Y: p.Insets.Top}))
}
