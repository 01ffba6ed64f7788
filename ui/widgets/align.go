package widgets

import (
	"github.com/chewxy/math32"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// Alignment positions a child along one axis of the space it is given.
type Alignment uint8

const (
	AlignCenter Alignment = iota // default
	AlignStart                   // left or top
	AlignEnd                     // right or bottom
)

func (a Alignment) offset(remaining float32) float32 {
	switch a {
	case AlignStart:
		return 0
	case AlignEnd:
		return remaining
	default:
		return math32.Round(remaining / 2)
	}
}

// Align fills all the space it is given and positions its child inside it.
// The default is centered on both axes. Offsets are rounded to whole pixels
// so text stays crisp.
type Align[M any] struct {
	Horizontal Alignment
	Vertical   Alignment

	child  ui.Widget[M]
	offset gfx.Vec2
}

func NewAlign[M any](child ui.Widget[M]) *Align[M] {
	return &Align[M]{child: child}
}

// WithAlignment sets both axes.
func (a *Align[M]) WithAlignment(horizontal, vertical Alignment) *Align[M] {
	a.Horizontal, a.Vertical = horizontal, vertical
	return a
}

func (a *Align[M]) HandleEvent(s *ui.State, e app.Event) (M, bool) {
	return a.child.HandleEvent(s, e)
}

func (a *Align[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	return a.child.Draw(s, vs)
}

func (a *Align[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	rest := limit.Sub(a.child.Measure(s, limit))
	a.offset = gfx.Vec2{X: a.Horizontal.offset(rest.X), Y: a.Vertical.offset(rest.Y)}
	return limit
}

func (a *Align[M]) Place(s *ui.State, pos gfx.Vec2) {
	a.child.Place(s, pos.Add(a.offset))
}
