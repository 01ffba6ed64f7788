package widgets

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// Row lays its children out left to right. Each child is measured against
// the width left over by the children before it.
type Row[M any] struct {
	children []ui.Widget[M]
	widths   []float32
}

func NewRow[M any](children ...ui.Widget[M]) *Row[M] {
	return &Row[M]{children: children}
}

// Add appends a child to the end of the row.
func (r *Row[M]) Add(child ui.Widget[M]) *Row[M] {
	r.children = append(r.children, child)
	return r
}

// HandleEvent returns the first message any child emits.
func (r *Row[M]) HandleEvent(s *ui.State, e app.Event) (M, bool) {
	for _, c := range r.children {
		if msg, ok := c.HandleEvent(s, e); ok {
			return msg, true
		}
	}
	var zero M
	return zero, false
}

func (r *Row[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	for _, c := range r.children {
		if err := c.Draw(s, vs); err != nil {
			return err
		}
	}
	return nil
}

func (r *Row[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	r.widths = r.widths[:0]
	var size gfx.Vec2
	remaining := limit
	for _, c := range r.children {
		cs := c.Measure(s, nonNegative(remaining))
		r.widths = append(r.widths, cs.X)
		size.X += cs.X
		size.Y = max(size.Y, cs.Y)
		remaining.X -= cs.X
	}
	return size.Min(limit)
}

func (r *Row[M]) Place(s *ui.State, pos gfx.Vec2) {
	for i, c := range r.children {
		c.Place(s, pos)
		pos.X += r.widths[i]
	}
}
