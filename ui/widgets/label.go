package widgets

import (
	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
	"github.com/go-theft-auto/gfx/ui"
)

// Label draws a line of text with the State's font. Without a font it has
// no size and draws nothing.
type Label[M any] struct {
	Text  string
	Scale float32
	Color gfx.Color

	pos gfx.Vec2
}

// NewLabel returns white text at scale 1.
func NewLabel[M any](text string) *Label[M] {
	return &Label[M]{Text: text, Scale: 1, Color: gfx.ColorWhite}
}

// WithScale sets the text scale.
func (l *Label[M]) WithScale(scale float32) *Label[M] {
	l.Scale = scale
	return l
}

// WithColor sets the text color.
func (l *Label[M]) WithColor(c gfx.Color) *Label[M] {
	l.Color = c
	return l
}

// HandleEvent never emits a message.
func (l *Label[M]) HandleEvent(*ui.State, app.Event) (M, bool) {
	var zero M
	return zero, false
}

func (l *Label[M]) Draw(s *ui.State, vs gfx.VertexStream) error {
	if s.Font() == nil || l.Text == "" {
		return nil
	}
	return s.Font().DrawText(vs, l.Text, l.pos, l.Scale, l.Color)
}

func (l *Label[M]) Measure(s *ui.State, limit gfx.Vec2) gfx.Vec2 {
	if s.Font() == nil {
		return gfx.Vec2{}
	}
	return s.Font().MeasureText(l.Text, l.Scale).Min(limit)
}

func (l *Label[M]) Place(_ *ui.State, pos gfx.Vec2) {
	l.pos = pos
}
