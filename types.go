package gfx

// Vec2 is a point or extent in pixel space.
type Vec2 struct {
	X, Y float32
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales both components by s.
func (v Vec2) Mul(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Min returns the componentwise minimum, e.g. a size clamped to a limit.
func (v Vec2) Min(o Vec2) Vec2 { return Vec2{min(v.X, o.X), min(v.Y, o.Y)} }

// Rect is an axis-aligned box. X and Y name the top-left corner because
// screen space grows downwards.
type Rect struct {
	X, Y, W, H float32
}

// CenteredAt returns a w x h rectangle centered on (x, y).
func CenteredAt(x, y, w, h float32) Rect {
	return Rect{X: x - 0.5*w, Y: y - 0.5*h, W: w, H: h}
}

// Contains reports whether p lies in r. The right and bottom edges are
// exclusive so adjacent rectangles never both claim a pixel.
func (r Rect) Contains(p Vec2) bool {
	dx, dy := p.X-r.X, p.Y-r.Y
	return dx >= 0 && dy >= 0 && dx < r.W && dy < r.H
}

// Translate returns r moved by offset.
func (r Rect) Translate(offset Vec2) Rect {
	r.X += offset.X
	r.Y += offset.Y
	return r
}

// Color is a linear RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// Color constants
var (
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorRed         = Color{1, 0, 0, 1}
	ColorGreen       = Color{0, 1, 0, 1}
	ColorBlue        = Color{0, 0, 1, 1}
	ColorGray        = Color{0.5, 0.5, 0.5, 1}
	ColorTransparent = Color{}
)

// RGBA creates a color from 8-bit components.
func RGBA(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = min(max(a, 0), 1)
	return c
}

// Array returns the color as the [4]float32 the shaders consume.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}
