package gfx

import "github.com/chewxy/math32"

// quadIndices splits a quad (top-left, top-right, bottom-right, bottom-left)
// into two triangles.
var quadIndices = []uint32{
	0, 1, 2, // first triangle
	0, 2, 3, // second triangle
}

// Tile is an axis-aligned textured rectangle.
type Tile struct {
	Model    Rect    // Position and size
	UV       Rect    // Texture region; zero value means the whole texture
	Color    Color   // Tint
	Depth    float32 // Z coordinate
	TexIndex int32   // Bindless texture index
}

// Fill draws the tile as a solid quad.
func (t Tile) Fill(vs VertexStream) error {
	uv := t.UV
	if uv == (Rect{}) {
		uv = Rect{W: 1, H: 1}
	}
	m := t.Model
	return vs.PushVertices([]Vertex{
		NewVertex(Vec2{m.X, m.Y}, t.Depth, t.Color, Vec2{uv.X, uv.Y}, t.TexIndex),
		NewVertex(Vec2{m.X + m.W, m.Y}, t.Depth, t.Color, Vec2{uv.X + uv.W, uv.Y}, t.TexIndex),
		NewVertex(Vec2{m.X + m.W, m.Y + m.H}, t.Depth, t.Color, Vec2{uv.X + uv.W, uv.Y + uv.H}, t.TexIndex),
		NewVertex(Vec2{m.X, m.Y + m.H}, t.Depth, t.Color, Vec2{uv.X, uv.Y + uv.H}, t.TexIndex),
	}, quadIndices)
}

// Outline draws the tile's border with the given thickness.
func (t Tile) Outline(vs VertexStream, thickness float32) error {
	m := t.Model
	edges := []Rect{
		{X: m.X, Y: m.Y, W: m.W, H: thickness},
		{X: m.X, Y: m.Y + m.H - thickness, W: m.W, H: thickness},
	}
	// Top and bottom already cover a tile thinner than two borders.
	if inner := max(m.H-2*thickness, 0); inner > 0 {
		edges = append(edges,
			Rect{X: m.X, Y: m.Y + thickness, W: thickness, H: inner},
			Rect{X: m.X + m.W - thickness, Y: m.Y + thickness, W: thickness, H: inner},
		)
	}
	for _, e := range edges {
		edge := t
		edge.Model = e
		edge.TexIndex = 0
		edge.UV = Rect{}
		if err := edge.Fill(vs); err != nil {
			return err
		}
	}
	return nil
}

// FillRect draws an untextured rectangle.
func FillRect(vs VertexStream, r Rect, color Color) error {
	if color.A == 0 {
		return nil
	}
	return Tile{Model: r, Color: color}.Fill(vs)
}

// OutlineRect draws an untextured rectangle outline.
func OutlineRect(vs VertexStream, r Rect, color Color, thickness float32) error {
	if color.A == 0 {
		return nil
	}
	return Tile{Model: r, Color: color}.Outline(vs, thickness)
}

// Line draws a line between two points as a quad of the given thickness.
func Line(vs VertexStream, from, to Vec2, color Color, thickness float32) error {
	if color.A == 0 {
		return nil
	}

	dx := to.X - from.X
	dy := to.Y - from.Y
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / math32.Sqrt(dx*dx+dy*dy)
	}

	// Normal perpendicular to the line
	n := Vec2{X: -dy * inv * thickness * 0.5, Y: dx * inv * thickness * 0.5}

	return vs.PushVertices([]Vertex{
		NewVertex(from.Add(n), 0, color, Vec2{}, 0),
		NewVertex(to.Add(n), 0, color, Vec2{}, 0),
		NewVertex(to.Sub(n), 0, color, Vec2{}, 0),
		NewVertex(from.Sub(n), 0, color, Vec2{}, 0),
	}, quadIndices)
}

// Sprite is a sized, rotated, textured quad.
type Sprite struct {
	Width, Height float32
	// Position is the sprite's center.
	Position Vec2
	// AngleInRadians rotates the sprite counter-clockwise around its center
	// in a Y-up coordinate system.
	AngleInRadians float32
	Depth          float32
	// TexIndex is the index returned by the AssetLoader.
	TexIndex int32
	// Color tints the texture. The zero value draws the texture untinted.
	Color Color
}

// Draw pushes the sprite's quad into vs.
func (s Sprite) Draw(vs VertexStream) error {
	sin, cos := math32.Sin(s.AngleInRadians), math32.Cos(s.AngleInRadians)
	rotate := func(x, y float32) Vec2 {
		return Vec2{X: s.Position.X + x*cos - y*sin, Y: s.Position.Y + x*sin + y*cos}
	}

	hw := 0.5 * s.Width
	hh := 0.5 * s.Height
	color := s.Color
	if color == (Color{}) {
		color = ColorWhite
	}

	return vs.PushVertices([]Vertex{
		NewVertex(rotate(-hw, hh), s.Depth, color, Vec2{0, 0}, s.TexIndex),
		NewVertex(rotate(hw, hh), s.Depth, color, Vec2{1, 0}, s.TexIndex),
		NewVertex(rotate(hw, -hh), s.Depth, color, Vec2{1, 1}, s.TexIndex),
		NewVertex(rotate(-hw, -hh), s.Depth, color, Vec2{0, 1}, s.TexIndex),
	}, quadIndices)
}
