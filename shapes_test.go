package gfx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/gfxtest"
)

func TestTileFill(t *testing.T) {
	f := gfx.NewFrame(64, 64, 2)
	tile := gfx.Tile{
		Model:    gfx.Rect{X: 10, Y: 20, W: 30, H: 40},
		Color:    gfx.ColorRed,
		TexIndex: 1,
	}
	require.NoError(t, tile.Fill(f))

	v := f.Vertices()
	require.Len(t, v, 4)
	assert.Equal(t, [4]float32{10, 20, 0, 1}, v[0].Pos)
	assert.Equal(t, [4]float32{40, 60, 0, 1}, v[2].Pos)
	assert.Equal(t, [2]float32{1, 1}, v[2].UV)
	assert.Equal(t, gfx.ColorRed.Array(), v[1].RGBA)
	assert.Equal(t, int32(1), v[3].TexIndex)
	assert.Len(t, f.Indices(), 6)
}

func TestOutlineRectUsesFourQuads(t *testing.T) {
	f := gfx.NewFrame(64, 64, 1)
	require.NoError(t, gfx.OutlineRect(f, gfx.Rect{W: 10, H: 10}, gfx.ColorWhite, 1))
	assert.Len(t, f.Vertices(), 16)
}

func TestOutlineThickerThanTile(t *testing.T) {
	f := gfx.NewFrame(64, 64, 1)
	require.NoError(t, gfx.OutlineRect(f, gfx.Rect{W: 10, H: 4}, gfx.ColorWhite, 4))

	v := f.Vertices()
	require.Len(t, v, 8, "side edges are dropped when the border fills the tile")
	for i := 0; i < len(v); i += 4 {
		assert.GreaterOrEqual(t, v[i+2].Pos[1], v[i].Pos[1], "edge %d has negative height", i/4)
	}
}

func TestTransparentShapesAreSkipped(t *testing.T) {
	f := gfx.NewFrame(64, 64, 1)
	require.NoError(t, gfx.FillRect(f, gfx.Rect{W: 10, H: 10}, gfx.ColorTransparent))
	require.NoError(t, gfx.Line(f, gfx.Vec2{}, gfx.Vec2{X: 5}, gfx.ColorTransparent, 2))
	assert.Empty(t, f.Vertices())
}

func TestLineThickness(t *testing.T) {
	f := gfx.NewFrame(64, 64, 1)
	require.NoError(t, gfx.Line(f, gfx.Vec2{X: 0, Y: 0}, gfx.Vec2{X: 10, Y: 0}, gfx.ColorWhite, 4))

	v := f.Vertices()
	require.Len(t, v, 4)
	assert.InDelta(t, 2, v[0].Pos[1], 1e-6)
	assert.InDelta(t, -2, v[3].Pos[1], 1e-6)
}

func TestSpriteRotation(t *testing.T) {
	f := gfx.NewFrame(64, 64, 1)
	s := gfx.Sprite{
		Width:          2,
		Height:         2,
		Position:       gfx.Vec2{X: 5, Y: 5},
		AngleInRadians: math.Pi / 2,
	}
	require.NoError(t, s.Draw(f))

	v := f.Vertices()
	require.Len(t, v, 4)
	// Top-left corner (-1, 1) rotated a quarter turn lands at (-1, -1).
	assert.InDelta(t, 4, v[0].Pos[0], 1e-5)
	assert.InDelta(t, 4, v[0].Pos[1], 1e-5)
	assert.Equal(t, gfx.ColorWhite.Array(), v[0].RGBA)
	assert.Equal(t, [2]float32{0, 0}, v[0].UV)
}

func TestFontDrawText(t *testing.T) {
	dev := gfxtest.NewDevice()
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	font, err := gfx.NewFont(loader)
	require.NoError(t, err)
	assert.Equal(t, int32(1), font.TexIndex())
	assert.Equal(t, 2, loader.NumTextures())

	size := font.MeasureText("+1", 2)
	assert.Equal(t, float32(28), size.X)
	assert.Equal(t, font.LineHeight(2), size.Y)

	f := gfx.NewFrame(256, 256, loader.NumTextures())
	require.NoError(t, font.DrawText(f, "a bé", gfx.Vec2{X: 1, Y: 2}, 1, gfx.ColorWhite))
	// Spaces emit no geometry; unknown runes fall back to '?'.
	assert.Len(t, f.Vertices(), 12)
	for _, v := range f.Vertices() {
		assert.Equal(t, font.TexIndex(), v.TexIndex)
		assert.True(t, v.UV[0] >= 0 && v.UV[0] <= 1)
		assert.True(t, v.UV[1] >= 0 && v.UV[1] <= 1)
	}
}
