package gfx

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph   = ' '
	lastGlyph    = '~'
	atlasColumns = 16
)

// Font renders ASCII text from a fixed-size bitmap font. The glyphs are
// rasterized once into an atlas texture registered with the AssetLoader.
type Font struct {
	texIndex   int32
	cellW      int
	cellH      int
	atlasW     int
	atlasH     int
	lineHeight float32
}

// NewFont rasterizes the built-in 7x13 face into an atlas and uploads it.
func NewFont(loader *AssetLoader) (*Font, error) {
	return NewFontFromFace(loader, basicfont.Face7x13)
}

// NewFontFromFace rasterizes the printable ASCII range of a fixed-width face.
func NewFontFromFace(loader *AssetLoader, face font.Face) (*Font, error) {
	metrics := face.Metrics()
	cellW := font.MeasureString(face, "M").Ceil()
	cellH := metrics.Height.Ceil()
	if cellW <= 0 || cellH <= 0 {
		return nil, fmt.Errorf("font face has empty glyph cells (%dx%d)", cellW, cellH)
	}

	count := int(lastGlyph-firstGlyph) + 1
	rows := (count + atlasColumns - 1) / atlasColumns
	atlas := image.NewRGBA(image.Rect(0, 0, atlasColumns*cellW, rows*cellH))

	d := font.Drawer{
		Dst:  atlas,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for r := firstGlyph; r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		x := (i % atlasColumns) * cellW
		y := (i / atlasColumns) * cellH
		d.Dot = fixed.P(x, y+metrics.Ascent.Ceil())
		d.DrawString(string(r))
	}

	tex, err := loader.LoadImage("font-atlas", atlas)
	if err != nil {
		return nil, fmt.Errorf("font atlas: %w", err)
	}

	return &Font{
		texIndex:   tex.Index,
		cellW:      cellW,
		cellH:      cellH,
		atlasW:     atlas.Rect.Dx(),
		atlasH:     atlas.Rect.Dy(),
		lineHeight: float32(cellH),
	}, nil
}

// TexIndex returns the atlas texture's bindless index.
func (f *Font) TexIndex() int32 {
	return f.texIndex
}

// LineHeight returns the line height at the given scale.
func (f *Font) LineHeight(scale float32) float32 {
	return f.lineHeight * scale
}

// HasGlyph returns true if the font can draw r.
func (f *Font) HasGlyph(r rune) bool {
	return r >= firstGlyph && r <= lastGlyph
}

// MeasureText returns the size of text at the given scale.
func (f *Font) MeasureText(text string, scale float32) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{X: float32(n*f.cellW) * scale, Y: f.lineHeight * scale}
}

// DrawText draws a single line of text with its top-left corner at pos in a
// Y-down coordinate system. Runes the font lacks are drawn as '?'.
func (f *Font) DrawText(vs VertexStream, text string, pos Vec2, scale float32, c Color) error {
	w := float32(f.cellW) * scale
	h := float32(f.cellH) * scale
	x := pos.X
	for _, r := range text {
		if r == ' ' {
			x += w
			continue
		}
		if !f.HasGlyph(r) {
			r = '?'
		}
		i := int(r - firstGlyph)
		cx := (i % atlasColumns) * f.cellW
		cy := (i / atlasColumns) * f.cellH
		uv := Rect{
			X: float32(cx) / float32(f.atlasW),
			Y: float32(cy) / float32(f.atlasH),
			W: float32(f.cellW) / float32(f.atlasW),
			H: float32(f.cellH) / float32(f.atlasH),
		}
		tile := Tile{Model: Rect{X: x, Y: pos.Y, W: w, H: h}, UV: uv, Color: c, TexIndex: f.texIndex}
		if err := tile.Fill(vs); err != nil {
			return err
		}
		x += w
	}
	return nil
}
