package gfx_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gfx"
)

const tol = 1e-5

func assertClip(t *testing.T, m gfx.Mat4, x, y, wantX, wantY float32) {
	t.Helper()
	got := m.Transform([4]float32{x, y, 0, 1})
	assert.InDelta(t, wantX, got[0], tol, "x for (%v, %v)", x, y)
	assert.InDelta(t, wantY, got[1], tol, "y for (%v, %v)", x, y)
	assert.InDelta(t, 1, got[3], tol, "w for (%v, %v)", x, y)
}

func TestScreenProjectionCorners(t *testing.T) {
	sizes := []struct{ w, h float32 }{
		{800, 600},
		{1920, 1080},
		{1, 1},
		{333, 2000},
	}
	for _, s := range sizes {
		m := gfx.ScreenProjection(s.w, s.h)
		assertClip(t, m, 0, 0, -1, 1)
		assertClip(t, m, s.w, 0, 1, 1)
		assertClip(t, m, s.w, s.h, 1, -1)
		assertClip(t, m, 0, s.h, -1, -1)
		assertClip(t, m, s.w/2, s.h/2, 0, 0)
	}
}

func TestScreenProjectionDegenerateSize(t *testing.T) {
	m := gfx.ScreenProjection(0, 0)
	for _, v := range m {
		assert.False(t, math.IsNaN(float64(v)), "projection must not contain NaN")
	}
}

func TestCenteredProjectionKeepsAspect(t *testing.T) {
	m := gfx.CenteredProjection(1600, 800, 10)
	assertClip(t, m, 0, 0, 0, 0)
	assertClip(t, m, 0, 5, 0, 1)
	assertClip(t, m, 10, -5, 1, -1)
}

func TestMat4Mul(t *testing.T) {
	m := gfx.ScreenProjection(640, 480)
	assert.Equal(t, m, gfx.Identity().Mul(m))
	assert.Equal(t, m, m.Mul(gfx.Identity()))

	// Scale by 2 then project: (160, 120) lands where (320, 240) would.
	scale := gfx.Identity()
	scale[0], scale[5] = 2, 2
	got := m.Mul(scale).Transform([4]float32{160, 120, 0, 1})
	assert.InDelta(t, 0, got[0], tol)
	assert.InDelta(t, 0, got[1], tol)
}
