package gfx_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/gfxtest"
)

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestAssetLoaderIndicesInRange(t *testing.T) {
	dev := gfxtest.NewDevice()
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	dir := t.TempDir()
	var loaded []gfx.Texture
	for i, size := range []int{1, 7, 32, 64} {
		path := writePNG(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".png", size, size)
		tex, err := loader.ReadTexture(path)
		require.NoError(t, err)
		assert.Equal(t, size, tex.Width)
		assert.Equal(t, size, tex.Height)
		loaded = append(loaded, tex)
	}

	seen := map[int32]bool{}
	for _, tex := range loaded {
		assert.GreaterOrEqual(t, tex.Index, int32(0))
		assert.Less(t, int(tex.Index), loader.NumTextures())
		assert.False(t, seen[tex.Index], "index %d assigned twice", tex.Index)
		seen[tex.Index] = true
	}
	assert.Equal(t, 5, loader.NumTextures(), "white texture plus four files")
	assert.Equal(t, 5, dev.LiveByKind(gfxtest.KindTexture))

	loader.Release()
	assert.Zero(t, dev.Live())
}

func TestAssetLoaderDecodesBMP(t *testing.T) {
	dev := gfxtest.NewDevice()
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tile.bmp")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, image.NewRGBA(image.Rect(0, 0, 3, 5))))
	require.NoError(t, f.Close())

	tex, err := loader.ReadTexture(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tex.Width)
	assert.Equal(t, 5, tex.Height)
}

func TestAssetLoaderMissingFile(t *testing.T) {
	loader, err := gfx.NewAssetLoader(gfxtest.NewDevice())
	require.NoError(t, err)

	_, err = loader.ReadTexture(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, gfx.ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, 1, loader.NumTextures())
}

func TestAssetLoaderUndecodableFile(t *testing.T) {
	loader, err := gfx.NewAssetLoader(gfxtest.NewDevice())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))

	_, err = loader.ReadTexture(path)
	assert.ErrorIs(t, err, gfx.ErrIO)
}

func TestAssetLoaderOutOfMemory(t *testing.T) {
	dev := gfxtest.NewDevice()
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	dev.MemoryLimit = 4 + 16*16*4 - 1
	_, err = loader.LoadImage("big", image.NewRGBA(image.Rect(0, 0, 16, 16)))
	assert.ErrorIs(t, err, gfx.ErrOutOfMemory)
	assert.Equal(t, 1, loader.NumTextures())
}

func TestAssetLoaderTableFull(t *testing.T) {
	dev := gfxtest.NewDevice()
	dev.TextureLimit = 2
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	_, err = loader.LoadImage("one", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	_, err = loader.LoadImage("two", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorIs(t, err, gfx.ErrOutOfMemory)
}

func TestAssetLoaderSubImage(t *testing.T) {
	dev := gfxtest.NewDevice()
	loader, err := gfx.NewAssetLoader(dev)
	require.NoError(t, err)

	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	sub := src.SubImage(image.Rect(2, 3, 6, 9))
	tex, err := loader.LoadImage("sub", sub)
	require.NoError(t, err)
	assert.Equal(t, 4, tex.Width)
	assert.Equal(t, 6, tex.Height)
}
