package gfx

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // register decoder
	_ "golang.org/x/image/tiff" // register decoder
	_ "golang.org/x/image/webp" // register decoder
)

// Texture is a GPU-resident image plus its index in the bindless table.
type Texture struct {
	Handle Handle
	Index  int32
	Name   string
	Width  int
	Height int
}

// AssetLoader reads images into GPU textures and assigns each one an index
// in the bindless texture table. Textures live until Release.
type AssetLoader struct {
	dev      Device
	textures []Texture
}

// NewAssetLoader creates an asset loader. Index 0 is reserved for a 1x1 white
// texture so that untextured geometry can use the default texture index.
func NewAssetLoader(dev Device) (*AssetLoader, error) {
	l := &AssetLoader{dev: dev}
	white := image.NewRGBA(image.Rect(0, 0, 1, 1))
	white.Set(0, 0, color.White)
	if _, err := l.LoadImage("white", white); err != nil {
		return nil, fmt.Errorf("default texture: %w", err)
	}
	return l, nil
}

// ReadTexture decodes the image file at path and uploads it as a texture.
// Supported formats are png, jpeg, gif, bmp, tiff and webp.
func (l *AssetLoader) ReadTexture(path string) (Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return Texture{}, fmt.Errorf("open texture %q: %w: %w", path, ErrIO, err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return Texture{}, fmt.Errorf("decode texture %q: %w: %w", path, ErrIO, err)
	}
	gfxLogger.Debug("decoded texture", "path", path, "format", format, "bounds", img.Bounds())

	return l.LoadImage(path, img)
}

// LoadImage uploads an in-memory image as a texture.
func (l *AssetLoader) LoadImage(name string, img image.Image) (Texture, error) {
	if len(l.textures) >= l.dev.MaxTextures() {
		return Texture{}, fmt.Errorf("texture %q: bindless table full (%d): %w",
			name, l.dev.MaxTextures(), ErrOutOfMemory)
	}

	rgba := toRGBA(img)
	handle, err := l.dev.NewTexture(rgba)
	if err != nil {
		return Texture{}, fmt.Errorf("upload texture %q: %w", name, err)
	}

	t := Texture{
		Handle: handle,
		Index:  int32(len(l.textures)),
		Name:   name,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
	}
	l.textures = append(l.textures, t)
	gfxLogger.Info("texture loaded", "name", name, "index", t.Index, "width", t.Width, "height", t.Height)
	return t, nil
}

// Textures returns the bindless table in index order.
func (l *AssetLoader) Textures() []Texture {
	return l.textures
}

// NumTextures returns the number of loaded textures.
func (l *AssetLoader) NumTextures() int {
	return len(l.textures)
}

// Release deletes every texture, newest first.
func (l *AssetLoader) Release() {
	for i := len(l.textures) - 1; i >= 0; i-- {
		l.dev.DeleteTexture(l.textures[i].Handle)
	}
	l.textures = nil
}

// toRGBA returns img as a tightly packed RGBA image with origin (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) && rgba.Stride == 4*rgba.Rect.Dx() {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(rgba, image.Point{}, img, b, draw.Src, nil)
	return rgba
}
