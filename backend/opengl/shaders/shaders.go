// Package shaders holds the GLSL sources of the OpenGL backend.
package shaders

import (
	_ "embed"
	"fmt"
	"strings"
)

var (
	//go:embed vertex.glsl
	Vertex string
	//go:embed fragment.glsl
	Fragment string
)

// MaxTexturesDefine names the preprocessor constant that sizes the fragment
// shader's sampler array.
const MaxTexturesDefine = "MAX_TEXTURES"

// WithDefine inserts "#define name value" right after the #version line.
func WithDefine(source, name string, value int) string {
	define := fmt.Sprintf("#define %s %d\n", name, value)
	if i := strings.Index(source, "\n"); i >= 0 && strings.HasPrefix(source, "#version") {
		return source[:i+1] + define + source[i+1:]
	}
	return define + source
}

// FragmentFor returns the fragment shader sized for maxTextures samplers.
func FragmentFor(maxTextures int) string {
	return WithDefine(Fragment, MaxTexturesDefine, maxTextures)
}
