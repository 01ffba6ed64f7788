package shaders

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefineFollowsVersion(t *testing.T) {
	src := FragmentFor(8)
	lines := strings.SplitN(src, "\n", 3)
	require.Len(t, lines, 3)
	assert.Equal(t, "#version 430 core", lines[0])
	assert.Equal(t, "#define MAX_TEXTURES 8", lines[1])
}

func TestWithDefineWithoutVersion(t *testing.T) {
	assert.Equal(t, "#define N 2\nvoid main() {}", WithDefine("void main() {}", "N", 2))
}

// The sampler array must never be indexed by the per-vertex texture index;
// only the uniform loop counter may select a sampler.
func TestFragmentIndexesSamplersUniformly(t *testing.T) {
	assert.NotContains(t, Fragment, "textures[vertexTexIndex]")

	index := regexp.MustCompile(`textures\[(\w+)\]`)
	for _, m := range index.FindAllStringSubmatch(Fragment, -1) {
		assert.Contains(t, []string{"MAX_TEXTURES", "i"}, m[1])
	}
	assert.Contains(t, Fragment, "for (int i = 0; i < MAX_TEXTURES; ++i)")
	assert.Contains(t, Fragment, "textureGrad(textures[i], vertexUV, dx, dy)")
}

// Derivatives are undefined inside non-uniform control flow, so they are
// computed before the loop.
func TestFragmentDerivativesBeforeBranch(t *testing.T) {
	deriv := strings.Index(Fragment, "dFdx(vertexUV)")
	loop := strings.Index(Fragment, "for (int i")
	require.GreaterOrEqual(t, deriv, 0)
	require.GreaterOrEqual(t, loop, 0)
	assert.Less(t, deriv, loop)
	assert.Less(t, strings.Index(Fragment, "dFdy(vertexUV)"), loop)
}

func TestVertexBindings(t *testing.T) {
	assert.Contains(t, Vertex, "binding = 0")
	assert.Contains(t, Vertex, "binding = 1")
	assert.Contains(t, Vertex, "gl_VertexID")
}
