package gfx

import "unsafe"

// Vertex is the per-vertex data read by the shaders from a storage buffer.
//
// The layout follows std430 rules: the struct is padded to a multiple of 16
// bytes (the base alignment of a vec4) so consecutive vertices in the buffer
// line up with what the shader expects.
type Vertex struct {
	Pos      [4]float32 // Model space position (x, y, z, 1)
	RGBA     [4]float32 // Color applied to the vertex
	UV       [2]float32 // Texture coordinates
	TexIndex int32      // Index into the bindless texture table
	_        int32
}

// VertexSize is the size of a Vertex in bytes.
const VertexSize = int(unsafe.Sizeof(Vertex{}))

// DefaultVertex returns a white vertex at the origin using texture 0.
func DefaultVertex() Vertex {
	return Vertex{
		Pos:  [4]float32{0, 0, 0, 1},
		RGBA: [4]float32{1, 1, 1, 1},
	}
}

// NewVertex creates a vertex on the plane z = depth.
func NewVertex(pos Vec2, depth float32, color Color, uv Vec2, texIndex int32) Vertex {
	return Vertex{
		Pos:      [4]float32{pos.X, pos.Y, depth, 1},
		RGBA:     color.Array(),
		UV:       [2]float32{uv.X, uv.Y},
		TexIndex: texIndex,
	}
}

// UniformBufferObject is the data uploaded to the uniform buffer each frame.
type UniformBufferObject struct {
	ViewProjection Mat4
}

// UniformBufferSize is the size of a UniformBufferObject in bytes.
const UniformBufferSize = int(unsafe.Sizeof(UniformBufferObject{}))

// VertexStream accepts geometry. Indices index into the given vertex slice.
type VertexStream interface {
	PushVertices(vertices []Vertex, indices []uint32) error
}

func vertexBytes(v []Vertex) []byte {
	if len(v) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&v[0])), len(v)*VertexSize)
}

func indexBytes(idx []uint32) []byte {
	if len(idx) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&idx[0])), len(idx)*4)
}

func uniformBytes(u *UniformBufferObject) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(u)), UniformBufferSize)
}
