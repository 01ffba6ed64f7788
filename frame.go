package gfx

import "fmt"

// Frame holds everything needed to render one frame's geometry: CPU-side
// vertex and index data plus the GPU buffers they are uploaded into.
//
// A Frame is rebuilt from scratch every time it is acquired from its Layer.
type Frame struct {
	vertices    []Vertex
	indices     []uint32
	uniforms    UniformBufferObject
	numTextures int

	slot       int
	acquired   bool
	vertexBuf  Handle
	indexBuf   Handle
	uniformBuf Handle
	fence      Handle
}

// SetViewProjection sets the projection used for this frame's geometry.
func (f *Frame) SetViewProjection(m Mat4) {
	f.uniforms.ViewProjection = m
}

// ViewProjection returns the projection that will be uploaded.
func (f *Frame) ViewProjection() Mat4 {
	return f.uniforms.ViewProjection
}

// PushVertices appends geometry to the frame. Indices are relative to the
// given vertex slice.
//
// If the geometry does not fit in the frame's buffers nothing is written and
// ErrCapacityExceeded is returned. A vertex referencing a texture index
// outside the bindless table, or an index past the end of vertices, is a
// programming error and panics.
func (f *Frame) PushVertices(vertices []Vertex, indices []uint32) error {
	if len(f.vertices)+len(vertices) > cap(f.vertices) {
		return fmt.Errorf("push %d vertices onto %d/%d: %w",
			len(vertices), len(f.vertices), cap(f.vertices), ErrCapacityExceeded)
	}
	if len(f.indices)+len(indices) > cap(f.indices) {
		return fmt.Errorf("push %d indices onto %d/%d: %w",
			len(indices), len(f.indices), cap(f.indices), ErrCapacityExceeded)
	}
	for i := range vertices {
		if t := vertices[i].TexIndex; t < 0 || int(t) >= f.numTextures {
			panic(fmt.Sprintf("gfx: vertex texture index %d out of range [0, %d)", t, f.numTextures))
		}
	}
	for _, idx := range indices {
		if idx >= uint32(len(vertices)) {
			panic(fmt.Sprintf("gfx: index %d out of range for %d pushed vertices", idx, len(vertices)))
		}
	}

	base := uint32(len(f.vertices))
	f.vertices = append(f.vertices, vertices...)
	for _, idx := range indices {
		f.indices = append(f.indices, base+idx)
	}
	return nil
}

// Vertices returns the vertices pushed so far.
func (f *Frame) Vertices() []Vertex {
	return f.vertices
}

// Indices returns the indices pushed so far, already offset into Vertices.
func (f *Frame) Indices() []uint32 {
	return f.indices
}

// NumTextures returns the size of the bindless texture table for this frame.
func (f *Frame) NumTextures() int {
	return f.numTextures
}

// VertexCapacity returns the number of vertices the storage buffer can hold.
func (f *Frame) VertexCapacity() int {
	return cap(f.vertices)
}

func (f *Frame) clear() {
	f.vertices = f.vertices[:0]
	f.indices = f.indices[:0]
}
