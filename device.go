package gfx

import "image"

// Handle identifies a GPU resource owned by a Device. Zero is never a valid
// handle.
type Handle uint32

// BufferKind selects how a buffer is bound when drawing.
type BufferKind int

const (
	// BufferStorage holds the per-vertex structured data (shader storage buffer).
	BufferStorage BufferKind = iota
	// BufferIndex holds 32-bit vertex indices.
	BufferIndex
	// BufferUniform holds a UniformBufferObject.
	BufferUniform
)

// String returns the buffer kind name.
func (k BufferKind) String() string {
	switch k {
	case BufferStorage:
		return "storage"
	case BufferIndex:
		return "index"
	case BufferUniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// DrawCall describes one indexed draw.
type DrawCall struct {
	Pipeline   Handle
	Vertices   Handle   // Storage buffer holding Vertex data
	Indices    Handle   // Index buffer
	Uniforms   Handle   // Uniform buffer holding a UniformBufferObject
	Textures   []Handle // Bindless table; slot i is texture index i
	IndexCount int
}

// Device is the graphics context: it owns GPU memory and submits work.
//
// Every resource created through a Device must be released through the
// matching Delete method. Implementations are not safe for concurrent use;
// all calls happen on the frame loop's thread.
type Device interface {
	// NewBuffer allocates size bytes of GPU memory.
	NewBuffer(kind BufferKind, size int) (Handle, error)
	// WriteBuffer copies data into the buffer at offset.
	WriteBuffer(buf Handle, offset int, data []byte) error
	DeleteBuffer(buf Handle)

	// NewTexture allocates a texture and uploads the image into it.
	NewTexture(img *image.RGBA) (Handle, error)
	DeleteTexture(tex Handle)

	// NewPipeline builds the shader program used by DrawCall, sized for a
	// bindless table of maxTextures entries.
	NewPipeline(maxTextures int) (Handle, error)
	DeletePipeline(p Handle)

	// Draw issues a single indexed draw call.
	Draw(call DrawCall) error

	// NewFence inserts a fence after all submitted work.
	NewFence() (Handle, error)
	// WaitFence blocks until the GPU has passed the fence.
	WaitFence(f Handle) error
	DeleteFence(f Handle)

	// Viewport sets the render area to the framebuffer size.
	Viewport(width, height int)
	// Clear clears the framebuffer to color.
	Clear(color Color)

	// MaxTextures returns the size limit of the bindless texture table.
	MaxTextures() int
}
