package gfx

import "fmt"

// Default layer sizing.
const (
	DefaultFramesInFlight = 2
	DefaultVertexCapacity = 16384
	DefaultIndexCapacity  = 3 * DefaultVertexCapacity / 2
)

// LayerOption configures a Layer.
type LayerOption func(*layerOptions)

type layerOptions struct {
	framesInFlight int
	vertexCapacity int
	indexCapacity  int
}

// WithFramesInFlight sets how many frames may be queued on the GPU at once.
func WithFramesInFlight(n int) LayerOption {
	return func(o *layerOptions) { o.framesInFlight = n }
}

// WithVertexCapacity sets the storage buffer size of each frame, in vertices.
func WithVertexCapacity(n int) LayerOption {
	return func(o *layerOptions) { o.vertexCapacity = n }
}

// WithIndexCapacity sets the index buffer size of each frame, in indices.
func WithIndexCapacity(n int) LayerOption {
	return func(o *layerOptions) { o.indexCapacity = n }
}

// NewFrame creates a frame with no GPU resources attached. It accepts
// geometry like any other frame and is useful for building vertex data
// off-device.
func NewFrame(vertexCapacity, indexCapacity, numTextures int) *Frame {
	return &Frame{
		vertices:    make([]Vertex, 0, vertexCapacity),
		indices:     make([]uint32, 0, indexCapacity),
		uniforms:    UniformBufferObject{ViewProjection: Identity()},
		numTextures: numTextures,
	}
}

// Layer renders triangles with one draw call per frame. It owns a ring of
// per-frame resources so the CPU can build frame N+1 while the GPU still
// reads frame N.
type Layer struct {
	dev      Device
	pipeline Handle
	textures []Handle
	frames   []*Frame
	next     int
}

// NewLayer allocates the pipeline and every frame's buffers. textures is the
// bindless table: vertex texture index i samples textures[i].
func NewLayer(dev Device, textures []Texture, opts ...LayerOption) (*Layer, error) {
	o := layerOptions{
		framesInFlight: DefaultFramesInFlight,
		vertexCapacity: DefaultVertexCapacity,
		indexCapacity:  DefaultIndexCapacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.framesInFlight < 1 || o.vertexCapacity < 1 || o.indexCapacity < 1 {
		return nil, fmt.Errorf("invalid layer sizing %+v", o)
	}
	if len(textures) > dev.MaxTextures() {
		return nil, fmt.Errorf("%d textures exceed device limit of %d: %w",
			len(textures), dev.MaxTextures(), ErrOutOfMemory)
	}

	l := &Layer{dev: dev}
	for _, t := range textures {
		l.textures = append(l.textures, t.Handle)
	}

	var err error
	l.pipeline, err = dev.NewPipeline(max(len(textures), 1))
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	for i := 0; i < o.framesInFlight; i++ {
		f := NewFrame(o.vertexCapacity, o.indexCapacity, len(textures))
		f.slot = i
		l.frames = append(l.frames, f)
		if err := l.allocateFrame(f, o); err != nil {
			l.Release()
			return nil, fmt.Errorf("allocate frame %d: %w", i, err)
		}
	}

	gfxLogger.Info("layer created",
		"frames", o.framesInFlight,
		"vertexCapacity", o.vertexCapacity,
		"textures", len(textures))
	return l, nil
}

func (l *Layer) allocateFrame(f *Frame, o layerOptions) error {
	var err error
	if f.vertexBuf, err = l.dev.NewBuffer(BufferStorage, o.vertexCapacity*VertexSize); err != nil {
		return err
	}
	if f.indexBuf, err = l.dev.NewBuffer(BufferIndex, o.indexCapacity*4); err != nil {
		return err
	}
	if f.uniformBuf, err = l.dev.NewBuffer(BufferUniform, UniformBufferSize); err != nil {
		return err
	}
	return nil
}

// AcquireFrame returns the next frame in the ring, cleared and ready for
// geometry. It blocks until the GPU has finished with the frame's buffers.
func (l *Layer) AcquireFrame() (*Frame, error) {
	f := l.frames[l.next]
	if f.acquired {
		return nil, fmt.Errorf("frame %d: %w", f.slot, ErrFrameInUse)
	}
	if f.fence != 0 {
		if err := l.dev.WaitFence(f.fence); err != nil {
			return nil, fmt.Errorf("wait for frame %d: %w", f.slot, err)
		}
		l.dev.DeleteFence(f.fence)
		f.fence = 0
	}
	l.next = (l.next + 1) % len(l.frames)
	f.clear()
	f.acquired = true
	return f, nil
}

// CompleteFrame uploads the frame's data and issues its draw call.
func (l *Layer) CompleteFrame(f *Frame) error {
	if !f.acquired {
		return fmt.Errorf("complete frame %d: not acquired", f.slot)
	}
	f.acquired = false

	if err := l.dev.WriteBuffer(f.uniformBuf, 0, uniformBytes(&f.uniforms)); err != nil {
		return fmt.Errorf("upload uniforms: %w", err)
	}
	if len(f.indices) == 0 {
		return nil
	}
	if err := l.dev.WriteBuffer(f.vertexBuf, 0, vertexBytes(f.vertices)); err != nil {
		return fmt.Errorf("upload %d vertices: %w", len(f.vertices), err)
	}
	if err := l.dev.WriteBuffer(f.indexBuf, 0, indexBytes(f.indices)); err != nil {
		return fmt.Errorf("upload %d indices: %w", len(f.indices), err)
	}

	err := l.dev.Draw(DrawCall{
		Pipeline:   l.pipeline,
		Vertices:   f.vertexBuf,
		Indices:    f.indexBuf,
		Uniforms:   f.uniformBuf,
		Textures:   l.textures,
		IndexCount: len(f.indices),
	})
	if err != nil {
		return fmt.Errorf("draw frame %d: %w", f.slot, err)
	}

	f.fence, err = l.dev.NewFence()
	if err != nil {
		return fmt.Errorf("fence frame %d: %w", f.slot, err)
	}
	return nil
}

// Release waits for in-flight frames and frees every GPU resource, in the
// reverse order they were acquired.
func (l *Layer) Release() {
	for i := len(l.frames) - 1; i >= 0; i-- {
		f := l.frames[i]
		if f.fence != 0 {
			if err := l.dev.WaitFence(f.fence); err != nil {
				gfxLogger.Warn("wait before release failed", "frame", f.slot, "error", err)
			}
			l.dev.DeleteFence(f.fence)
			f.fence = 0
		}
		for _, h := range []*Handle{&f.uniformBuf, &f.indexBuf, &f.vertexBuf} {
			if *h != 0 {
				l.dev.DeleteBuffer(*h)
				*h = 0
			}
		}
	}
	l.frames = nil
	if l.pipeline != 0 {
		l.dev.DeletePipeline(l.pipeline)
		l.pipeline = 0
	}
}
