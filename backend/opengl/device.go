// Package opengl implements gfx.Device and app.Window on OpenGL 4.3 core and
// GLFW 3.3.
//
// Vertices are pulled by gl_VertexID from a shader storage buffer at binding
// 0, the view projection comes from a uniform buffer at binding 1, and the
// fragment shader selects from an array of samplers by each vertex's texture
// index, walking the array with a uniform loop counter. Fences created with glFenceSync guard each frame's buffers.
package opengl

import (
	"fmt"
	"image"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/backend/opengl/shaders"
)

// maxBindlessTextures caps the sampler array regardless of what the driver
// reports.
const maxBindlessTextures = 32

// fenceTimeout bounds a single glClientWaitSync call.
const fenceTimeout = time.Second

// maxFenceTimeouts is how many timed out waits in a row are tolerated before
// the GPU is considered lost.
const maxFenceTimeouts = 5

type buffer struct {
	id     uint32
	target uint32
	size   int
}

type pipeline struct {
	program     uint32
	maxTextures int
}

// Device is an OpenGL graphics context. It must be created and used on the
// thread that owns the current GL context.
type Device struct {
	vao         uint32
	maxTextures int

	next      gfx.Handle
	buffers   map[gfx.Handle]buffer
	textures  map[gfx.Handle]uint32
	pipelines map[gfx.Handle]pipeline
	fences    map[gfx.Handle]uintptr
}

// NewDevice wraps the current GL context. gl.Init must have been called.
func NewDevice() (*Device, error) {
	d := &Device{
		buffers:   make(map[gfx.Handle]buffer),
		textures:  make(map[gfx.Handle]uint32),
		pipelines: make(map[gfx.Handle]pipeline),
		fences:    make(map[gfx.Handle]uintptr),
	}

	var units int32
	gl.GetIntegerv(gl.MAX_TEXTURE_IMAGE_UNITS, &units)
	d.maxTextures = min(int(units), maxBindlessTextures)

	// Vertex pulling needs no attributes, but core profile still requires a
	// bound VAO to draw. It also holds the element array binding.
	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)

	if err := checkError("create device"); err != nil {
		d.Release()
		return nil, err
	}

	backendLogger.Info("opengl device ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"maxTextures", d.maxTextures)
	return d, nil
}

func (d *Device) handle() gfx.Handle {
	d.next++
	return d.next
}

func bufferTarget(kind gfx.BufferKind) uint32 {
	switch kind {
	case gfx.BufferIndex:
		return gl.ELEMENT_ARRAY_BUFFER
	case gfx.BufferUniform:
		return gl.UNIFORM_BUFFER
	default:
		return gl.SHADER_STORAGE_BUFFER
	}
}

func (d *Device) NewBuffer(kind gfx.BufferKind, size int) (gfx.Handle, error) {
	b := buffer{target: bufferTarget(kind), size: size}
	gl.GenBuffers(1, &b.id)
	gl.BindBuffer(b.target, b.id)
	gl.BufferData(b.target, size, nil, gl.DYNAMIC_DRAW)
	if err := checkError(fmt.Sprintf("allocate %d byte %s buffer", size, kind)); err != nil {
		gl.DeleteBuffers(1, &b.id)
		return 0, err
	}
	h := d.handle()
	d.buffers[h] = b
	return h, nil
}

func (d *Device) WriteBuffer(h gfx.Handle, offset int, data []byte) error {
	b, ok := d.buffers[h]
	if !ok {
		return fmt.Errorf("write to unknown buffer #%d: %w", h, gfx.ErrDevice)
	}
	if offset < 0 || offset+len(data) > b.size {
		return fmt.Errorf("write [%d, %d) past buffer size %d: %w",
			offset, offset+len(data), b.size, gfx.ErrDevice)
	}
	if len(data) == 0 {
		return nil
	}
	gl.BindBuffer(b.target, b.id)
	gl.BufferSubData(b.target, offset, len(data), gl.Ptr(&data[0]))
	return checkError("write buffer")
}

func (d *Device) DeleteBuffer(h gfx.Handle) {
	if b, ok := d.buffers[h]; ok {
		gl.DeleteBuffers(1, &b.id)
		delete(d.buffers, h)
	}
}

// NewTexture uploads a tightly packed RGBA image. Row 0 of the image is
// sampled at v = 0.
func (d *Device) NewTexture(img *image.RGBA) (gfx.Handle, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 || img.Stride != 4*w {
		return 0, fmt.Errorf("texture %dx%d with stride %d is not tightly packed: %w",
			w, h, img.Stride, gfx.ErrDevice)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if err := checkError(fmt.Sprintf("upload %dx%d texture", w, h)); err != nil {
		gl.DeleteTextures(1, &tex)
		return 0, err
	}

	handle := d.handle()
	d.textures[handle] = tex
	return handle, nil
}

func (d *Device) DeleteTexture(h gfx.Handle) {
	if tex, ok := d.textures[h]; ok {
		gl.DeleteTextures(1, &tex)
		delete(d.textures, h)
	}
}

// NewPipeline compiles the vertex pulling program with a sampler array of
// maxTextures entries bound to texture units 0..maxTextures-1.
func (d *Device) NewPipeline(maxTextures int) (gfx.Handle, error) {
	if maxTextures < 1 || maxTextures > d.maxTextures {
		return 0, fmt.Errorf("pipeline for %d textures, limit is %d: %w",
			maxTextures, d.maxTextures, gfx.ErrDevice)
	}

	program, err := createProgram(
		shaders.Vertex,
		shaders.FragmentFor(maxTextures),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", gfx.ErrDevice, err)
	}

	units := make([]int32, maxTextures)
	for i := range units {
		units[i] = int32(i)
	}
	gl.UseProgram(program)
	loc := gl.GetUniformLocation(program, gl.Str("textures\x00"))
	gl.Uniform1iv(loc, int32(len(units)), &units[0])
	gl.UseProgram(0)
	if err := checkError("create pipeline"); err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}

	h := d.handle()
	d.pipelines[h] = pipeline{program: program, maxTextures: maxTextures}
	return h, nil
}

func (d *Device) DeletePipeline(h gfx.Handle) {
	if p, ok := d.pipelines[h]; ok {
		gl.DeleteProgram(p.program)
		delete(d.pipelines, h)
	}
}

func (d *Device) Draw(call gfx.DrawCall) error {
	p, ok := d.pipelines[call.Pipeline]
	if !ok {
		return fmt.Errorf("draw with unknown pipeline #%d: %w", call.Pipeline, gfx.ErrDevice)
	}
	vertices, ok1 := d.buffers[call.Vertices]
	indices, ok2 := d.buffers[call.Indices]
	uniforms, ok3 := d.buffers[call.Uniforms]
	if !ok1 || !ok2 || !ok3 {
		return fmt.Errorf("draw with unknown buffer: %w", gfx.ErrDevice)
	}
	if len(call.Textures) > p.maxTextures {
		return fmt.Errorf("draw with %d textures on a pipeline for %d: %w",
			len(call.Textures), p.maxTextures, gfx.ErrDevice)
	}

	gl.UseProgram(p.program)
	gl.BindVertexArray(d.vao)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, vertices.id)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, 1, uniforms.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, indices.id)
	for i, h := range call.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, d.textures[h])
	}

	gl.DrawElements(gl.TRIANGLES, int32(call.IndexCount), gl.UNSIGNED_INT, nil)
	return checkError("draw")
}

func (d *Device) NewFence() (gfx.Handle, error) {
	sync := gl.FenceSync(gl.SYNC_GPU_COMMANDS_COMPLETE, 0)
	if sync == 0 {
		if err := checkError("create fence"); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("create fence: %w", gfx.ErrDevice)
	}
	h := d.handle()
	d.fences[h] = sync
	return h, nil
}

// WaitFence blocks until the GPU signals the fence. Each wait is bounded; a
// fence that stays unsignaled for several waits in a row is reported as a
// device error.
func (d *Device) WaitFence(h gfx.Handle) error {
	sync, ok := d.fences[h]
	if !ok {
		return fmt.Errorf("wait on unknown fence #%d: %w", h, gfx.ErrDevice)
	}
	for i := 0; i < maxFenceTimeouts; i++ {
		switch gl.ClientWaitSync(sync, gl.SYNC_FLUSH_COMMANDS_BIT, uint64(fenceTimeout.Nanoseconds())) {
		case gl.ALREADY_SIGNALED, gl.CONDITION_SATISFIED:
			return nil
		case gl.WAIT_FAILED:
			return checkError("wait fence")
		}
		backendLogger.Warn("fence wait timed out", "fence", h, "attempt", i+1)
	}
	return fmt.Errorf("fence #%d not signaled after %v: %w",
		h, maxFenceTimeouts*fenceTimeout, gfx.ErrDevice)
}

func (d *Device) DeleteFence(h gfx.Handle) {
	if sync, ok := d.fences[h]; ok {
		gl.DeleteSync(sync)
		delete(d.fences, h)
	}
}

func (d *Device) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *Device) Clear(c gfx.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) MaxTextures() int {
	return d.maxTextures
}

// Release deletes the VAO along with any resource that was never deleted.
// Leaked resources are logged.
func (d *Device) Release() {
	leaked := len(d.buffers) + len(d.textures) + len(d.pipelines) + len(d.fences)
	if leaked > 0 {
		backendLogger.Warn("releasing leaked gpu resources",
			"buffers", len(d.buffers),
			"textures", len(d.textures),
			"pipelines", len(d.pipelines),
			"fences", len(d.fences))
	}
	for h := range d.fences {
		d.DeleteFence(h)
	}
	for h := range d.pipelines {
		d.DeletePipeline(h)
	}
	for h := range d.textures {
		d.DeleteTexture(h)
	}
	for h := range d.buffers {
		d.DeleteBuffer(h)
	}
	if d.vao != 0 {
		gl.BindVertexArray(0)
		gl.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
}

var _ gfx.Device = (*Device)(nil)

// checkError drains the GL error queue. GL_OUT_OF_MEMORY maps to
// gfx.ErrOutOfMemory, anything else to gfx.ErrDevice.
func checkError(op string) error {
	var first uint32
	for code := gl.GetError(); code != gl.NO_ERROR; code = gl.GetError() {
		if first == 0 {
			first = code
		}
	}
	switch first {
	case 0:
		return nil
	case gl.OUT_OF_MEMORY:
		return fmt.Errorf("%s: %s: %w", op, errorName(first), gfx.ErrOutOfMemory)
	default:
		return fmt.Errorf("%s: %s: %w", op, errorName(first), gfx.ErrDevice)
	}
}

func errorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	case gl.STACK_OVERFLOW:
		return "GL_STACK_OVERFLOW"
	case gl.STACK_UNDERFLOW:
		return "GL_STACK_UNDERFLOW"
	default:
		return fmt.Sprintf("GL error 0x%x", code)
	}
}
