// Package gfxtest provides a resource-tracking gfx.Device for tests.
package gfxtest

import (
	"fmt"
	"image"
	"sort"

	"github.com/go-theft-auto/gfx"
)

// Kind classifies tracked resources.
type Kind string

const (
	KindBuffer   Kind = "buffer"
	KindTexture  Kind = "texture"
	KindPipeline Kind = "pipeline"
	KindFence    Kind = "fence"
)

type resource struct {
	kind Kind
	size int
	data []byte
}

// Device records every call made through gfx.Device and tracks which
// handles are still alive. It never touches a GPU.
type Device struct {
	// MemoryLimit caps the total bytes of live buffers and textures.
	// Zero means unlimited.
	MemoryLimit int
	// TextureLimit is returned by MaxTextures. Zero means 16.
	TextureLimit int

	// Draws records every successful draw call.
	Draws []gfx.DrawCall
	// Waits counts fence waits.
	Waits int
	// Viewports records every viewport change.
	Viewports [][2]int
	// Clears counts framebuffer clears.
	Clears int

	next      gfx.Handle
	live      map[gfx.Handle]*resource
	used      int
	failNext  map[Kind]error
	drawError error
}

// NewDevice creates an empty tracking device.
func NewDevice() *Device {
	return &Device{
		live:     make(map[gfx.Handle]*resource),
		failNext: make(map[Kind]error),
	}
}

// FailNext makes the next allocation of kind fail with err.
func (d *Device) FailNext(kind Kind, err error) {
	d.failNext[kind] = err
}

// FailDraws makes every Draw call fail with err until reset with nil.
func (d *Device) FailDraws(err error) {
	d.drawError = err
}

// Live returns the number of resources that were created but not deleted.
func (d *Device) Live() int {
	return len(d.live)
}

// LiveByKind returns the number of live resources of one kind.
func (d *Device) LiveByKind(kind Kind) int {
	n := 0
	for _, r := range d.live {
		if r.kind == kind {
			n++
		}
	}
	return n
}

// Leaks describes every live resource, for test failure messages.
func (d *Device) Leaks() []string {
	var out []string
	for h, r := range d.live {
		out = append(out, fmt.Sprintf("%s #%d (%d bytes)", r.kind, h, r.size))
	}
	sort.Strings(out)
	return out
}

// BufferData returns the bytes last written to a live buffer.
func (d *Device) BufferData(h gfx.Handle) []byte {
	if r, ok := d.live[h]; ok && r.kind == KindBuffer {
		return r.data
	}
	return nil
}

func (d *Device) alloc(kind Kind, size int) (gfx.Handle, error) {
	if err, ok := d.failNext[kind]; ok {
		delete(d.failNext, kind)
		return 0, err
	}
	if d.MemoryLimit > 0 && d.used+size > d.MemoryLimit {
		return 0, fmt.Errorf("allocate %d bytes of %s: %w", size, kind, gfx.ErrOutOfMemory)
	}
	d.next++
	d.live[d.next] = &resource{kind: kind, size: size}
	d.used += size
	return d.next, nil
}

func (d *Device) free(kind Kind, h gfx.Handle) {
	r, ok := d.live[h]
	if !ok || r.kind != kind {
		panic(fmt.Sprintf("gfxtest: delete of unknown %s #%d", kind, h))
	}
	d.used -= r.size
	delete(d.live, h)
}

func (d *Device) NewBuffer(kind gfx.BufferKind, size int) (gfx.Handle, error) {
	h, err := d.alloc(KindBuffer, size)
	if err != nil {
		return 0, err
	}
	d.live[h].data = make([]byte, size)
	return h, nil
}

func (d *Device) WriteBuffer(buf gfx.Handle, offset int, data []byte) error {
	r, ok := d.live[buf]
	if !ok || r.kind != KindBuffer {
		return fmt.Errorf("write to unknown buffer #%d: %w", buf, gfx.ErrDevice)
	}
	if offset < 0 || offset+len(data) > r.size {
		return fmt.Errorf("write [%d, %d) past buffer size %d: %w",
			offset, offset+len(data), r.size, gfx.ErrDevice)
	}
	copy(r.data[offset:], data)
	return nil
}

func (d *Device) DeleteBuffer(buf gfx.Handle) { d.free(KindBuffer, buf) }

func (d *Device) NewTexture(img *image.RGBA) (gfx.Handle, error) {
	return d.alloc(KindTexture, len(img.Pix))
}

func (d *Device) DeleteTexture(tex gfx.Handle) { d.free(KindTexture, tex) }

func (d *Device) NewPipeline(maxTextures int) (gfx.Handle, error) {
	if maxTextures > d.MaxTextures() {
		return 0, fmt.Errorf("pipeline for %d textures: %w", maxTextures, gfx.ErrDevice)
	}
	return d.alloc(KindPipeline, 0)
}

func (d *Device) DeletePipeline(p gfx.Handle) { d.free(KindPipeline, p) }

func (d *Device) Draw(call gfx.DrawCall) error {
	if d.drawError != nil {
		return d.drawError
	}
	for _, h := range []gfx.Handle{call.Pipeline, call.Vertices, call.Indices, call.Uniforms} {
		if _, ok := d.live[h]; !ok {
			return fmt.Errorf("draw with dead handle #%d: %w", h, gfx.ErrDevice)
		}
	}
	call.Textures = append([]gfx.Handle(nil), call.Textures...)
	d.Draws = append(d.Draws, call)
	return nil
}

func (d *Device) NewFence() (gfx.Handle, error) { return d.alloc(KindFence, 0) }

func (d *Device) WaitFence(f gfx.Handle) error {
	if r, ok := d.live[f]; !ok || r.kind != KindFence {
		return fmt.Errorf("wait on unknown fence #%d: %w", f, gfx.ErrDevice)
	}
	d.Waits++
	return nil
}

func (d *Device) DeleteFence(f gfx.Handle) { d.free(KindFence, f) }

func (d *Device) Viewport(width, height int) {
	d.Viewports = append(d.Viewports, [2]int{width, height})
}

func (d *Device) Clear(gfx.Color) { d.Clears++ }

func (d *Device) MaxTextures() int {
	if d.TextureLimit > 0 {
		return d.TextureLimit
	}
	return 16
}

var _ gfx.Device = (*Device)(nil)
