/*
Package gfx is a small 2D rendering toolkit for example programs.

# Overview

Everything on screen is rebuilt every frame. Geometry is pushed into a Frame
as Vertex values plus 32-bit indices, and CompleteFrame uploads the frame and
issues exactly one indexed draw call. A Layer owns a ring of frames so the CPU
can fill one frame while the GPU still reads another; each frame is guarded by
a fence that AcquireFrame waits on before reusing its buffers.

Textures are loaded once through an AssetLoader. Every texture gets an index
into a bindless table shared by all vertices, and index 0 is always a 1x1
white texture, so untextured geometry simply uses TexIndex 0.

# Quick Start

	loader, _ := gfx.NewAssetLoader(dev)
	tex, _ := loader.ReadTexture("assets/checker.png")

	layer, _ := gfx.NewLayer(dev, loader.Textures())
	defer layer.Release()

	for running {
	    f, _ := layer.AcquireFrame()
	    f.SetViewProjection(gfx.ScreenProjection(w, h))
	    gfx.Sprite{Width: 64, Height: 64, Position: pos, TexIndex: tex.Index}.Draw(f)
	    layer.CompleteFrame(f)
	}

# Devices

Device abstracts the graphics API. The OpenGL implementation lives in
backend/opengl; gfxtest provides a tracking implementation for tests.

# Errors

Failures wrap one of the sentinel errors (ErrIO, ErrOutOfMemory, ErrDevice,
ErrCapacityExceeded, ErrFrameInUse) so callers can test them with errors.Is.
A vertex whose texture index is outside the table is a programming error and
panics.
*/
package gfx
