package gfx

import "errors"

// Errors reported by the graphics layer. Callers wrap them with context, so
// compare with errors.Is.
var (
	// ErrIO reports an asset that could not be read or decoded.
	ErrIO = errors.New("gfx: asset read failed")

	// ErrOutOfMemory reports a failed GPU allocation.
	ErrOutOfMemory = errors.New("gfx: out of GPU memory")

	// ErrDevice reports a failed graphics API call.
	ErrDevice = errors.New("gfx: device error")

	// ErrCapacityExceeded reports geometry that does not fit in a frame's
	// pre-allocated buffers.
	ErrCapacityExceeded = errors.New("gfx: frame buffer capacity exceeded")

	// ErrFrameInUse reports a frame slot acquired again before it was completed.
	ErrFrameInUse = errors.New("gfx: frame acquired before previous use completed")
)
