package app

// Window is the system window the application renders into.
type Window interface {
	// PollEvents processes pending window system events and returns them in
	// the order they arrived.
	PollEvents() []Event
	ShouldClose() bool
	SetShouldClose(bool)
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (width, height int)
	// ContentScale returns the ratio between the current DPI and the
	// platform's default DPI.
	ContentScale() float32
	// ToggleFullscreen switches between windowed and fullscreen mode.
	ToggleFullscreen() error
	// Fullscreen reports whether the window is currently fullscreen.
	Fullscreen() bool
	// SwapBuffers presents the rendered frame.
	SwapBuffers()
	// Destroy releases the window and its graphics context.
	Destroy()
}

// Geometry is a window's position and size in screen coordinates.
type Geometry struct {
	X, Y          int
	Width, Height int
}

// Display is the part of a window the fullscreen toggle drives.
type Display interface {
	WindowGeometry() Geometry
	// MonitorMode returns the video mode of the monitor to go fullscreen on.
	MonitorMode() (width, height, refreshRate int)
	EnterFullscreen(width, height, refreshRate int)
	ExitFullscreen(g Geometry)
}

// FullscreenToggle remembers the windowed geometry while fullscreen so that
// leaving fullscreen puts the window back where it was.
type FullscreenToggle struct {
	saved      Geometry
	fullscreen bool
}

// Fullscreen returns true while in fullscreen mode.
func (t *FullscreenToggle) Fullscreen() bool {
	return t.fullscreen
}

// Toggle switches d between windowed and fullscreen mode.
func (t *FullscreenToggle) Toggle(d Display) {
	if t.fullscreen {
		d.ExitFullscreen(t.saved)
		t.fullscreen = false
		appLogger.Info("left fullscreen", "width", t.saved.Width, "height", t.saved.Height)
		return
	}
	t.saved = d.WindowGeometry()
	w, h, rate := d.MonitorMode()
	d.EnterFullscreen(w, h, rate)
	t.fullscreen = true
	appLogger.Info("entered fullscreen", "width", w, "height", h, "refreshRate", rate)
}
