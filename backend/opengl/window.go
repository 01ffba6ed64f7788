package opengl

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/app"
)

// backendLogger is the logger for the OpenGL backend.
var backendLogger = gfx.Logger().With("component", "opengl")

// Window is a GLFW window with a current OpenGL 4.3 core context. Events
// delivered by GLFW callbacks are queued and handed out by PollEvents.
type Window struct {
	win    *glfw.Window
	events []app.Event
	toggle app.FullscreenToggle
}

// NewWindow creates a window and makes its context current. glfw.Init must
// have been called.
func NewWindow(cfg app.Config) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &Window{win: win}
	win.SetKeyCallback(w.keyCallback)
	win.SetMouseButtonCallback(w.mouseButtonCallback)
	win.SetCursorPosCallback(w.cursorPosCallback)
	win.SetFramebufferSizeCallback(w.framebufferSizeCallback)
	win.SetCloseCallback(w.closeCallback)
	return w, nil
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == app.KeyUnknown {
		return
	}
	w.events = append(w.events, app.KeyEvent{Key: k, Action: glfwAction(action), Mods: glfwMods(mods)})
}

func (w *Window) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b, ok := glfwMouseButtonToButton(button)
	if !ok {
		return
	}
	w.events = append(w.events, app.MouseButtonEvent{Button: b, Action: glfwAction(action), Mods: glfwMods(mods)})
}

func (w *Window) cursorPosCallback(_ *glfw.Window, x, y float64) {
	w.events = append(w.events, app.CursorPosEvent{X: x, Y: y})
}

func (w *Window) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	w.events = append(w.events, app.FramebufferSizeEvent{Width: width, Height: height})
}

func (w *Window) closeCallback(_ *glfw.Window) {
	w.events = append(w.events, app.CloseEvent{})
}

func (w *Window) PollEvents() []app.Event {
	glfw.PollEvents()
	events := w.events
	w.events = nil
	return events
}

func (w *Window) ShouldClose() bool { return w.win.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }
func (w *Window) FramebufferSize() (int, int) { return w.win.GetFramebufferSize() }
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

func (w *Window) ContentScale() float32 {
	x, _ := w.win.GetContentScale()
	return x
}

func (w *Window) ToggleFullscreen() error {
	w.toggle.Toggle(w)
	return nil
}

func (w *Window) Fullscreen() bool { return w.toggle.Fullscreen() }

func (w *Window) Destroy() {
	w.win.Destroy()
}

func (w *Window) WindowGeometry() app.Geometry {
	x, y := w.win.GetPos()
	width, height := w.win.GetSize()
	return app.Geometry{X: x, Y: y, Width: width, Height: height}
}

func (w *Window) MonitorMode() (width, height, refreshRate int) {
	mode := glfw.GetPrimaryMonitor().GetVideoMode()
	return mode.Width, mode.Height, mode.RefreshRate
}

func (w *Window) EnterFullscreen(width, height, refreshRate int) {
	w.win.SetMonitor(glfw.GetPrimaryMonitor(), 0, 0, width, height, refreshRate)
}

func (w *Window) ExitFullscreen(g app.Geometry) {
	w.win.SetMonitor(nil, g.X, g.Y, g.Width, g.Height, glfw.DontCare)
}

var (
	_ app.Window  = (*Window)(nil)
	_ app.Display = (*Window)(nil)
)
