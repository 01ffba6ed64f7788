package app

import (
	"fmt"

	"github.com/go-theft-auto/gfx"
)

// appLogger is the logger for the application scaffold.
var appLogger = gfx.Logger().With("component", "app")

// State is the example-specific part of an application.
type State interface {
	// HandleEvent is called for every window event after the scaffold has
	// processed it.
	HandleEvent(e Event, w Window) error
	// Resize is called with the new framebuffer size before the first frame
	// and after every resize.
	Resize(width, height int) error
	// DrawFrame fills the frame with this frame's geometry.
	DrawFrame(f *gfx.Frame) error
}

// InitContext is handed to an InitFunc while the application is built.
type InitContext struct {
	Window Window
	Device gfx.Device
	Loader *gfx.AssetLoader
	Limit  *gfx.FrameRateLimit
	Config Config
}

// InitFunc builds an example's State. It runs after the asset loader is
// ready and before the renderer is created, so every texture it loads ends
// up in the renderer's bindless table.
type InitFunc func(ctx *InitContext) (State, error)

// releaser is implemented by devices that own resources of their own.
type releaser interface {
	Release()
}

// Application owns the window, the graphics context and the frame loop.
type Application struct {
	cfg    Config
	win    Window
	dev    gfx.Device
	loader *gfx.AssetLoader
	layer  *gfx.Layer
	limit  *gfx.FrameRateLimit
	state  State

	cleanup     []namedRelease
	paused      bool
	needsResize bool
	frames      uint64
}

type namedRelease struct {
	name    string
	release func()
}

// New builds an application around an open window and its device. The
// application takes ownership of both: on error everything acquired so far,
// including the window, is released.
func New(win Window, dev gfx.Device, cfg Config, init InitFunc) (a *Application, err error) {
	a = &Application{
		cfg:         cfg,
		win:         win,
		dev:         dev,
		limit:       gfx.NewFrameRateLimit(cfg.TargetFPS, 30),
		needsResize: true,
	}
	a.acquired("window", win.Destroy)
	if r, ok := dev.(releaser); ok {
		a.acquired("device", r.Release)
	}
	defer func() {
		if err != nil {
			a.teardown()
			a = nil
		}
	}()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.SlogLevel()
	gfx.SetLogLevel(level)

	a.loader, err = gfx.NewAssetLoader(dev)
	if err != nil {
		return nil, fmt.Errorf("asset loader: %w", err)
	}
	a.acquired("textures", a.loader.Release)

	a.state, err = init(&InitContext{
		Window: win,
		Device: dev,
		Loader: a.loader,
		Limit:  a.limit,
		Config: cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}

	a.layer, err = gfx.NewLayer(dev, a.loader.Textures(),
		gfx.WithFramesInFlight(cfg.FramesInFlight),
		gfx.WithVertexCapacity(cfg.VertexCapacity),
		gfx.WithIndexCapacity(cfg.IndexCapacity),
	)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	a.acquired("layer", a.layer.Release)

	appLogger.Info("application ready", "title", cfg.Title, "textures", a.loader.NumTextures())
	return a, nil
}

// acquired registers a resource's release function. Resources are released
// in reverse registration order.
func (a *Application) acquired(name string, release func()) {
	a.cleanup = append(a.cleanup, namedRelease{name: name, release: release})
}

func (a *Application) teardown() {
	for i := len(a.cleanup) - 1; i >= 0; i-- {
		appLogger.Debug("release", "resource", a.cleanup[i].name)
		a.cleanup[i].release()
	}
	a.cleanup = nil
}

// Run runs the frame loop until the window is closed, then releases every
// resource. The application cannot be reused afterwards.
func (a *Application) Run() error {
	defer a.teardown()

	for !a.win.ShouldClose() {
		a.limit.StartFrame()

		for _, e := range a.win.PollEvents() {
			if err := a.handleEvent(e); err != nil {
				return fmt.Errorf("handle %T: %w", e, err)
			}
		}

		if a.needsResize && !a.paused {
			if err := a.resize(); err != nil {
				return err
			}
		}

		if !a.paused {
			if err := a.composeFrame(); err != nil {
				return fmt.Errorf("frame %d: %w", a.frames, err)
			}
		}

		a.limit.SleepToLimit()
	}

	appLogger.Info("main loop exited", "frames", a.frames, "avgFrameTime", a.limit.AvgFrameTime())
	return nil
}

// Frames returns the number of frames presented so far.
func (a *Application) Frames() uint64 {
	return a.frames
}

func (a *Application) handleEvent(e Event) error {
	switch e := e.(type) {
	case CloseEvent:
		a.win.SetShouldClose(true)
	case KeyEvent:
		switch {
		case e.Pressed(KeyEscape, 0):
			a.win.SetShouldClose(true)
		case e.Pressed(KeySpace, ModControl):
			if err := a.win.ToggleFullscreen(); err != nil {
				return fmt.Errorf("toggle fullscreen: %w", err)
			}
		}
	case FramebufferSizeEvent:
		a.paused = e.Width == 0 || e.Height == 0
		a.needsResize = true
	}
	return a.state.HandleEvent(e, a.win)
}

func (a *Application) resize() error {
	w, h := a.win.FramebufferSize()
	a.dev.Viewport(w, h)
	if err := a.state.Resize(w, h); err != nil {
		return fmt.Errorf("resize to %dx%d: %w", w, h, err)
	}
	a.needsResize = false
	appLogger.Debug("resized", "width", w, "height", h)
	return nil
}

func (a *Application) composeFrame() error {
	c := a.cfg.ClearColor
	a.dev.Clear(gfx.Color{R: c[0], G: c[1], B: c[2], A: c[3]})

	f, err := a.layer.AcquireFrame()
	if err != nil {
		return err
	}
	if err := a.state.DrawFrame(f); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := a.layer.CompleteFrame(f); err != nil {
		return err
	}
	a.win.SwapBuffers()
	a.frames++
	return nil
}
