package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx/app"
)

// Run opens a window for cfg, builds the application with init and runs it
// until the window closes. It must be called from the main goroutine with
// the OS thread locked.
func Run(cfg app.Config, init app.InitFunc) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	win, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	if err := gl.Init(); err != nil {
		win.Destroy()
		return fmt.Errorf("gl init: %w", err)
	}
	dev, err := NewDevice()
	if err != nil {
		win.Destroy()
		return fmt.Errorf("opengl device: %w", err)
	}

	a, err := app.New(win, dev, cfg, init)
	if err != nil {
		return err
	}
	return a.Run()
}
