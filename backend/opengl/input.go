package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gfx/app"
)

// glfwKeyToKey maps GLFW keys to app keys.
func glfwKeyToKey(key glfw.Key) app.Key {
	switch key {
	case glfw.KeyEscape:
		return app.KeyEscape
	case glfw.KeySpace:
		return app.KeySpace
	case glfw.KeyEnter:
		return app.KeyEnter
	case glfw.KeyTab:
		return app.KeyTab
	case glfw.KeyBackspace:
		return app.KeyBackspace
	case glfw.KeyLeft:
		return app.KeyLeft
	case glfw.KeyRight:
		return app.KeyRight
	case glfw.KeyUp:
		return app.KeyUp
	case glfw.KeyDown:
		return app.KeyDown
	case glfw.KeyF11:
		return app.KeyF11
	default:
		return app.KeyUnknown
	}
}

// glfwMouseButtonToButton maps GLFW mouse buttons to app buttons.
func glfwMouseButtonToButton(button glfw.MouseButton) (app.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return app.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return app.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return app.MouseButtonMiddle, true
	default:
		return 0, false
	}
}

func glfwAction(action glfw.Action) app.Action {
	switch action {
	case glfw.Press:
		return app.Press
	case glfw.Repeat:
		return app.Repeat
	default:
		return app.Release
	}
}

func glfwMods(mods glfw.ModifierKey) app.Mod {
	var m app.Mod
	if mods&glfw.ModShift != 0 {
		m |= app.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= app.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= app.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= app.ModSuper
	}
	return m
}
