package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// GLFWInputAdapter forwards GLFW window events to a scene stage.
type GLFWInputAdapter struct {
	window  *glfw.Window
	stage   *scene.Stage
	pressed int
	hotkeys map[glfw.Key]func()

	// OnResize, when set, receives window size changes.
	OnResize func(width, height int)
}

// NewGLFWInputAdapter installs callbacks on window that drive stage and makes
// the window clipboard available to text fields.
func NewGLFWInputAdapter(window *glfw.Window, stage *scene.Stage) *GLFWInputAdapter {
	scene.SetClipboard(GLFWClipboard{Window: window})
	a := &GLFWInputAdapter{
		window:  window,
		stage:   stage,
		hotkeys: make(map[glfw.Key]func()),
	}
	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)
	window.SetSizeCallback(a.sizeCallback)
	return a
}

// Hotkey runs fn when key is pressed, before the stage sees it.
func (a *GLFWInputAdapter) Hotkey(key glfw.Key, fn func()) {
	a.hotkeys[key] = fn
}

func (a *GLFWInputAdapter) cursor() gfx.Vec2 {
	x, y := a.window.GetCursorPos()
	return gfx.Vec2{X: float32(x), Y: float32(y)}
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if fn, ok := a.hotkeys[key]; ok && action == glfw.Press {
		fn()
		return
	}
	if mods&(glfw.ModControl|glfw.ModSuper) != 0 {
		switch key {
		case glfw.KeyC:
			a.stage.KeyDown(scene.KeyCopy)
		case glfw.KeyV:
			a.stage.KeyDown(scene.KeyPaste)
		}
		return
	}
	if k := glfwKeyToSceneKey(key); k != scene.KeyUnknown {
		a.stage.KeyDown(k)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.stage.KeyTyped(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	p := a.cursor()
	switch action {
	case glfw.Press:
		a.pressed++
		a.stage.PointerDown(p, b)
	case glfw.Release:
		if a.pressed > 0 {
			a.pressed--
		}
		a.stage.PointerUp(p, b)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, x, y float64) {
	p := gfx.Vec2{X: float32(x), Y: float32(y)}
	if a.pressed > 0 {
		a.stage.PointerDragged(p)
	} else {
		a.stage.PointerMoved(p)
	}
}

func (a *GLFWInputAdapter) sizeCallback(_ *glfw.Window, width, height int) {
	logger.Debug().Int("width", width).Int("height", height).Msg("window resized")
	if a.OnResize != nil {
		a.OnResize(width, height)
	}
}

// glfwKeyToSceneKey maps the editing keys the scene widgets understand.
func glfwKeyToSceneKey(key glfw.Key) scene.Key {
	switch key {
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return scene.KeyEnter
	case glfw.KeyEscape:
		return scene.KeyEscape
	case glfw.KeyBackspace:
		return scene.KeyBackspace
	case glfw.KeyDelete:
		return scene.KeyDelete
	case glfw.KeyLeft:
		return scene.KeyLeft
	case glfw.KeyRight:
		return scene.KeyRight
	case glfw.KeyHome:
		return scene.KeyHome
	case glfw.KeyEnd:
		return scene.KeyEnd
	case glfw.KeyTab:
		return scene.KeyTab
	default:
		return scene.KeyUnknown
	}
}

// glfwMouseButton maps GLFW buttons to stage button indices.
func glfwMouseButton(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	default:
		return -1
	}
}

// GLFWClipboard implements scene.Clipboard with the window's clipboard.
type GLFWClipboard struct {
	Window *glfw.Window
}

// GetText implements scene.Clipboard.
func (c GLFWClipboard) GetText() string { return c.Window.GetClipboardString() }

// SetText implements scene.Clipboard.
func (c GLFWClipboard) SetText(text string) { c.Window.SetClipboardString(text) }
