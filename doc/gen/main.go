// Command gen opens the debugger over a sample scene in a hidden window,
// captures each page and overlay mode, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/backend/opengl"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

const (
	shotWidth  = 800
	shotHeight = 600
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is a single capture. setup runs on a fresh debugger with the
// sample element already selected.
type screenshot struct {
	name   string
	setup  func(ui *uidebug.UIDebugger)
	frames int // frames to render before capture (0 = 2)
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(shotWidth, shotHeight, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(shotWidth, shotHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg\n", s.name)
	}
	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

// sampleScene returns a stage with a small menu and the button to select.
func sampleScene() (*scene.Stage, scene.Node) {
	stage := scene.NewStage(shotWidth, shotHeight, nil)
	menu := scene.NewTable("menu")
	menu.Background = gfx.RGBA(40, 40, 48, 255)
	menu.Padding = scene.SpaceMD
	menu.CellPad = scene.SpaceXS
	menu.SetPosition(420, 40)
	menu.Add(scene.NewLabel("Options")).Span(2)
	menu.Row()
	menu.Add(scene.NewLabel("Volume"))
	menu.Add(scene.NewTextField("80")).GrowX()
	menu.Row()
	apply := scene.NewTextButton("Apply", nil)
	menu.Add(apply)
	menu.Add(scene.NewTextButton("Cancel", nil))
	stage.AddActor(menu)
	menu.Pack(stage.Style)
	return stage, apply
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	// Fresh debugger per screenshot so state does not leak between captures.
	stage, target := sampleScene()
	ui := uidebug.New(renderer, stage)
	ui.Show(true)
	ui.Selection().SetCurrent(target)
	if s.setup != nil {
		s.setup(ui)
	}

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for range frames {
		gl.Viewport(0, 0, shotWidth, shotHeight)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		if err := ui.Frame(1.0 / 60.0); err != nil {
			return err
		}
	}

	pixels := make([]byte, shotWidth*shotHeight*4)
	gl.ReadPixels(0, 0, shotWidth, shotHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := shotWidth * 4
	tmp := make([]byte, rowLen)
	for y := range shotHeight / 2 {
		top := y * rowLen
		bot := (shotHeight - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, shotWidth, shotHeight))
	copy(img.Pix, pixels)

	f, err := os.Create(filepath.Join(outDir, s.name+".jpg"))
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func page(p int) func(ui *uidebug.UIDebugger) {
	return func(ui *uidebug.UIDebugger) { ui.Debugger().SetPage(p) }
}

func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "page_preferences", setup: page(uidebug.PagePreferences)},
		{name: "page_preview", setup: page(uidebug.PagePreview)},
		{name: "page_properties", setup: page(uidebug.PageProperties)},
		{
			name: "page_other",
			setup: func(ui *uidebug.UIDebugger) {
				ui.Debugger().SetPage(uidebug.PageOther)
				ui.Debugger().Browser.ResetToSelection()
			},
		},
		{name: "page_hierarchy", setup: page(uidebug.PageHierarchy)},
		{
			name: "overlay_bounds",
			setup: func(ui *uidebug.UIDebugger) {
				ui.Prefs().SetElementDebug(true)
				ui.Prefs().SetCellDebug(true)
				ui.Show(false)
			},
		},
		{
			name: "selecting",
			setup: func(ui *uidebug.UIDebugger) {
				ui.Selection().Begin()
				ui.Stage().PointerDown(gfx.Vec2{X: 440, Y: 90}, 0)
				ui.Stage().PointerUp(gfx.Vec2{X: 440, Y: 90}, 0)
			},
		},
	}
}
