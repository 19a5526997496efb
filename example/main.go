// Example hosts the UI debugger over a small scene.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Press F12 to show or hide the debugger, then "Select element" and click a
// widget twice to inspect it. Preferences are saved on exit.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/backend/opengl"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

const (
	windowWidth  = 1024
	windowHeight = 720
	windowTitle  = "uidebug example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func settingsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "uidebug", "uidebug.toml")
}

// buildScene creates the host UI the debugger inspects.
func buildScene(stage *scene.Stage) {
	clicks := 0
	menu := scene.NewTable("menu")
	menu.Background = gfx.RGBA(30, 30, 36, 230)
	menu.Padding = scene.SpaceMD
	menu.CellPad = scene.SpaceXS
	menu.SetPosition(40, 40)

	menu.Add(scene.NewLabel("Hello from the host scene")).Span(2)
	menu.Row()
	counter := scene.NewDynamicLabel(func() string { return fmt.Sprintf("clicks: %d", clicks) })
	menu.Add(counter).GrowX()
	menu.Add(scene.NewTextButton("Click me", func() { clicks++ }))
	menu.Row()
	name := scene.NewTextField("player")
	name.Name = "playerName"
	menu.Add(scene.NewLabel("Name"))
	menu.Add(name).GrowX()
	menu.Row()
	hidden := scene.NewLabel("only while clicks are even")
	hidden.VisibilityFunc = func() bool { return clicks%2 == 0 }
	menu.Add(hidden).Span(2)
	stage.AddActor(menu)
	menu.Pack(stage.Style)

	free := scene.NewGroup("free")
	free.SetPosition(600, 400)
	free.SetSize(200, 120)
	badge := scene.NewElement("badge", 40, 40)
	badge.SetPosition(20, 20)
	badge.Touchable = scene.TouchEnabled
	free.AddChild(badge)
	stage.AddActor(free)
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	settings, err := uidebug.LoadSettings(settingsPath())
	if err != nil {
		return err
	}

	stage := scene.NewStage(windowWidth, windowHeight, nil)
	buildScene(stage)
	ui := uidebug.New(renderer, stage, uidebug.WithSettings(settings))
	defer func() {
		if err := settings.Save(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	input := opengl.NewGLFWInputAdapter(window, stage)
	input.Hotkey(glfw.KeyF12, ui.Toggle)
	input.OnResize = ui.Resize

	last := time.Now()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := time.Now()
		delta := float32(now.Sub(last).Seconds())
		last = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := ui.Frame(delta); err != nil {
			return err
		}
		window.SwapBuffers()
	}
	return nil
}
