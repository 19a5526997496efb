/*
Package uidebug provides an in-process inspector for a live scene tree. It lets
the user pick any widget of the running scene, view and edit its fields while
the application keeps running, and browse the objects reachable from it.

# Overview

The inspector is polling-based. Every frame it re-reads the values it shows,
so changes made by the host between frames appear without any notification.
All work happens on the UI thread inside the two phases of a stage frame:
Stage.Act fires the update hooks after the tree has acted and laid out, and
Stage.Draw fires the draw-end hooks after the tree has been drawn. The
Scheduler attaches to both and drives the inspector's services.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	stage := scene.NewStage(1280, 720, nil)
	buildScene(stage)

	settings, err := uidebug.LoadSettings("uidebug.toml")
	if err != nil {
	    log.Fatal(err)
	}
	dbg := uidebug.New(renderer, stage, uidebug.WithSettings(settings))
	dbg.Show(true)

	// Game loop
	for !window.ShouldClose() {
	    glfw.PollEvents()
	    if err := dbg.Frame(deltaTime); err != nil {
	        log.Print(err)
	    }
	    window.SwapBuffers()
	}

# Selecting an element

The "select" button of the debugger window opens a picking session. The
window hides itself and a translucent surface covers the stage:

	Click            Arm the element under the pointer
	Click again      Confirm the armed element (same element twice in a row)
	Drag             Preview the element under the pointer
	Escape           Cancel the session

The armed element is highlighted on top of everything else. Hosts that need
to hide their own windows during a session register callbacks with
Selection.OnElementSelection.

Once selected, an element stays current until the user picks another one,
clears it, or the element leaves the stage. In the latter case the Invalidator
resets the selection within one frame and flashes the window header.

# Editing fields

Property editors are built from a Registry that maps field types to editor
factories. Lookup tries the exact type, then the first registered type the
field type is assignable to, then the fallback, which displays the value
read-only. Built in:

	string, integers, floats   text field parsed on Enter or focus loss
	bool                       toggle button
	color.RGBA                 text field, "rrggbbaa" hex
	gfx.Vec2                   two float fields
	Enum                       constant name with a "change" list of buttons
	anything else              first line of fmt.Sprint, read-only

Text that fails to parse leaves the field untouched; the editor shakes and
shows the last good value again. Fields whose owner disappears display "N / A"
and accept no input until it comes back.

# Struct tags

The object browser lists struct fields, including unexported ones when the
owner is addressable. Tags adjust the listing:

	Speed float32 `inspect:"const"`  shown read-only and marked constant
	cache []byte  `inspect:"-"`      not listed

Embedded structs are listed as their own categories, innermost first.

# Preferences

Overlay toggles and parameters are read through a Settings store on every
frame. ViperSettings persists them to a TOML file under the "uidebugger"
table:

	elementDebug       outline every element, colored by state
	cellDebug          draw the grid lines of laid out tables
	forceElementDebug  also walk children hidden by themselves
	boundsOpacity      outline alpha, 1/256..1
	boundsThickness    outline width in pixels, 0.1..10

Outline colors: green for visible elements that accept input, yellow for
visible elements that do not, red for elements hidden by themselves or by an
ancestor.
*/
package uidebug
