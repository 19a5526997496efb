package uidebug

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Renderer is the interface for rendering draw data.
type Renderer interface {
	Render(dl *gfx.DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// UIDebugger wires the inspector into a host stage: the scheduler driven by
// the stage hooks, the selection, the bounds overlay and the debugger window.
type UIDebugger struct {
	renderer Renderer
	stage    *scene.Stage

	settings Settings
	bundle   Bundle
	registry *Registry

	prefs     *Prefs
	scheduler *Scheduler
	selection *Selection
	debugger  *Debugger
}

// Option configures a UIDebugger.
type Option func(*UIDebugger)

// WithSettings sets the preference store. The default is in-memory.
func WithSettings(s Settings) Option {
	return func(u *UIDebugger) { u.settings = s }
}

// WithBundle sets the localized text source.
func WithBundle(b Bundle) Option {
	return func(u *UIDebugger) { u.bundle = b }
}

// WithRegistry sets the editor registry used by the object browser.
func WithRegistry(r *Registry) Option {
	return func(u *UIDebugger) { u.registry = r }
}

// New attaches a debugger to stage. The debugger window starts hidden.
func New(renderer Renderer, stage *scene.Stage, opts ...Option) *UIDebugger {
	u := &UIDebugger{renderer: renderer, stage: stage}
	for _, opt := range opts {
		opt(u)
	}
	if u.bundle == nil {
		u.bundle = NewCatalogBundle(language.English)
	}
	if u.registry == nil {
		u.registry = NewRegistry()
	}
	u.prefs = NewPrefs(u.settings)
	stage.Style.Font.TextureID = renderer.FontTextureID()

	u.scheduler = NewScheduler()
	u.scheduler.Attach(stage)
	u.scheduler.Register(NewBoundsOverlay(stage, u.prefs))
	u.selection = NewSelection(stage, u.scheduler, u.bundle)
	u.debugger = NewDebugger(stage, u.selection, u.prefs, u.bundle, u.registry)

	w := u.debugger.Window
	w.Visible = false
	stage.AddActor(w)
	w.Pack(stage.Style)
	return u
}

// Frame advances the stage by delta seconds, draws it with the overlays and
// hands the result to the renderer.
func (u *UIDebugger) Frame(delta float32) error {
	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)

	u.stage.Act(delta)
	u.stage.Draw(dl)
	dl.Finalize()
	if err := u.renderer.Render(dl); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return nil
}

// Resize notifies the stage and renderer of a display size change.
func (u *UIDebugger) Resize(width, height int) {
	u.stage.Resize(float32(width), float32(height))
	u.debugger.Window.Constrain(gfx.Vec2{X: float32(width), Y: float32(height)})
	u.renderer.Resize(width, height)
}

// Show makes the debugger window visible or hides it.
func (u *UIDebugger) Show(visible bool) {
	w := u.debugger.Window
	w.Visible = visible
	if visible {
		// Keep it above whatever the host added since.
		w.Remove()
		u.stage.AddActor(w)
	}
}

// Toggle flips the window visibility.
func (u *UIDebugger) Toggle() { u.Show(!u.debugger.Window.Visible) }

// Visible reports whether the debugger window is shown.
func (u *UIDebugger) Visible() bool { return u.debugger.Window.Visible }

func (u *UIDebugger) Stage() *scene.Stage   { return u.stage }
func (u *UIDebugger) Prefs() *Prefs         { return u.prefs }
func (u *UIDebugger) Scheduler() *Scheduler { return u.scheduler }
func (u *UIDebugger) Selection() *Selection { return u.selection }
func (u *UIDebugger) Debugger() *Debugger   { return u.debugger }
func (u *UIDebugger) Registry() *Registry   { return u.registry }
func (u *UIDebugger) Bundle() Bundle        { return u.bundle }
func (u *UIDebugger) Settings() Settings    { return u.prefs.Settings() }
