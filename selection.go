package uidebug

import (
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Selection owns the current element and the modal picking session that
// changes it.
//
// While a session is open a full-stage capture surface takes every pointer
// event. Pointer-downs are hit-tested against the tree beneath the surface and
// fed to a Picker; dragging previews the candidate. Escape cancels.
type Selection struct {
	stage  *scene.Stage
	sched  *Scheduler
	bundle Bundle

	picker  Picker
	current scene.Node

	surface     *scene.Table
	highlighter *Highlighter

	onBegin  []func()
	onEnd    []func()
	onChange []func(scene.Node)
	onReset  []func()
}

// NewSelection creates the selection for stage and registers its
// Invalidator with sched.
func NewSelection(stage *scene.Stage, sched *Scheduler, bundle Bundle) *Selection {
	s := &Selection{stage: stage, sched: sched, bundle: bundle}
	s.highlighter = &Highlighter{sel: s}
	s.surface = s.buildSurface()
	sched.Register(&Invalidator{sel: s})
	return s
}

func (s *Selection) text(key string) string {
	if s.bundle == nil {
		return englishMessages[key]
	}
	return s.bundle.Get(key)
}

func (s *Selection) buildSurface() *scene.Table {
	t := scene.NewTable("selection")
	t.Background = gfx.RGBA(0, 0, 0, 0x40)
	t.Add(scene.NewLabel(s.text(BundleSelectTitle)))
	t.Row()
	t.Add(scene.NewDynamicLabel(func() string {
		if n := s.picker.LastPicked(); n != nil {
			return Describe(n, s.stage.Root) + " - " + s.text(BundleClickConfirm)
		}
		return ""
	}))
	t.Update(func() {
		t.SetSize(s.stage.Root.Width, s.stage.Root.Height)
	})
	t.AddListener(scene.ListenerFuncs{
		Down: func(e *scene.InputEvent) bool {
			if s.picker.Down(s.elementAt(e.StagePos)) {
				s.commit()
			}
			return true
		},
		Dragged: func(e *scene.InputEvent) {
			s.picker.Drag(s.elementAt(e.StagePos))
		},
		Key: func(k scene.Key) bool {
			if k != scene.KeyEscape {
				return false
			}
			s.Cancel()
			return true
		},
	})
	return t
}

// OnElementSelection registers callbacks run when a session opens and closes.
// Hosts use them to hide windows that would obscure the scene.
func (s *Selection) OnElementSelection(begin, end func()) {
	if begin != nil {
		s.onBegin = append(s.onBegin, begin)
	}
	if end != nil {
		s.onEnd = append(s.onEnd, end)
	}
}

// OnChange registers fn to run whenever the current element changes.
func (s *Selection) OnChange(fn func(scene.Node)) {
	s.onChange = append(s.onChange, fn)
}

// OnReset registers fn to run when the invalidator drops a detached element.
func (s *Selection) OnReset(fn func()) {
	s.onReset = append(s.onReset, fn)
}

// Begin opens a picking session. It is a no-op while one is open.
func (s *Selection) Begin() {
	if s.picker.Active() {
		return
	}
	for _, fn := range s.onBegin {
		fn()
	}
	s.picker.Begin()
	s.surface.SetSize(s.stage.Root.Width, s.stage.Root.Height)
	s.stage.AddActor(s.surface)
	s.stage.SetCapture(s.surface)
	s.sched.Register(s.highlighter)
	logger.Debug().Msg("element selection started")
}

// Cancel closes the session without changing the current element.
func (s *Selection) Cancel() {
	if !s.picker.Active() {
		return
	}
	s.picker.Cancel()
	s.finish()
	logger.Debug().Msg("element selection cancelled")
}

func (s *Selection) commit() {
	n := s.picker.Committed()
	s.picker.Finish()
	s.finish()
	logger.Debug().Str("element", Describe(n, s.stage.Root)).Msg("element selected")
	s.SetCurrent(n)
}

func (s *Selection) finish() {
	Unregister[*Highlighter](s.sched)
	for _, fn := range s.onEnd {
		fn()
	}
	s.surface.Remove()
	s.stage.ReleaseCapture(s.surface)
}

// elementAt hit-tests the tree at p while the surface is out of the way.
func (s *Selection) elementAt(p gfx.Vec2) scene.Node {
	prev := s.surface.Touchable
	s.surface.Touchable = scene.TouchDisabled
	defer func() { s.surface.Touchable = prev }()
	return s.stage.Hit(p)
}

// Active reports whether a picking session is open.
func (s *Selection) Active() bool { return s.picker.Active() }

// Picker exposes the session state.
func (s *Selection) Picker() *Picker { return &s.picker }

// LastPicked returns the tentative pick of the open session.
func (s *Selection) LastPicked() scene.Node { return s.picker.LastPicked() }

// Current returns the selected element, or nil.
func (s *Selection) Current() scene.Node { return s.current }

// SetCurrent selects n directly, as when navigating the hierarchy.
func (s *Selection) SetCurrent(n scene.Node) {
	if n == s.current {
		return
	}
	s.current = n
	for _, fn := range s.onChange {
		fn(n)
	}
}

// Clear drops the current element.
func (s *Selection) Clear() { s.SetCurrent(nil) }

// Highlighter paints the tentative pick on top of everything else while a
// session is open.
type Highlighter struct {
	BaseService
	sel *Selection
}

var (
	highlightFill    = gfx.WithAlpha(gfx.ColorTeal, 0.4)
	highlightOutline = gfx.ColorBlue
)

func (h *Highlighter) Draw(dl *gfx.DrawList) {
	n := h.sel.picker.LastPicked()
	if n == nil {
		return
	}
	r := scene.StageRect(n)
	dl.AddRect(r, highlightFill)
	dl.AddRectOutline(r, highlightOutline, 2)
}

// Invalidator drops the current element once it is no longer attached to the
// stage root. It stays registered for the lifetime of the selection.
type Invalidator struct {
	BaseService
	sel *Selection
}

func (v *Invalidator) Update() {
	cur := v.sel.current
	if cur == nil || scene.IsAscendantOf(v.sel.stage.Root, cur) {
		return
	}
	logger.Info().Str("element", cur.Base().Name).Msg("selected element left the stage, selection reset")
	v.sel.SetCurrent(nil)
	for _, fn := range v.sel.onReset {
		fn()
	}
}
