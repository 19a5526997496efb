package scene

import (
	"slices"

	"github.com/go-theft-auto/uidebug/gfx"
)

type touchFocus struct {
	listener Listener
	owner    Node
	target   Node
}

type hook[F any] struct {
	id int
	fn F
}

// Stage owns the root group and dispatches input into the tree.
type Stage struct {
	Root  *Group
	Style *Style

	capture       Node
	keyboardFocus Focusable
	touchFoci     []touchFocus
	pointer       gfx.Vec2

	nextHook  int
	onUpdate  []hook[func()]
	onDrawEnd []hook[func(dl *gfx.DrawList)]
}

// NewStage creates a stage of the given size. A nil style selects DefaultStyle.
func NewStage(width, height float32, style *Style) *Stage {
	if style == nil {
		style = DefaultStyle()
	}
	s := &Stage{Root: NewGroup("root"), Style: style}
	s.Root.stage = s
	s.Root.Touchable = TouchChildrenOnly
	s.Root.SetSize(width, height)
	return s
}

// Resize changes the root size.
func (s *Stage) Resize(width, height float32) {
	s.Root.SetSize(width, height)
}

// AddActor attaches n to the root.
func (s *Stage) AddActor(n Node) { s.Root.AddChild(n) }

// Hit returns the topmost touchable node at p in stage coordinates.
func (s *Stage) Hit(p gfx.Vec2) Node {
	return s.Root.Hit(p, true)
}

// Pointer returns the last known pointer position.
func (s *Stage) Pointer() gfx.Vec2 { return s.pointer }

// OnUpdate registers fn to run after the tree has acted each frame. The
// returned function unregisters it.
func (s *Stage) OnUpdate(fn func()) (remove func()) {
	s.nextHook++
	id := s.nextHook
	s.onUpdate = append(s.onUpdate, hook[func()]{id, fn})
	return func() {
		s.onUpdate = slices.DeleteFunc(s.onUpdate, func(h hook[func()]) bool { return h.id == id })
	}
}

// OnDrawEnd registers fn to run after the tree has been drawn each frame.
func (s *Stage) OnDrawEnd(fn func(dl *gfx.DrawList)) (remove func()) {
	s.nextHook++
	id := s.nextHook
	s.onDrawEnd = append(s.onDrawEnd, hook[func(*gfx.DrawList)]{id, fn})
	return func() {
		s.onDrawEnd = slices.DeleteFunc(s.onDrawEnd, func(h hook[func(*gfx.DrawList)]) bool { return h.id == id })
	}
}

// Act advances the tree, resolves layout and fires the update hooks.
func (s *Stage) Act(delta float32) {
	s.Root.Act(delta)
	validate(s.Root, s.Style)
	for _, h := range slices.Clone(s.onUpdate) {
		h.fn()
	}
}

// Draw paints the tree into dl and fires the draw-end hooks.
func (s *Stage) Draw(dl *gfx.DrawList) {
	s.Root.Draw(DrawContext{DL: dl, Style: s.Style}, gfx.Vec2{})
	for _, h := range slices.Clone(s.onDrawEnd) {
		h.fn(dl)
	}
}

// SetCapture routes every pointer event that does not land inside n to n.
// Passing nil releases the capture.
func (s *Stage) SetCapture(n Node) {
	if n != nil {
		logger.Debug().Str("node", n.Base().Name).Msg("input captured")
	}
	s.capture = n
}

// Capture returns the current capture node.
func (s *Stage) Capture() Node { return s.capture }

// ReleaseCapture clears the capture if it is still n.
func (s *Stage) ReleaseCapture(n Node) {
	if s.capture == n {
		logger.Debug().Msg("input capture released")
		s.capture = nil
	}
}

// KeyboardFocus returns the focused widget, or nil.
func (s *Stage) KeyboardFocus() Focusable { return s.keyboardFocus }

// SetKeyboardFocus moves keyboard focus. Passing nil clears it.
func (s *Stage) SetKeyboardFocus(n Node) {
	f, _ := n.(Focusable)
	if f == s.keyboardFocus {
		return
	}
	old := s.keyboardFocus
	s.keyboardFocus = f
	if f != nil {
		logger.Debug().Str("node", f.Base().Name).Msg("keyboard focus")
	}
	if old != nil {
		old.FocusLost()
	}
	if f != nil {
		f.FocusGained()
	}
}

// target resolves the node that receives a pointer event at p.
func (s *Stage) target(p gfx.Vec2) Node {
	hit := s.Hit(p)
	if s.capture == nil {
		return hit
	}
	if hit != nil && IsAscendantOf(s.capture, hit) {
		return hit
	}
	return s.capture
}

// PointerDown dispatches a press at p. It reports whether any listener took it.
func (s *Stage) PointerDown(p gfx.Vec2, button int) bool {
	s.pointer = p
	target := s.target(p)

	var focus Node
	for n := target; n != nil; n = parentNode(n) {
		if _, ok := n.(Focusable); ok {
			focus = n
			break
		}
	}
	s.SetKeyboardFocus(focus)

	if target == nil {
		return false
	}
	// Bubble up until a node's listeners accept the touch.
	for n := target; n != nil; n = parentNode(n) {
		handled := false
		for _, l := range slices.Clone(n.Base().listeners) {
			if l.TouchDown(s.event(p, button, target, n)) {
				s.touchFoci = append(s.touchFoci, touchFocus{listener: l, owner: n, target: target})
				handled = true
			}
		}
		if handled {
			return true
		}
	}
	return false
}

// PointerDragged forwards a drag to the listeners that accepted the press.
func (s *Stage) PointerDragged(p gfx.Vec2) {
	s.pointer = p
	for _, tf := range slices.Clone(s.touchFoci) {
		tf.listener.TouchDragged(s.event(p, 0, tf.target, tf.owner))
	}
}

// PointerUp forwards a release and ends the touch.
func (s *Stage) PointerUp(p gfx.Vec2, button int) {
	s.pointer = p
	foci := s.touchFoci
	s.touchFoci = nil
	for _, tf := range foci {
		tf.listener.TouchUp(s.event(p, button, tf.target, tf.owner))
	}
}

// PointerMoved records the pointer position without pressing.
func (s *Stage) PointerMoved(p gfx.Vec2) { s.pointer = p }

// KeyTyped forwards a printable rune to the focused widget.
func (s *Stage) KeyTyped(r rune) bool {
	if s.keyboardFocus == nil {
		return false
	}
	return s.keyboardFocus.KeyTyped(r)
}

// KeyDown forwards a key to the focused widget, then to key listeners on the
// capture node.
func (s *Stage) KeyDown(k Key) bool {
	if s.keyboardFocus != nil && s.keyboardFocus.KeyDown(k) {
		return true
	}
	if s.capture == nil {
		return false
	}
	for _, l := range slices.Clone(s.capture.Base().listeners) {
		if kl, ok := l.(KeyListener); ok && kl.KeyDown(k) {
			return true
		}
	}
	return false
}

func (s *Stage) event(p gfx.Vec2, button int, target, owner Node) *InputEvent {
	return &InputEvent{
		Stage:    s,
		StagePos: p,
		Local:    p.Sub(LocalToStage(owner, gfx.Vec2{})),
		Target:   target,
		Owner:    owner,
		Button:   button,
	}
}

func parentNode(n Node) Node {
	if p := n.Base().parent; p != nil {
		return p
	}
	return nil
}
