// Package scene implements a small retained-mode widget tree: elements with a
// position, size, visibility and touchability, groups that own children,
// grid tables, and a Stage that performs hit-testing and input dispatch.
//
// The tree is polled every frame rather than driven by change events. Each
// frame the host calls Stage.Act, which runs actions and update callbacks,
// resolves dirty layouts and fires the update hooks, and then Stage.Draw,
// which paints the tree and fires the draw-end hooks.
package scene

import (
	"fmt"
	"image/color"

	"github.com/go-theft-auto/uidebug/gfx"
)

// Touchable controls whether an element and its children receive input.
type Touchable int

const (
	TouchEnabled      Touchable = iota // Element and children receive input
	TouchChildrenOnly                  // Only children receive input
	TouchDisabled                      // Neither element nor children receive input
)

var touchableNames = [...]string{"enabled", "childrenOnly", "disabled"}

func (t Touchable) String() string {
	if t < 0 || int(t) >= len(touchableNames) {
		return fmt.Sprintf("Touchable(%d)", int(t))
	}
	return touchableNames[t]
}

// Values lists every Touchable constant in declaration order.
func (Touchable) Values() []fmt.Stringer {
	return []fmt.Stringer{TouchEnabled, TouchChildrenOnly, TouchDisabled}
}

// Node is implemented by every widget in the tree.
type Node interface {
	// Base returns the embedded element state.
	Base() *Element

	// Act advances actions and update callbacks by delta seconds.
	Act(delta float32)

	// Draw paints the node. origin is the stage position of the parent.
	Draw(dc DrawContext, origin gfx.Vec2)

	// Hit returns the topmost node at p, given in the parent's coordinates.
	// When touchable is true, nodes that reject input are skipped.
	Hit(p gfx.Vec2, touchable bool) Node

	// PrefSize is the size the node would like to occupy.
	PrefSize(s *Style) gfx.Vec2

	// Layout positions children. It is only called while the node is dirty.
	Layout(s *Style)
}

// Container is implemented by nodes that own children.
type Container interface {
	Node
	Children() []Node
	RemoveChild(n Node) bool
}

// DrawContext carries per-frame draw state down the tree.
type DrawContext struct {
	DL    *gfx.DrawList
	Style *Style
}

// Element is the state shared by every node. Widgets embed it.
type Element struct {
	Name        string
	X, Y        float32
	Width       float32
	Height      float32
	Translation gfx.Vec2
	Color       color.RGBA
	Visible     bool
	Touchable   Touchable

	// VisibilityFunc, when set, overrides Visible every frame.
	VisibilityFunc func() bool
	// TouchableFunc, when set, overrides Touchable every frame.
	TouchableFunc func() Touchable

	self        Node
	parent      Container
	stage       *Stage
	actions     []Action
	updates     []func()
	listeners   []Listener
	needsLayout bool
	cell        *Cell
}

// init wires the element to the widget that embeds it. Every constructor
// must call it so that Hit and parent links report the outer node.
func (e *Element) init(self Node) {
	e.self = self
	e.Visible = true
	e.Touchable = TouchEnabled
	e.Color = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	e.needsLayout = true
}

// NewElement creates a bare element, mostly useful as a leaf placeholder.
func NewElement(name string, w, h float32) *Element {
	e := &Element{Name: name, Width: w, Height: h}
	e.init(e)
	return e
}

// Base implements Node.
func (e *Element) Base() *Element { return e }

// Self returns the outer widget embedding this element.
func (e *Element) Self() Node { return e.self }

// Parent returns the containing node, or nil for detached elements and the root.
func (e *Element) Parent() Container { return e.parent }

// Stage returns the stage the element was last attached under, or nil.
func (e *Element) Stage() *Stage {
	for n := e; n != nil; {
		if n.stage != nil {
			return n.stage
		}
		if n.parent == nil {
			return nil
		}
		n = n.parent.Base()
	}
	return nil
}

// Cell returns the table cell holding this element, or nil.
func (e *Element) Cell() *Cell { return e.cell }

// IsTouchable reports whether the element itself accepts input.
func (e *Element) IsTouchable() bool { return e.Touchable == TouchEnabled }

// SetSize resizes the element and marks the hierarchy for layout.
func (e *Element) SetSize(w, h float32) {
	if e.Width == w && e.Height == h {
		return
	}
	e.Width, e.Height = w, h
	e.InvalidateHierarchy()
}

// SetPosition moves the element within its parent.
func (e *Element) SetPosition(x, y float32) {
	e.X, e.Y = x, y
}

// Invalidate marks only this element for layout.
func (e *Element) Invalidate() { e.needsLayout = true }

// InvalidateHierarchy marks this element and every ancestor for layout.
func (e *Element) InvalidateHierarchy() {
	e.needsLayout = true
	if e.parent != nil {
		e.parent.Base().InvalidateHierarchy()
	}
}

// NeedsLayout reports whether the element's layout is stale.
func (e *Element) NeedsLayout() bool { return e.needsLayout }

// Pack sizes the element to its preferred size and lays it out.
func (e *Element) Pack(s *Style) {
	size := e.self.PrefSize(s)
	e.SetSize(size.X, size.Y)
	validate(e.self, s)
}

// Remove detaches the element from its parent. It reports whether it had one.
func (e *Element) Remove() bool {
	if e.parent == nil {
		return false
	}
	return e.parent.RemoveChild(e.self)
}

// Update registers a callback that runs every frame during Act.
func (e *Element) Update(fn func()) {
	e.updates = append(e.updates, fn)
}

// AddListener registers an input listener.
func (e *Element) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

// AddAction queues an animation.
func (e *Element) AddAction(a Action) {
	e.actions = append(e.actions, a)
}

// RemoveAction drops a queued animation.
func (e *Element) RemoveAction(a Action) {
	for i, other := range e.actions {
		if other == a {
			e.actions = append(e.actions[:i], e.actions[i+1:]...)
			return
		}
	}
}

// ClearActions drops every queued animation.
func (e *Element) ClearActions() { e.actions = e.actions[:0] }

// HasActions reports whether any animation is still running.
func (e *Element) HasActions() bool { return len(e.actions) > 0 }

// Act implements Node.
func (e *Element) Act(delta float32) {
	if e.VisibilityFunc != nil {
		e.Visible = e.VisibilityFunc()
	}
	if e.TouchableFunc != nil {
		e.Touchable = e.TouchableFunc()
	}

	if len(e.actions) > 0 {
		running := e.actions[:0]
		for _, a := range e.actions {
			if !a.Act(e, delta) {
				running = append(running, a)
			}
		}
		e.actions = running
	}

	for _, fn := range e.updates {
		fn()
	}
}

// Draw implements Node. A bare element draws nothing.
func (e *Element) Draw(DrawContext, gfx.Vec2) {}

// Hit implements Node.
func (e *Element) Hit(p gfx.Vec2, touchable bool) Node {
	if touchable && e.Touchable != TouchEnabled {
		return nil
	}
	if !e.Visible {
		return nil
	}
	local := e.toLocal(p)
	if local.X >= 0 && local.X < e.Width && local.Y >= 0 && local.Y < e.Height {
		return e.self
	}
	return nil
}

// PrefSize implements Node.
func (e *Element) PrefSize(*Style) gfx.Vec2 {
	return gfx.Vec2{X: e.Width, Y: e.Height}
}

// Layout implements Node.
func (e *Element) Layout(*Style) {}

// toLocal converts a point in parent coordinates into this element's space.
func (e *Element) toLocal(p gfx.Vec2) gfx.Vec2 {
	return gfx.Vec2{X: p.X - e.X - e.Translation.X, Y: p.Y - e.Y - e.Translation.Y}
}

// origin returns the element's top-left corner given its parent's stage position.
func (e *Element) origin(parent gfx.Vec2) gfx.Vec2 {
	return gfx.Vec2{X: parent.X + e.X + e.Translation.X, Y: parent.Y + e.Y + e.Translation.Y}
}

// tint multiplies a packed color by the element color.
func (e *Element) tint(c uint32) uint32 {
	n := gfx.Unpack(c)
	mul := func(a, b uint8) uint8 { return uint8(uint16(a) * uint16(b) / 255) }
	return gfx.RGBA(mul(n.R, e.Color.R), mul(n.G, e.Color.G), mul(n.B, e.Color.B), mul(n.A, e.Color.A))
}

// LocalToStage converts a point in the node's local space to stage space.
func LocalToStage(n Node, p gfx.Vec2) gfx.Vec2 {
	for cur := n; cur != nil; {
		e := cur.Base()
		p = gfx.Vec2{X: p.X + e.X + e.Translation.X, Y: p.Y + e.Y + e.Translation.Y}
		parent := e.parent
		if parent == nil {
			break
		}
		cur = parent
	}
	return p
}

// StageRect returns the node's axis-aligned bounds in stage space.
func StageRect(n Node) gfx.Rect {
	pos := LocalToStage(n, gfx.Vec2{})
	e := n.Base()
	return gfx.Rect{X: pos.X, Y: pos.Y, W: e.Width, H: e.Height}
}

// validate runs Layout on every dirty node in the subtree.
func validate(n Node, s *Style) {
	e := n.Base()
	if e.needsLayout {
		n.Layout(s)
		e.needsLayout = false
	}
	if c, ok := n.(Container); ok {
		for _, child := range c.Children() {
			validate(child, s)
		}
	}
}
