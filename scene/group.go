package scene

import (
	"slices"

	"github.com/go-theft-auto/uidebug/gfx"
)

// Group is a node with children positioned absolutely within it.
type Group struct {
	Element

	// Background, when non-zero, fills the group's bounds.
	Background uint32

	children []Node
}

// NewGroup creates an empty group.
func NewGroup(name string) *Group {
	g := &Group{}
	g.init(g)
	g.Name = name
	return g
}

// Children implements Container. The returned slice must not be modified.
func (g *Group) Children() []Node { return g.children }

// AddChild appends n as the topmost child, detaching it from any previous parent.
func (g *Group) AddChild(n Node) {
	g.insert(len(g.children), n)
}

// AddChildAt inserts n at index, clamped to the child count.
func (g *Group) AddChildAt(index int, n Node) {
	g.insert(min(max(index, 0), len(g.children)), n)
}

func (g *Group) insert(index int, n Node) {
	e := n.Base()
	if e.parent != nil {
		e.parent.RemoveChild(n)
	}
	g.children = slices.Insert(g.children, min(index, len(g.children)), n)
	e.parent = g.self.(Container)
	g.InvalidateHierarchy()
}

// RemoveChild implements Container.
func (g *Group) RemoveChild(n Node) bool {
	i := slices.Index(g.children, n)
	if i < 0 {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	n.Base().parent = nil
	n.Base().cell = nil
	g.InvalidateHierarchy()
	return true
}

// ClearChildren detaches every child.
func (g *Group) ClearChildren() {
	for _, c := range g.children {
		c.Base().parent = nil
		c.Base().cell = nil
	}
	g.children = g.children[:0]
	g.InvalidateHierarchy()
}

// Find returns the first descendant with the given name.
func (g *Group) Find(name string) Node {
	for _, c := range g.children {
		if c.Base().Name == name {
			return c
		}
	}
	for _, c := range g.children {
		if sub, ok := c.(interface{ Find(string) Node }); ok {
			if found := sub.Find(name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Act implements Node.
func (g *Group) Act(delta float32) {
	g.Element.Act(delta)
	// Children may detach themselves during Act.
	for _, c := range slices.Clone(g.children) {
		c.Act(delta)
	}
}

// Draw implements Node.
func (g *Group) Draw(dc DrawContext, parent gfx.Vec2) {
	if !g.Visible {
		return
	}
	pos := g.origin(parent)
	if g.Background != 0 {
		dc.DL.AddRect(gfx.Rect{X: pos.X, Y: pos.Y, W: g.Width, H: g.Height}, g.tint(g.Background))
	}
	g.drawChildren(dc, pos)
}

func (g *Group) drawChildren(dc DrawContext, pos gfx.Vec2) {
	for _, c := range g.children {
		c.Draw(dc, pos)
	}
}

// Hit implements Node. Children are tested topmost first, then the group itself.
func (g *Group) Hit(p gfx.Vec2, touchable bool) Node {
	if touchable && g.Touchable == TouchDisabled {
		return nil
	}
	if !g.Visible {
		return nil
	}
	local := g.toLocal(p)
	for i := len(g.children) - 1; i >= 0; i-- {
		if hit := g.children[i].Hit(local, touchable); hit != nil {
			return hit
		}
	}
	if touchable && g.Touchable != TouchEnabled {
		return nil
	}
	if local.X >= 0 && local.X < g.Width && local.Y >= 0 && local.Y < g.Height {
		return g.self
	}
	return nil
}

// IsAscendantOf reports whether g is n or one of n's ancestors.
func IsAscendantOf(g Node, n Node) bool {
	for cur := n; cur != nil; {
		if cur == g {
			return true
		}
		p := cur.Base().parent
		if p == nil {
			return false
		}
		cur = p
	}
	return false
}
