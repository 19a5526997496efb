package scene

import "github.com/go-theft-auto/uidebug/gfx"

// Collapser shows or hides a content table. A collapsed collapser takes no space.
type Collapser struct {
	Group

	Content   *Table
	Collapsed bool
	// CollapsedFunc, when set, is polled every frame.
	CollapsedFunc func() bool
}

// NewCollapser wraps content. It starts expanded.
func NewCollapser(content *Table) *Collapser {
	c := &Collapser{Content: content}
	c.init(c)
	c.Name = "collapser"
	c.AddChild(content)
	return c
}

// SetCollapsed shows or hides the content.
func (c *Collapser) SetCollapsed(collapsed bool) {
	if c.Collapsed == collapsed {
		return
	}
	c.Collapsed = collapsed
	c.Content.Visible = !collapsed
	c.InvalidateHierarchy()
}

// Toggle flips the collapsed state.
func (c *Collapser) Toggle() { c.SetCollapsed(!c.Collapsed) }

// Act implements Node.
func (c *Collapser) Act(delta float32) {
	if c.CollapsedFunc != nil {
		c.SetCollapsed(c.CollapsedFunc())
	}
	c.Group.Act(delta)
}

// PrefSize implements Node.
func (c *Collapser) PrefSize(s *Style) gfx.Vec2 {
	if c.Collapsed {
		return gfx.Vec2{}
	}
	return c.Content.PrefSize(s)
}

// Layout implements Node.
func (c *Collapser) Layout(*Style) {
	c.Content.SetPosition(0, 0)
	if c.Content.Width != c.Width || c.Content.Height != c.Height {
		c.Content.Width, c.Content.Height = c.Width, c.Height
		c.Content.Invalidate()
	}
}
