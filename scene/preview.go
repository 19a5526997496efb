package scene

import "github.com/go-theft-auto/uidebug/gfx"

// Preview draws another node inside its own bounds, clipped, as if that node
// were positioned at the preview's top-left corner. The previewed node stays
// where it is in the tree.
type Preview struct {
	Element

	// Source returns the node to draw, or nil.
	Source func() Node

	drawing bool
}

// NewPreview creates a preview of the given size.
func NewPreview(w, h float32, source func() Node) *Preview {
	p := &Preview{Source: source}
	p.init(p)
	p.Name = "preview"
	p.Width, p.Height = w, h
	return p
}

// Draw implements Node.
func (p *Preview) Draw(dc DrawContext, parent gfx.Vec2) {
	if !p.Visible || p.Source == nil || p.drawing {
		return
	}
	n := p.Source()
	if n == nil {
		return
	}
	// A preview of one of its own ancestors would draw itself again.
	p.drawing = true
	defer func() { p.drawing = false }()

	pos := p.origin(parent)
	r := gfx.Rect{X: pos.X, Y: pos.Y, W: p.Width, H: p.Height}
	dc.DL.AddRectOutline(r, dc.Style.PanelBorderColor, dc.Style.BorderSize)
	dc.DL.PushClipRect(r)
	e := n.Base()
	n.Draw(dc, gfx.Vec2{X: pos.X - e.X - e.Translation.X, Y: pos.Y - e.Y - e.Translation.Y})
	dc.DL.PopClipRect()
}
