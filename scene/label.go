package scene

import "github.com/go-theft-auto/uidebug/gfx"

// Label displays a single line of text.
type Label struct {
	Element

	Text string
	// TextFunc, when set, replaces Text every frame.
	TextFunc func() string
	// TextColor overrides the style text color when non-zero.
	TextColor uint32
}

// NewLabel creates a label with fixed text.
func NewLabel(text string) *Label {
	l := &Label{Text: text}
	l.init(l)
	return l
}

// NewDynamicLabel creates a label whose text is polled every frame.
func NewDynamicLabel(fn func() string) *Label {
	l := &Label{TextFunc: fn}
	l.init(l)
	l.Text = fn()
	return l
}

// SetText replaces the label text.
func (l *Label) SetText(text string) {
	if l.Text == text {
		return
	}
	l.Text = text
	l.InvalidateHierarchy()
}

// Act implements Node.
func (l *Label) Act(delta float32) {
	l.Element.Act(delta)
	if l.TextFunc != nil {
		l.SetText(l.TextFunc())
	}
}

// PrefSize implements Node.
func (l *Label) PrefSize(s *Style) gfx.Vec2 {
	return s.Font.Measure(l.Text)
}

// Draw implements Node.
func (l *Label) Draw(dc DrawContext, parent gfx.Vec2) {
	if !l.Visible || l.Text == "" {
		return
	}
	c := l.TextColor
	if c == 0 {
		c = dc.Style.TextColor
	}
	dc.DL.AddText(l.origin(parent), l.Text, l.tint(c), dc.Style.Font)
}
