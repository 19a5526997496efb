package scene

import "github.com/go-theft-auto/uidebug/gfx"

// TextButton is a clickable button with a text caption. When Toggle is set it
// flips Checked on every click.
type TextButton struct {
	Element

	Text     string
	TextFunc func() string
	Toggle   bool
	Checked  bool
	Disabled bool

	// CheckedFunc and DisabledFunc, when set, are polled every frame.
	CheckedFunc  func() bool
	DisabledFunc func() bool

	OnClick func()

	pressed bool
}

// NewTextButton creates a push button.
func NewTextButton(text string, onClick func()) *TextButton {
	b := &TextButton{Text: text, OnClick: onClick}
	b.init(b)
	b.AddListener(&buttonListener{b: b})
	return b
}

// NewToggleButton creates a button that flips Checked when clicked.
func NewToggleButton(text string, checked bool, onToggle func(checked bool)) *TextButton {
	b := NewTextButton(text, nil)
	b.Toggle = true
	b.Checked = checked
	b.OnClick = func() {
		if onToggle != nil {
			onToggle(b.Checked)
		}
	}
	return b
}

// Pressed reports whether a pointer is currently held on the button.
func (b *TextButton) Pressed() bool { return b.pressed }

// Click performs the button action as if it was clicked.
func (b *TextButton) Click() {
	if b.Disabled {
		return
	}
	if b.Toggle {
		b.Checked = !b.Checked
	}
	if b.OnClick != nil {
		b.OnClick()
	}
}

// Act implements Node.
func (b *TextButton) Act(delta float32) {
	b.Element.Act(delta)
	if b.TextFunc != nil {
		if text := b.TextFunc(); text != b.Text {
			b.Text = text
			b.InvalidateHierarchy()
		}
	}
	if b.CheckedFunc != nil {
		b.Checked = b.CheckedFunc()
	}
	if b.DisabledFunc != nil {
		b.Disabled = b.DisabledFunc()
	}
}

// PrefSize implements Node.
func (b *TextButton) PrefSize(s *Style) gfx.Vec2 {
	size := s.Font.Measure(b.Text)
	return gfx.Vec2{X: size.X + 2*s.ButtonPadding, Y: size.Y + 2*s.ButtonPadding}
}

// Draw implements Node.
func (b *TextButton) Draw(dc DrawContext, parent gfx.Vec2) {
	if !b.Visible {
		return
	}
	s := dc.Style
	pos := b.origin(parent)

	bg := s.ButtonColor
	textColor := s.TextColor
	switch {
	case b.Disabled:
		bg = s.ButtonDisabledColor
		textColor = s.TextDisabledColor
	case b.pressed:
		bg = s.ButtonActiveColor
	case b.Checked:
		bg = s.ButtonCheckedColor
	}

	r := gfx.Rect{X: pos.X, Y: pos.Y, W: b.Width, H: b.Height}
	dc.DL.AddRect(r, b.tint(bg))
	size := s.Font.Measure(b.Text)
	textPos := gfx.Vec2{X: pos.X + (b.Width-size.X)/2, Y: pos.Y + (b.Height-size.Y)/2}
	dc.DL.AddText(textPos, b.Text, b.tint(textColor), s.Font)
}

type buttonListener struct {
	b *TextButton
}

func (l *buttonListener) TouchDown(e *InputEvent) bool {
	if l.b.Disabled {
		return false
	}
	l.b.pressed = true
	return true
}

func (l *buttonListener) TouchDragged(e *InputEvent) {
	l.b.pressed = l.inside(e)
}

func (l *buttonListener) TouchUp(e *InputEvent) {
	wasPressed := l.b.pressed
	l.b.pressed = false
	if wasPressed && l.inside(e) {
		l.b.Click()
	}
}

func (l *buttonListener) inside(e *InputEvent) bool {
	return e.Local.X >= 0 && e.Local.X < l.b.Width && e.Local.Y >= 0 && e.Local.Y < l.b.Height
}
