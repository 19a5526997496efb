package scene

import (
	"strings"
	"unicode/utf8"

	"github.com/go-theft-auto/uidebug/gfx"
)

// TextField is a single-line editable text input.
//
// Edits are committed by pressing Enter or by losing keyboard focus with a
// changed text, either of which invokes OnSubmit. Escape restores the text the
// field had when it gained focus.
type TextField struct {
	Element

	Text        string
	MessageText string
	Disabled    bool
	// DisabledFunc, when set, is polled every frame.
	DisabledFunc func() bool
	// TextColor overrides the style text color when non-zero.
	TextColor uint32
	// Filter rejects typed runes when it returns false.
	Filter func(r rune) bool

	OnSubmit func(text string)
	OnChange func(text string)

	focused  bool
	cursor   int
	original string
}

// NewTextField creates a text field.
func NewTextField(text string) *TextField {
	f := &TextField{Text: text}
	f.init(f)
	f.cursor = utf8.RuneCountInString(text)
	f.AddListener(ListenerFuncs{Down: func(*InputEvent) bool { return !f.Disabled }})
	return f
}

// SetText replaces the text without firing callbacks.
func (f *TextField) SetText(text string) {
	f.Text = text
	f.cursor = utf8.RuneCountInString(text)
	if f.focused {
		f.original = text
	}
}

// Focused reports whether the field holds keyboard focus.
func (f *TextField) Focused() bool { return f.focused }

// Cursor returns the caret position in runes.
func (f *TextField) Cursor() int { return f.cursor }

// Submit commits the current text.
func (f *TextField) Submit() {
	f.original = f.Text
	if f.OnSubmit != nil {
		f.OnSubmit(f.Text)
	}
}

// FocusGained implements Focusable.
func (f *TextField) FocusGained() {
	f.focused = true
	f.original = f.Text
	f.cursor = utf8.RuneCountInString(f.Text)
}

// FocusLost implements Focusable.
func (f *TextField) FocusLost() {
	f.focused = false
	if f.Text != f.original && !f.Disabled {
		f.Submit()
	}
}

// KeyTyped implements Focusable.
func (f *TextField) KeyTyped(r rune) bool {
	if f.Disabled || r < 0x20 {
		return false
	}
	if f.Filter != nil && !f.Filter(r) {
		return true
	}
	runes := []rune(f.Text)
	runes = append(runes[:f.cursor], append([]rune{r}, runes[f.cursor:]...)...)
	f.cursor++
	f.changed(string(runes))
	return true
}

// KeyDown implements Focusable.
func (f *TextField) KeyDown(k Key) bool {
	if f.Disabled {
		return false
	}
	runes := []rune(f.Text)
	switch k {
	case KeyEnter:
		f.Submit()
	case KeyEscape:
		f.Text = f.original
		f.cursor = utf8.RuneCountInString(f.Text)
		if s := f.Stage(); s != nil {
			s.SetKeyboardFocus(nil)
		}
	case KeyBackspace:
		if f.cursor > 0 {
			f.cursor--
			f.changed(string(append(runes[:f.cursor], runes[f.cursor+1:]...)))
		}
	case KeyDelete:
		if f.cursor < len(runes) {
			f.changed(string(append(runes[:f.cursor], runes[f.cursor+1:]...)))
		}
	case KeyLeft:
		f.cursor = max(f.cursor-1, 0)
	case KeyRight:
		f.cursor = min(f.cursor+1, len(runes))
	case KeyHome:
		f.cursor = 0
	case KeyEnd:
		f.cursor = len(runes)
	case KeyCopy:
		if clipboard == nil {
			return false
		}
		clipboard.SetText(f.Text)
	case KeyPaste:
		if clipboard == nil {
			return false
		}
		f.paste(clipboard.GetText())
	default:
		return false
	}
	return true
}

// paste inserts the first line of text at the caret, dropping filtered runes.
func (f *TextField) paste(text string) {
	text, _, _ = strings.Cut(text, "\n")
	var ins []rune
	for _, r := range strings.TrimRight(text, "\r") {
		if r < 0x20 || (f.Filter != nil && !f.Filter(r)) {
			continue
		}
		ins = append(ins, r)
	}
	if len(ins) == 0 {
		return
	}
	runes := []rune(f.Text)
	out := make([]rune, 0, len(runes)+len(ins))
	out = append(out, runes[:f.cursor]...)
	out = append(out, ins...)
	out = append(out, runes[f.cursor:]...)
	f.cursor += len(ins)
	f.changed(string(out))
}

func (f *TextField) changed(text string) {
	f.Text = text
	if f.OnChange != nil {
		f.OnChange(text)
	}
}

// Act implements Node.
func (f *TextField) Act(delta float32) {
	f.Element.Act(delta)
	if f.DisabledFunc != nil {
		f.Disabled = f.DisabledFunc()
	}
}

// PrefSize implements Node.
func (f *TextField) PrefSize(s *Style) gfx.Vec2 {
	return gfx.Vec2{X: s.InputWidth, Y: s.LineHeight() + 2*s.InputPadding}
}

// Draw implements Node.
func (f *TextField) Draw(dc DrawContext, parent gfx.Vec2) {
	if !f.Visible {
		return
	}
	s := dc.Style
	pos := f.origin(parent)
	r := gfx.Rect{X: pos.X, Y: pos.Y, W: f.Width, H: f.Height}

	bg := s.InputBgColor
	if f.focused {
		bg = s.InputFocusedBgColor
	}
	dc.DL.AddRect(r, f.tint(bg))
	dc.DL.AddRectOutline(r, f.tint(s.InputBorderColor), s.BorderSize)

	textPos := gfx.Vec2{X: pos.X + s.InputPadding, Y: pos.Y + s.InputPadding}
	dc.DL.PushClipRect(r)
	defer dc.DL.PopClipRect()

	switch {
	case f.Text == "" && f.MessageText != "":
		dc.DL.AddText(textPos, f.MessageText, f.tint(s.TextDisabledColor), s.Font)
	default:
		c := f.TextColor
		if c == 0 {
			c = s.TextColor
		}
		if f.Disabled {
			c = s.TextDisabledColor
		}
		dc.DL.AddText(textPos, f.Text, f.tint(c), s.Font)
	}

	if f.focused {
		x := textPos.X + float32(f.cursor)*s.Font.CharWidth*s.Font.Scale
		dc.DL.AddLine(gfx.Vec2{X: x, Y: textPos.Y}, gfx.Vec2{X: x, Y: textPos.Y + s.LineHeight()}, s.CursorColor, 1)
	}
}
