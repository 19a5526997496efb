package uidebug

import (
	"errors"
	"image/color"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

var (
	failColor   = color.RGBA{R: 255, A: 255}
	updateColor = color.RGBA{R: 0x80, G: 0x40, B: 0xbb, A: 255}
	plainColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PropertyField is a text field kept in sync with a bound field.
//
// Every frame it re-reads the owner. When the value changed externally the
// text is replaced and flashed. Submitted text is parsed and committed; text
// that fails to parse leaves the field untouched, shakes the widget and
// restores the last good value.
type PropertyField[T any] struct {
	Field   *scene.TextField
	binding *Binding[T]
	ctx     *EditorContext

	primed bool
	broken bool
	cue    updateCue
}

// NewPropertyField creates a text editor for ctx.Field using conv.
func NewPropertyField[T any](ctx *EditorContext, conv Converter[T]) *PropertyField[T] {
	p := &PropertyField[T]{
		Field:   scene.NewTextField(""),
		binding: NewBinding(ctx.Owner, ctx.Field, conv),
		ctx:     ctx,
	}
	p.cue.target = &p.Field.Element
	p.Field.Name = ctx.Field.Name
	p.Field.OnSubmit = p.submit
	p.Field.Update(p.Sync)
	p.Sync()
	return p
}

// Binding returns the underlying binding.
func (p *PropertyField[T]) Binding() *Binding[T] { return p.binding }

// Sync re-reads the bound value. It runs automatically every frame.
func (p *PropertyField[T]) Sync() {
	if p.broken {
		return
	}
	v, changed, err := p.binding.Changed()
	if err != nil {
		if !errors.Is(err, ErrOwnerAbsent) {
			// The failure was logged where it happened; stop polling.
			p.broken = true
		}
		p.binding.Reset()
		p.Field.Disabled = true
		p.Field.SetText(p.ctx.text(BundleNotAvailable))
		return
	}

	p.Field.Disabled = p.ctx.locked()
	if !changed {
		return
	}
	p.Field.SetText(p.binding.Format(v))
	if p.primed {
		p.cue.play()
	}
	p.primed = true
}

func (p *PropertyField[T]) submit(text string) {
	if _, ok := p.binding.Owner(); !ok || p.broken {
		p.Field.SetText(p.ctx.text(BundleNotAvailable))
		return
	}
	if p.ctx.locked() {
		p.restore()
		return
	}
	if err := p.binding.CommitText(text); err != nil {
		if errors.Is(err, ErrParse) {
			logger.Debug().Err(err).Str("field", p.ctx.Field.Name).Msg("rejected input")
		} else {
			logger.Warn().Err(err).Str("field", p.ctx.Field.Name).Msg("commit failed")
		}
		p.fail()
		p.restore()
		return
	}
	p.restore()
}

// restore displays the last good value.
func (p *PropertyField[T]) restore() {
	if last, ok := p.binding.Last(); ok {
		p.Field.SetText(p.binding.Format(last))
	}
}

func (p *PropertyField[T]) fail() {
	f := p.Field
	f.ClearActions()
	f.Translation = gfx.Vec2{}
	p.cue.action = nil
	f.AddAction(scene.Parallel(
		scene.Sequence(scene.ColorTo(failColor, 0, nil), scene.ColorTo(plainColor, 2.5, scene.BounceOut)),
		scene.TranslateBy(25, 0, 0.75, scene.BounceOut),
		scene.Sequence(scene.Delay(0.25), scene.TranslateBy(-50, 0, 0.75, scene.BounceOut)),
		scene.Sequence(scene.Delay(0.5), scene.TranslateBy(25, 0, 0.75, scene.SineOut)),
	))
}

// updateCue replays the "value changed elsewhere" flash on one element.
type updateCue struct {
	target *scene.Element
	action scene.Action
}

func (c *updateCue) play() {
	if c.action != nil {
		c.target.RemoveAction(c.action)
	}
	c.action = scene.Sequence(scene.ColorTo(updateColor, 0, nil), scene.ColorTo(plainColor, 1.5, scene.CircleIn))
	c.target.AddAction(c.action)
}

// TextEditor returns a factory building a PropertyField with conv.
func TextEditor[T any](conv Converter[T]) EditorFactory {
	return func(ctx *EditorContext) scene.Node {
		return NewPropertyField(ctx, conv).Field
	}
}

// NewPropertyElement builds the row for one field: its name, its type, a
// constant marker when applicable, and the editor chosen by the registry.
func NewPropertyElement(ctx *EditorContext) *scene.Table {
	t := scene.NewTable(ctx.Field.Name)

	head := scene.NewTable("head")
	head.Add(scene.NewLabel(ctx.Field.Name))
	head.Row()
	typ := scene.NewLabel(ctx.Field.TypeName())
	typ.TextColor = gfx.ColorGray
	head.Add(typ)
	if ctx.Field.Const {
		head.Row()
		c := scene.NewLabel(ctx.text(BundleConstant))
		c.TextColor = gfx.ColorDarkGray
		head.Add(c)
	}
	t.Add(head).Pad(5)

	reg := ctx.Registry
	if reg == nil {
		reg = NewRegistry()
	}
	t.Add(reg.Build(ctx)).ExpandX = true
	return t
}
