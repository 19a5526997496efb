package uidebug

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// watchedValue polls a binding once per frame from an element's update hook.
// An access failure other than an absent owner is latched: it is logged once
// where it happened and the editor stays unavailable.
type watchedValue[T any] struct {
	binding *Binding[T]
	value   T
	err     error
	broken  bool
	primed  bool
	cue     updateCue
}

func watch[T any](b *Binding[T], target *scene.Element) *watchedValue[T] {
	w := &watchedValue[T]{binding: b, cue: updateCue{target: target}}
	w.poll()
	target.Update(w.poll)
	return w
}

func (w *watchedValue[T]) poll() {
	if w.broken {
		return
	}
	v, changed, err := w.binding.Changed()
	if err != nil {
		var zero T
		w.value, w.err = zero, err
		w.broken = !errors.Is(err, ErrOwnerAbsent)
		w.binding.Reset()
		return
	}
	w.value, w.err = v, nil
	if changed && w.primed {
		w.cue.play()
	}
	w.primed = true
}

// get returns the value seen by the last poll.
func (w *watchedValue[T]) get() (T, bool) { return w.value, w.err == nil }

// BoolEditor is a toggle button showing the current value.
func BoolEditor(ctx *EditorContext) scene.Node {
	btn := scene.NewTextButton(ctx.text(BundleNotAvailable), nil)
	btn.Name = ctx.Field.Name
	w := watch(NewBinding(ctx.Owner, ctx.Field, BoolConverter()), &btn.Element)
	btn.TextFunc = func() string {
		v, ok := w.get()
		if !ok {
			return ctx.text(BundleNotAvailable)
		}
		return strconv.FormatBool(v)
	}
	btn.CheckedFunc = func() bool {
		v, _ := w.get()
		return v
	}
	btn.DisabledFunc = func() bool {
		_, ok := w.get()
		return !ok || ctx.locked()
	}
	btn.OnClick = func() {
		v, ok := w.get()
		if !ok {
			return
		}
		if err := w.binding.Commit(!v); err != nil {
			logger.Warn().Err(err).Str("field", ctx.Field.Name).Msg("commit failed")
			return
		}
		w.value = !v
	}
	return btn
}

// EnumEditor shows the current constant and a "change" toggle that reveals
// one button per constant. Clicking a constant commits it and hides the list.
func EnumEditor(ctx *EditorContext) scene.Node {
	b := NewBinding(ctx.Owner, ctx.Field, Converter[Enum]{
		Format: func(v Enum) string { return v.String() },
	})
	current := scene.NewLabel("")
	w := watch(b, &current.Element)
	current.TextFunc = func() string {
		v, ok := w.get()
		if !ok || v == nil {
			return ctx.text(BundleNotAvailable)
		}
		return v.String()
	}
	current.SetText(current.TextFunc())
	unavailable := func() bool {
		_, ok := w.get()
		return !ok || ctx.locked()
	}

	t := scene.NewTable(ctx.Field.Name)
	t.Add(current).GrowX().PadRight = scene.SpaceSM

	toggle := scene.NewToggleButton(ctx.text(BundleChange), false, nil)
	toggle.DisabledFunc = unavailable
	t.Add(toggle)
	t.Row()

	choices := scene.NewTable("choices")
	for i, v := range enumValues(ctx.Field.Type) {
		e, ok := v.(Enum)
		if !ok {
			continue
		}
		choices.Add(scene.NewTextButton(v.String(), func() {
			if err := b.Commit(e); err != nil {
				logger.Warn().Err(err).Str("field", ctx.Field.Name).Msg("commit failed")
			} else {
				w.value = e
			}
			toggle.Checked = false
		})).Pad(scene.SpaceXS)
		if i%2 == 1 {
			choices.Row()
		}
	}
	list := scene.NewCollapser(choices)
	list.SetCollapsed(true)
	list.CollapsedFunc = func() bool { return !toggle.Checked || unavailable() }
	t.Add(list).Span(2)
	return t
}

func enumValues(t reflect.Type) []fmt.Stringer {
	if t == nil || t.Kind() == reflect.Interface {
		return nil
	}
	e, ok := reflect.Zero(t).Interface().(Enum)
	if !ok {
		return nil
	}
	return e.Values()
}

// Vec2Editor edits the two components of a gfx.Vec2 in separate fields.
// The component editors write through a pointer into the owner.
func Vec2Editor(ctx *EditorContext) scene.Node {
	broken := false
	inner := func() any {
		o := ctx.Owner()
		if o == nil || broken {
			return nil
		}
		p, err := ctx.Field.Pointer(o)
		if err != nil {
			broken = !errors.Is(err, ErrOwnerAbsent)
			return nil
		}
		return p
	}
	vt := reflect.TypeFor[gfx.Vec2]()
	num := FloatConverter[float32]()

	t := scene.NewTable(ctx.Field.Name)
	t.Add(scene.NewLabel("x "))
	t.Add(NewPropertyField(ctx.with(inner, MustField(vt, "X")), num).Field)
	t.Add(scene.NewLabel(", y "))
	t.Add(NewPropertyField(ctx.with(inner, MustField(vt, "Y")), num).Field)
	return t
}

// FallbackEditor displays the first line of the value's default formatting.
func FallbackEditor(ctx *EditorContext) scene.Node {
	broken := false
	l := scene.NewDynamicLabel(func() string {
		if broken {
			return ctx.text(BundleNotAvailable)
		}
		o := ctx.Owner()
		if o == nil {
			return ctx.text(BundleNotAvailable)
		}
		v, err := ctx.Field.Get(o)
		if err != nil {
			broken = !errors.Is(err, ErrOwnerAbsent)
			return ctx.text(BundleNotAvailable)
		}
		s, _, _ := strings.Cut(fmt.Sprint(v), "\n")
		return s
	})
	l.Name = ctx.Field.Name
	return l
}
