package uidebug

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Browser lists the fields of an arbitrary object, one collapsible category
// per level of its embedding chain, and follows reference fields into
// nested objects.
//
// The category widgets are rebuilt only when the browsed object's type
// changes. Browsing another object of the same type rebinds the existing
// editors, which read the object through the browser on every frame.
type Browser struct {
	Root *scene.Table

	bundle   Bundle
	registry *Registry
	source   func() any

	object  any
	typ     reflect.Type
	history []any

	filter     *scene.TextField
	list       *scene.Table
	categories []*FieldCategory
	rebuilds   int
}

// NewBrowser creates an empty browser. A nil registry selects NewRegistry.
func NewBrowser(bundle Bundle, registry *Registry) *Browser {
	if registry == nil {
		registry = NewRegistry()
	}
	b := &Browser{
		Root:     scene.NewTable("browser"),
		bundle:   bundle,
		registry: registry,
		list:     scene.NewTable("categories"),
	}

	b.filter = scene.NewTextField("")
	b.filter.Name = "filter"
	b.filter.MessageText = b.text(BundleFilter)
	b.filter.OnChange = func(string) { b.applyFilter() }

	nav := scene.NewTable("nav")
	back := scene.NewTextButton(b.text(BundleBack), b.Back)
	back.DisabledFunc = func() bool { return len(b.history) == 0 }
	nav.Add(back).Pad(scene.SpaceXS)
	reset := scene.NewTextButton(b.text(BundleResetToElement), b.ResetToSelection)
	reset.DisabledFunc = func() bool { return b.source == nil }
	nav.Add(reset).Pad(scene.SpaceXS)
	nav.Add(b.filter).GrowX()

	b.Root.Add(nav).GrowX()
	b.Root.Row()
	b.Root.Add(scene.NewDynamicLabel(func() string {
		return b.text(BundleCurrentObject) + ": " + b.describe()
	})).Pad(scene.SpaceSM)
	b.Root.Row()
	b.Root.Add(b.list).GrowX()
	b.rebuild()
	return b
}

func (b *Browser) text(key string) string {
	if b.bundle == nil {
		return englishMessages[key]
	}
	return b.bundle.Get(key)
}

func (b *Browser) describe() string {
	if b.typ == nil {
		return b.text(BundleNotAvailable)
	}
	if n, ok := b.object.(scene.Node); ok {
		return Describe(n, nil)
	}
	return b.typ.String()
}

// SetSource sets the provider ResetToSelection browses.
func (b *Browser) SetSource(fn func() any) { b.source = fn }

// Object returns the browsed object.
func (b *Browser) Object() any { return b.object }

// Categories returns the current category widgets, base level first.
func (b *Browser) Categories() []*FieldCategory { return b.categories }

// Rebuilds counts how many times the category list was rebuilt.
func (b *Browser) Rebuilds() int { return b.rebuilds }

// SetObject browses o. The category list is rebuilt if o's type differs from
// the previous object's.
func (b *Browser) SetObject(o any) {
	if isNilRef(o) {
		o = nil
	}
	b.object = o
	t := reflect.TypeOf(o)
	if t == b.typ {
		return
	}
	b.typ = t
	b.rebuild()
}

// Descend pushes the browsed object on the back history and browses o.
func (b *Browser) Descend(o any) {
	b.history = append(b.history, b.object)
	b.SetObject(o)
}

// Back returns to the object browsed before the last Descend.
func (b *Browser) Back() {
	if len(b.history) == 0 {
		return
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.SetObject(last)
}

// ResetToSelection clears the history and browses the source object.
func (b *Browser) ResetToSelection() {
	b.history = b.history[:0]
	if b.source == nil {
		b.SetObject(nil)
		return
	}
	b.SetObject(b.source())
}

func (b *Browser) owner() any { return b.object }

func (b *Browser) rebuild() {
	b.rebuilds++
	b.list.ClearChildren()
	b.categories = b.categories[:0]

	if b.typ == nil {
		b.list.Add(scene.NewLabel(b.text(BundleNotAvailable)))
		return
	}
	levels, err := Hierarchy(b.typ)
	if err != nil {
		logger.Debug().Err(err).Msg("browsed object has no fields")
		b.list.Add(scene.NewLabel(b.text(BundleNoMembers)))
		return
	}
	for i, lv := range levels {
		c := newFieldCategory(b, lv)
		c.SetCollapsed(i != len(levels)-1)
		b.categories = append(b.categories, c)
		b.list.Add(c.outer).GrowX()
		b.list.Row()
	}
	b.applyFilter()
	logger.Debug().Stringer("type", b.typ).Int("levels", len(levels)).Msg("browser rebuilt")
}

func (b *Browser) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(b.filter.Text))
	for _, c := range b.categories {
		c.filter(q)
	}
}

// matchField reports whether name matches the filter query q, which must be
// lower case. Small typos are tolerated.
func matchField(name, q string) bool {
	if q == "" {
		return true
	}
	name = strings.ToLower(name)
	if strings.Contains(name, q) {
		return true
	}
	return levenshtein.ComputeDistance(name, q) <= max(1, len(q)/3)
}

func isNilRef(o any) bool {
	if o == nil {
		return true
	}
	rv := reflect.ValueOf(o)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// FieldCategory is the collapsible list of fields one type declares itself.
type FieldCategory struct {
	Level Level
	Root  *scene.Table

	outer  *scene.Collapser
	header *scene.TextButton
	body   *scene.Collapser
	rows   []categoryRow
}

type categoryRow struct {
	field Field
	wrap  *scene.Collapser
}

func newFieldCategory(b *Browser, lv Level) *FieldCategory {
	c := &FieldCategory{Level: lv, Root: scene.NewTable(lv.Type.Name())}
	c.outer = scene.NewCollapser(c.Root)

	content := scene.NewTable("fields")
	content.Padding = scene.SpaceSM
	c.body = scene.NewCollapser(content)

	name := lv.Type.Name()
	if name == "" {
		name = lv.Type.String()
	}
	c.header = scene.NewToggleButton(fmt.Sprintf("%s (%d)", name, len(lv.Fields)), true, func(expanded bool) {
		c.body.SetCollapsed(!expanded)
	})
	c.Root.Add(c.header).Fill()
	c.Root.Row()
	c.Root.Add(c.body).GrowX()

	if len(lv.Fields) == 0 {
		l := scene.NewLabel(b.text(BundleNoMembers))
		l.TextColor = gfx.ColorGray
		content.Add(l)
		return c
	}
	for _, f := range lv.Fields {
		row := scene.NewTable(f.Name)
		ctx := &EditorContext{Owner: b.owner, Field: f, Bundle: b.bundle, Registry: b.registry}
		row.Add(NewPropertyElement(ctx)).GrowX()
		if descendable(f.Type) {
			row.Add(newDescendButton(b, f)).Pad(scene.SpaceXS)
		}
		wrap := scene.NewCollapser(row)
		content.Add(wrap).GrowX()
		content.Row()
		c.rows = append(c.rows, categoryRow{field: f, wrap: wrap})
	}
	return c
}

func newDescendButton(b *Browser, f Field) *scene.TextButton {
	btn := scene.NewTextButton(b.text(BundleDescend), func() {
		if o, ok := f.Descend(b.object); ok {
			b.Descend(o)
		}
	})
	broken := false
	btn.DisabledFunc = func() bool {
		if b.object == nil || broken {
			return true
		}
		_, ok, err := f.descend(b.object)
		broken = err != nil && !errors.Is(err, ErrOwnerAbsent)
		return !ok
	}
	return btn
}

func descendable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer:
		return t.Elem().Kind() == reflect.Struct
	case reflect.Interface, reflect.Struct:
		return true
	}
	return false
}

// Collapsed reports whether the category body is hidden.
func (c *FieldCategory) Collapsed() bool { return c.body.Collapsed }

// SetCollapsed shows or hides the category body.
func (c *FieldCategory) SetCollapsed(collapsed bool) {
	c.header.Checked = !collapsed
	c.body.SetCollapsed(collapsed)
}

// Hidden reports whether the filter hides the whole category.
func (c *FieldCategory) Hidden() bool { return c.outer.Collapsed }

// Visible returns the names of the fields passing the current filter.
func (c *FieldCategory) Visible() []string {
	var names []string
	for _, r := range c.rows {
		if !r.wrap.Collapsed {
			names = append(names, r.field.Name)
		}
	}
	return names
}

func (c *FieldCategory) filter(q string) {
	shown := q == "" || len(c.rows) == 0
	for _, r := range c.rows {
		ok := matchField(r.field.Name, q)
		r.wrap.SetCollapsed(!ok)
		shown = shown || ok
	}
	c.outer.SetCollapsed(!shown)
}
