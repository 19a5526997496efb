package uidebug

import (
	"reflect"

	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// Debugger pages, in switcher order.
const (
	PagePreferences = iota
	PagePreview
	PageProperties
	PageOther
	PageHierarchy
	pageCount
)

var pageTitles = [pageCount]string{
	PagePreferences: BundlePagePreferences,
	PagePreview:     BundlePagePreview,
	PageProperties:  BundlePageProperties,
	PageOther:       BundlePageOther,
	PageHierarchy:   BundlePageHierarchy,
}

var (
	elementType = reflect.TypeFor[scene.Element]()
	cellType    = reflect.TypeFor[scene.Cell]()
)

// Debugger is the inspector window: a header naming the current element, a
// page switcher and the pages themselves.
type Debugger struct {
	Window *scene.Window
	// Browser backs the "other properties" page.
	Browser *Browser

	stage    *scene.Stage
	sel      *Selection
	prefs    *Prefs
	bundle   Bundle
	registry *Registry

	header   *scene.Label
	page     int
	children *scene.Table

	watched  scene.Node
	lastCell uint64
	lastSize gfx.Vec2
}

// NewDebugger builds the inspector window for the stage behind sel. The
// window is not attached; see UIDebugger.
func NewDebugger(stage *scene.Stage, sel *Selection, prefs *Prefs, bundle Bundle, registry *Registry) *Debugger {
	if registry == nil {
		registry = NewRegistry()
	}
	d := &Debugger{
		stage:    stage,
		sel:      sel,
		prefs:    prefs,
		bundle:   bundle,
		registry: registry,
		page:     PageProperties,
	}
	d.Window = scene.NewWindow(d.text(BundleTitle))
	d.Window.Name = "uidebugger"

	d.Browser = NewBrowser(bundle, registry)
	d.Browser.SetSource(func() any { return sel.Current() })

	c := d.Window.Content
	c.Add(d.buildHeader()).GrowX()
	c.Row()
	c.Add(d.buildSwitcher()).GrowX()
	c.Row()
	builders := [pageCount]func() *scene.Table{
		PagePreferences: d.buildPreferences,
		PagePreview:     d.buildPreview,
		PageProperties:  d.buildProperties,
		PageOther:       func() *scene.Table { return d.Browser.Root },
		PageHierarchy:   d.buildHierarchy,
	}
	for i, build := range builders {
		p := scene.NewCollapser(build())
		p.CollapsedFunc = func() bool { return d.page != i }
		c.Add(p).GrowX()
		c.Row()
	}

	sel.OnElementSelection(func() { d.Window.Visible = false }, func() { d.Window.Visible = true })
	sel.OnChange(func(scene.Node) { d.RefreshHierarchy() })
	sel.OnReset(d.flashHeader)
	d.Window.Update(d.watchLayout)
	return d
}

func (d *Debugger) text(key string) string {
	if d.bundle == nil {
		return englishMessages[key]
	}
	return d.bundle.Get(key)
}

// Page returns the visible page.
func (d *Debugger) Page() int { return d.page }

// SetPage switches the visible page.
func (d *Debugger) SetPage(p int) {
	if p >= 0 && p < pageCount {
		d.page = p
	}
}

// Header returns the label describing the current element.
func (d *Debugger) Header() *scene.Label { return d.header }

func (d *Debugger) buildHeader() *scene.Table {
	t := scene.NewTable("header")
	d.header = scene.NewDynamicLabel(func() string {
		cur := d.sel.Current()
		if cur == nil {
			return d.text(BundleCurrentElement) + ": " + d.text(BundleNoElement)
		}
		return d.text(BundleCurrentElement) + ": " + Describe(cur, d.stage.Root)
	})
	t.Add(d.header).GrowX().Pad(scene.SpaceSM)
	t.Add(scene.NewTextButton(d.text(BundleSelectElement), d.sel.Begin)).Pad(scene.SpaceXS)
	return t
}

// flashHeader draws attention to a selection reset.
func (d *Debugger) flashHeader() {
	d.header.ClearActions()
	d.header.AddAction(scene.Sequence(
		scene.ColorTo(failColor, 0, nil),
		scene.ColorTo(plainColor, 5, scene.SineOut),
	))
}

func (d *Debugger) buildSwitcher() *scene.Table {
	t := scene.NewTable("pages")
	for i, key := range pageTitles {
		b := scene.NewTextButton(d.text(key), func() { d.SetPage(i) })
		b.CheckedFunc = func() bool { return d.page == i }
		t.Add(b).Pad(scene.SpaceXS)
	}
	return t
}

func (d *Debugger) toggle(key string, get func() bool, set func(bool)) *scene.TextButton {
	b := scene.NewToggleButton("", get(), set)
	b.TextFunc = func() string {
		state := d.text(BundleDisabled)
		if get() {
			state = d.text(BundleEnabled)
		}
		return d.text(key) + ": " + state
	}
	b.CheckedFunc = get
	return b
}

// floatPref is a text field editing a clamped numeric preference.
func (d *Debugger) floatPref(name string, get func() float32, set func(float32)) *scene.TextField {
	conv := FloatConverter[float32]()
	f := scene.NewTextField(conv.Format(get()))
	f.Name = name
	f.Update(func() {
		if !f.Focused() {
			f.SetText(conv.Format(get()))
		}
	})
	f.OnSubmit = func(s string) {
		if v, err := conv.Parse(s); err == nil {
			set(v)
		} else {
			logger.Debug().Err(err).Str("pref", name).Msg("rejected input")
		}
		f.SetText(conv.Format(get()))
	}
	return f
}

func (d *Debugger) buildPreferences() *scene.Table {
	t := scene.NewTable("preferences")
	p := d.prefs

	t.Add(d.toggle(BundleDebugBounds, p.ElementDebug, p.SetElementDebug)).Fill().Span(2)
	t.Row()
	hidden := scene.NewTable("hidden")
	hidden.Add(d.toggle(BundleDebugHidden, p.ForceElementDebug, p.SetForceElementDebug)).Fill()
	force := scene.NewCollapser(hidden)
	force.CollapsedFunc = func() bool { return !p.ElementDebug() }
	t.Add(force).GrowX().Span(2)
	t.Row()
	t.Add(d.toggle(BundleDebugCells, p.CellDebug, p.SetCellDebug)).Fill().Span(2)
	t.Row()

	t.Add(scene.NewLabel(d.text(BundleBoundsOpacity))).PadRight = scene.SpaceSM
	t.Add(d.floatPref(KeyBoundsOpacity, p.BoundsOpacity, p.SetBoundsOpacity)).GrowX()
	t.Row()
	t.Add(scene.NewLabel(d.text(BundleBoundsThickness))).PadRight = scene.SpaceSM
	t.Add(d.floatPref(KeyBoundsThickness, p.BoundsThickness, p.SetBoundsThickness)).GrowX()
	return t
}

func (d *Debugger) buildPreview() *scene.Table {
	t := scene.NewTable("preview")
	t.Add(scene.NewPreview(240, 160, d.sel.Current)).Pad(scene.SpaceSM)
	return t
}

// element is the owner provider of the properties page.
func (d *Debugger) element() any {
	if cur := d.sel.Current(); cur != nil {
		return cur.Base()
	}
	return nil
}

// cell is the owner provider of the cell block. It returns a nil *scene.Cell
// for elements outside a table, which bindings treat as absent.
func (d *Debugger) cell() any {
	if cur := d.sel.Current(); cur != nil {
		return cur.Base().Cell()
	}
	return nil
}

func (d *Debugger) inCell() bool {
	cur := d.sel.Current()
	return cur != nil && cur.Base().Cell() != nil
}

func (d *Debugger) property(t *scene.Table, owner func() any, typ reflect.Type, name string, locked func() bool, factory EditorFactory) {
	ctx := &EditorContext{
		Owner:    owner,
		Field:    MustField(typ, name),
		Locked:   locked,
		Bundle:   d.bundle,
		Registry: d.registry,
	}
	if factory != nil {
		// Overrides the shared registry for this field only.
		ctx.Registry = &Registry{fallback: FallbackEditor}
		ctx.Registry.Register(ctx.Field.Type, factory)
	}
	t.Add(NewPropertyElement(ctx)).GrowX()
	t.Row()
}

func (d *Debugger) buildProperties() *scene.Table {
	t := scene.NewTable("properties")

	// Position and size are owned by the layout while the element sits in a table.
	d.property(t, d.element, elementType, "Name", nil, nil)
	d.property(t, d.element, elementType, "Color", nil, nil)
	for _, name := range []string{"X", "Y", "Width", "Height"} {
		d.property(t, d.element, elementType, name, d.inCell, nil)
	}
	d.property(t, d.element, elementType, "Translation", nil, TextEditor(Vec2Converter()))
	d.property(t, d.element, elementType, "Visible", func() bool {
		cur := d.sel.Current()
		return cur != nil && cur.Base().VisibilityFunc != nil
	}, nil)
	locked := scene.NewLabel(d.text(BundleVisibilityLocked))
	locked.TextColor = gfx.ColorDarkGray
	locked.VisibilityFunc = func() bool {
		cur := d.sel.Current()
		return cur != nil && cur.Base().VisibilityFunc != nil
	}
	t.Add(locked)
	t.Row()
	d.property(t, d.element, elementType, "Touchable", nil, nil)

	cells := scene.NewTable("cell")
	cells.Add(scene.NewLabel(d.text(BundleCellSpecific)))
	cells.Row()
	noCell := scene.NewLabel(d.text(BundleNoCell))
	noCell.TextColor = gfx.ColorGray
	noCell.VisibilityFunc = func() bool { return !d.inCell() }
	cells.Add(noCell)
	cells.Row()
	for _, name := range []string{
		"MinWidth", "MinHeight", "MaxWidth", "MaxHeight",
		"FillX", "FillY", "ExpandX", "ExpandY",
	} {
		d.property(cells, d.cell, cellType, name, func() bool { return !d.inCell() }, nil)
	}
	t.Add(cells).GrowX()
	t.Row()

	actions := scene.NewTable("actions")
	actions.Add(scene.NewTextButton(d.text(BundleCancel), d.sel.Clear)).Pad(scene.SpaceXS)
	actions.Add(scene.NewTextButton(d.text(BundleShrink), d.Shrink)).Pad(scene.SpaceXS)
	actions.Add(scene.NewTextButton(d.text(BundleInvalidate), d.Invalidate)).Pad(scene.SpaceXS)
	actions.Add(scene.NewTextButton(d.text(BundleRemove), d.Remove)).Pad(scene.SpaceXS)
	t.Add(actions)
	return t
}

// watchLayout relayouts the current element's table when the properties
// page changed its cell or size.
func (d *Debugger) watchLayout() {
	cur := d.sel.Current()
	if cur != d.watched {
		d.watched = cur
		d.lastCell, d.lastSize = 0, gfx.Vec2{}
		if cur != nil {
			d.lastCell = Fingerprint(cur.Base().Cell())
			d.lastSize = gfx.Vec2{X: cur.Base().Width, Y: cur.Base().Height}
		}
		return
	}
	if cur == nil {
		return
	}
	e := cur.Base()
	size := gfx.Vec2{X: e.Width, Y: e.Height}
	if h := Fingerprint(e.Cell()); h != d.lastCell || size != d.lastSize {
		d.lastCell, d.lastSize = h, size
		e.InvalidateHierarchy()
	}
}

// Shrink sets the current element and all its descendants to zero size, then
// packs the element.
func (d *Debugger) Shrink() {
	cur := d.sel.Current()
	if cur == nil {
		return
	}
	shrink(cur)
	cur.Base().Pack(d.stage.Style)
}

func shrink(n scene.Node) {
	n.Base().SetSize(0, 0)
	if c, ok := n.(scene.Container); ok {
		for _, child := range c.Children() {
			shrink(child)
		}
	}
}

// Invalidate marks the current element and its ancestors for layout.
func (d *Debugger) Invalidate() {
	if cur := d.sel.Current(); cur != nil {
		cur.Base().InvalidateHierarchy()
	}
}

// Remove detaches the current element from the tree. The selection is reset
// by the invalidator on the next update.
func (d *Debugger) Remove() {
	if cur := d.sel.Current(); cur != nil {
		cur.Base().Remove()
	}
}

func (d *Debugger) parent() scene.Node {
	cur := d.sel.Current()
	if cur == nil {
		return nil
	}
	if p := cur.Base().Parent(); p != nil {
		return p
	}
	return nil
}

func (d *Debugger) buildHierarchy() *scene.Table {
	t := scene.NewTable("hierarchy")
	t.Add(scene.NewDynamicLabel(func() string {
		return d.text(BundleParent) + ": " + Describe(d.parent(), d.stage.Root)
	})).GrowX()
	selectParent := scene.NewTextButton(d.text(BundleSelectParent), func() {
		if p := d.parent(); p != nil {
			d.sel.SetCurrent(p)
		}
	})
	selectParent.DisabledFunc = func() bool { return d.parent() == nil }
	t.Add(selectParent).Pad(scene.SpaceXS)
	t.Row()

	t.Add(scene.NewLabel(d.text(BundleChildren)))
	t.Add(scene.NewTextButton(d.text(BundleUpdate), d.RefreshHierarchy)).Pad(scene.SpaceXS)
	t.Row()
	d.children = scene.NewTable("children")
	t.Add(d.children).GrowX().Span(2)
	d.RefreshHierarchy()
	return t
}

// RefreshHierarchy rebuilds the list of the current element's children.
func (d *Debugger) RefreshHierarchy() {
	if d.children == nil {
		return
	}
	d.children.ClearChildren()
	c, ok := d.sel.Current().(scene.Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		d.children.Add(scene.NewTextButton(Describe(child, d.stage.Root), func() {
			d.sel.SetCurrent(child)
		})).Fill()
		d.children.Row()
	}
}
