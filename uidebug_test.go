package uidebug_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

type mockRenderer struct {
	renders  int
	vertices int
	width    int
	height   int
	err      error
}

func (m *mockRenderer) Render(dl *gfx.DrawList) error {
	m.renders++
	m.vertices = len(dl.VtxBuffer)
	return m.err
}

func (m *mockRenderer) FontTextureID() uint32 { return 7 }

func (m *mockRenderer) Resize(w, h int) { m.width, m.height = w, h }

type debuggerFixture struct {
	r     *mockRenderer
	stage *scene.Stage
	ui    *uidebug.UIDebugger
	a     *scene.Element
}

func newDebuggerFixture(t *testing.T) *debuggerFixture {
	t.Helper()
	f := &debuggerFixture{
		r:     &mockRenderer{},
		stage: scene.NewStage(800, 600, nil),
		a:     scene.NewElement("a", 50, 50),
	}
	f.a.SetPosition(10, 10)
	f.stage.AddActor(f.a)
	f.ui = uidebug.New(f.r, f.stage)
	require.NoError(t, f.ui.Frame(0))
	return f
}

func findNamed[T scene.Node](t *testing.T, root scene.Node, name string) T {
	t.Helper()
	var found T
	var ok bool
	var walk func(n scene.Node)
	walk = func(n scene.Node) {
		if ok {
			return
		}
		if v, match := n.(T); match && n.Base().Name == name {
			found, ok = v, true
			return
		}
		if c, isContainer := n.(scene.Container); isContainer {
			for _, child := range c.Children() {
				walk(child)
			}
		}
	}
	walk(root)
	require.True(t, ok, name)
	return found
}

func TestUIDebugger_New(t *testing.T) {
	f := newDebuggerFixture(t)
	assert.False(t, f.ui.Visible(), "window starts hidden")
	assert.Equal(t, uint32(7), f.stage.Style.Font.TextureID)
	assert.Equal(t, 1, f.r.renders)
	assert.True(t, uidebug.IsActive[*uidebug.BoundsOverlay](f.ui.Scheduler()))
	assert.True(t, uidebug.IsActive[*uidebug.Invalidator](f.ui.Scheduler()))
	assert.Equal(t, uidebug.PageProperties, f.ui.Debugger().Page())
}

func TestUIDebugger_FrameWrapsRenderError(t *testing.T) {
	f := newDebuggerFixture(t)
	f.r.err = errors.New("lost context")
	err := f.ui.Frame(0)
	require.Error(t, err)
	assert.ErrorIs(t, err, f.r.err)
	assert.Contains(t, err.Error(), "render frame")
}

func TestUIDebugger_ShowToggle(t *testing.T) {
	f := newDebuggerFixture(t)
	extra := scene.NewElement("late", 5, 5)
	f.stage.AddActor(extra)

	f.ui.Show(true)
	require.True(t, f.ui.Visible())
	children := f.stage.Root.Children()
	assert.Same(t, f.ui.Debugger().Window, children[len(children)-1], "shown window is topmost")

	f.ui.Toggle()
	assert.False(t, f.ui.Visible())
	f.ui.Toggle()
	assert.True(t, f.ui.Visible())
}

func TestUIDebugger_Resize(t *testing.T) {
	f := newDebuggerFixture(t)
	f.ui.Resize(1024, 768)
	assert.Equal(t, 1024, f.r.width)
	assert.Equal(t, 768, f.r.height)
	assert.Equal(t, float32(1024), f.stage.Root.Width)
}

func TestDebugger_HeaderFollowsSelection(t *testing.T) {
	f := newDebuggerFixture(t)
	header := f.ui.Debugger().Header()
	assert.Equal(t, "Current element: No element selected", header.Text)

	f.ui.Selection().SetCurrent(f.a)
	require.NoError(t, f.ui.Frame(0))
	assert.Equal(t, "Current element: a - Element", header.Text)
}

func TestDebugger_BrowserKeepsObjectAcrossSelection(t *testing.T) {
	f := newDebuggerFixture(t)
	browser := f.ui.Debugger().Browser
	s := newSample()
	browser.SetObject(s)
	browser.Descend(s.Target)

	f.ui.Selection().SetCurrent(f.a)
	require.NoError(t, f.ui.Frame(0.016))
	assert.Same(t, s.Target, browser.Object(), "selection changes do not replace the browsed object")
	browser.Back()
	assert.Same(t, s, browser.Object(), "history survives")

	browser.ResetToSelection()
	assert.Same(t, f.a, browser.Object())
}

func TestDebugger_SelectionHidesWindow(t *testing.T) {
	f := newDebuggerFixture(t)
	f.ui.Show(true)

	f.ui.Selection().Begin()
	assert.False(t, f.ui.Visible(), "window hidden while picking")
	for range 2 {
		f.stage.PointerDown(gfx.Vec2{X: 20, Y: 20}, 0)
		f.stage.PointerUp(gfx.Vec2{X: 20, Y: 20}, 0)
	}
	assert.Same(t, f.a, f.ui.Selection().Current())
	assert.True(t, f.ui.Visible(), "window returns after commit")
}

func TestDebugger_RemoveResetsSelection(t *testing.T) {
	f := newDebuggerFixture(t)
	sel := f.ui.Selection()
	sel.SetCurrent(f.a)

	f.ui.Debugger().Remove()
	assert.Nil(t, f.a.Parent())
	require.NoError(t, f.ui.Frame(0.016))
	assert.Nil(t, sel.Current())
	assert.True(t, f.ui.Debugger().Header().HasActions(), "reset flashes the header")

	require.NoError(t, f.ui.Frame(0.016))
	assert.Equal(t, "Current element: No element selected", f.ui.Debugger().Header().Text)
}

func TestDebugger_ShrinkAndHierarchy(t *testing.T) {
	f := newDebuggerFixture(t)
	g := scene.NewGroup("box")
	child := scene.NewElement("inner", 30, 20)
	g.AddChild(child)
	g.SetSize(80, 80)
	f.stage.AddActor(g)

	sel := f.ui.Selection()
	sel.SetCurrent(g)
	children := findNamed[*scene.Table](t, f.ui.Debugger().Window, "children")
	require.Len(t, children.Children(), 1)
	btn, ok := children.Children()[0].(*scene.TextButton)
	require.True(t, ok)
	assert.Equal(t, "inner - Element", btn.Text)

	f.ui.Debugger().Shrink()
	assert.Zero(t, child.Width)
	assert.Zero(t, child.Height)

	btn.OnClick()
	assert.Same(t, child, sel.Current())
	assert.Empty(t, children.Children(), "leaf has no children")
}

func TestDebugger_Pages(t *testing.T) {
	f := newDebuggerFixture(t)
	d := f.ui.Debugger()
	d.SetPage(uidebug.PageHierarchy)
	assert.Equal(t, uidebug.PageHierarchy, d.Page())
	d.SetPage(42)
	assert.Equal(t, uidebug.PageHierarchy, d.Page(), "out of range is ignored")
}

func TestDebugger_PrefsDriveOverlay(t *testing.T) {
	f := newDebuggerFixture(t)
	require.NoError(t, f.ui.Frame(0))
	base := f.r.vertices

	f.ui.Prefs().SetElementDebug(true)
	require.NoError(t, f.ui.Frame(0))
	assert.Greater(t, f.r.vertices, base)

	opacity := findNamed[*scene.TextField](t, f.ui.Debugger().Window, uidebug.KeyBoundsOpacity)
	assert.Equal(t, "0.3", opacity.Text)
	f.ui.Prefs().SetBoundsOpacity(0.5)
	require.NoError(t, f.ui.Frame(0))
	assert.Equal(t, "0.5", opacity.Text, "field follows external changes")
}
