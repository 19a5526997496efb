package uidebug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

type selectionFixture struct {
	stage *scene.Stage
	sched *uidebug.Scheduler
	sel   *uidebug.Selection
	a, b  *scene.Element

	began, ended int
}

func newSelectionFixture(t *testing.T) *selectionFixture {
	t.Helper()
	f := &selectionFixture{
		stage: scene.NewStage(400, 300, nil),
		sched: uidebug.NewScheduler(),
		a:     scene.NewElement("a", 50, 50),
		b:     scene.NewElement("b", 50, 50),
	}
	f.a.SetPosition(10, 10)
	f.b.SetPosition(100, 100)
	f.stage.AddActor(f.a)
	f.stage.AddActor(f.b)
	f.sched.Attach(f.stage)
	f.sel = uidebug.NewSelection(f.stage, f.sched, nil)
	f.sel.OnElementSelection(func() { f.began++ }, func() { f.ended++ })
	return f
}

func (f *selectionFixture) click(x, y float32) {
	p := gfx.Vec2{X: x, Y: y}
	f.stage.PointerDown(p, 0)
	f.stage.PointerUp(p, 0)
}

func TestSelection_DoublePickCommits(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.Begin()
	require.True(t, f.sel.Active())
	assert.Equal(t, 1, f.began)
	assert.NotNil(t, f.stage.Capture())
	assert.True(t, uidebug.IsActive[*uidebug.Highlighter](f.sched))

	f.click(20, 20)
	assert.Same(t, f.a, f.sel.LastPicked())
	assert.Nil(t, f.sel.Current(), "a single pick never commits")

	f.click(20, 20)
	assert.Same(t, f.a, f.sel.Current())
	assert.False(t, f.sel.Active())
	assert.Equal(t, 1, f.ended)
	assert.Nil(t, f.stage.Capture())
	assert.False(t, uidebug.IsActive[*uidebug.Highlighter](f.sched))
	assert.Len(t, f.stage.Root.Children(), 2, "capture surface removed")
}

func TestSelection_HitTestsBeneathSurface(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.Begin()

	f.click(110, 110)
	assert.Same(t, f.b, f.sel.LastPicked())
	f.click(300, 250)
	assert.Nil(t, f.sel.LastPicked(), "empty space picks nothing")
	f.click(300, 250)
	assert.True(t, f.sel.Active(), "repeated empty picks never commit")
}

func TestSelection_DragPreviews(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.Begin()

	f.stage.PointerDown(gfx.Vec2{X: 20, Y: 20}, 0)
	f.stage.PointerDragged(gfx.Vec2{X: 120, Y: 120})
	assert.Same(t, f.b, f.sel.LastPicked())
	f.stage.PointerUp(gfx.Vec2{X: 120, Y: 120}, 0)
	assert.Nil(t, f.sel.Current())

	f.click(120, 120)
	assert.Same(t, f.b, f.sel.Current())
}

func TestSelection_EscapeCancels(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.SetCurrent(f.b)
	f.sel.Begin()
	f.click(20, 20)

	assert.True(t, f.stage.KeyDown(scene.KeyEscape))
	assert.False(t, f.sel.Active())
	assert.Same(t, f.b, f.sel.Current(), "cancel keeps the previous element")
	assert.Equal(t, 1, f.ended)
	assert.Nil(t, f.stage.Capture())
}

func TestSelection_BeginTwiceIsNoop(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.Begin()
	f.sel.Begin()
	assert.Equal(t, 1, f.began)
	assert.Len(t, f.stage.Root.Children(), 3)
}

func TestSelection_OnChange(t *testing.T) {
	f := newSelectionFixture(t)
	var seen []scene.Node
	f.sel.OnChange(func(n scene.Node) { seen = append(seen, n) })

	f.sel.SetCurrent(f.a)
	f.sel.SetCurrent(f.a)
	f.sel.Clear()
	assert.Equal(t, []scene.Node{f.a, nil}, seen)
}

func TestHighlighter_DrawsLastPick(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.Begin()

	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)
	f.sched.Draw(dl)
	assert.Empty(t, dl.VtxBuffer, "nothing armed yet")

	f.click(20, 20)
	f.sched.Draw(dl)
	// One fill quad plus four outline edges.
	assert.Len(t, dl.VtxBuffer, 5*4)
	assert.Equal(t, float32(10), dl.VtxBuffer[0].Pos[0])
}

func TestInvalidator_ResetsDetachedElement(t *testing.T) {
	f := newSelectionFixture(t)
	resets := 0
	f.sel.OnReset(func() { resets++ })

	f.sel.SetCurrent(f.a)
	f.stage.Act(0.016)
	assert.Same(t, f.a, f.sel.Current())

	f.a.Remove()
	require.NotPanics(t, func() { f.stage.Act(0.016) })
	assert.Nil(t, f.sel.Current())
	assert.Equal(t, 1, resets)

	f.stage.Act(0.016)
	assert.Equal(t, 1, resets)
}

func TestInvalidator_DetachedAncestor(t *testing.T) {
	f := newSelectionFixture(t)
	g := scene.NewGroup("g")
	child := scene.NewElement("child", 5, 5)
	g.AddChild(child)
	f.stage.AddActor(g)

	f.sel.SetCurrent(child)
	g.Remove()
	f.sched.Update()
	assert.Nil(t, f.sel.Current())
}

func TestInvalidator_KeepsRoot(t *testing.T) {
	f := newSelectionFixture(t)
	f.sel.SetCurrent(f.stage.Root)
	f.sched.Update()
	assert.Same(t, f.stage.Root, f.sel.Current())
}
