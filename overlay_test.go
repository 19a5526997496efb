package uidebug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/uidebug"
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// overlayTree builds root > shown > (hidden > inner, idle) where hidden is
// invisible and idle rejects input.
func overlayTree() (root, shown, hidden *scene.Group, inner, idle *scene.Element) {
	root = scene.NewGroup("root")
	shown = scene.NewGroup("shown")
	hidden = scene.NewGroup("hidden")
	hidden.Visible = false
	inner = scene.NewElement("inner", 10, 10)
	idle = scene.NewElement("idle", 10, 10)
	idle.Touchable = scene.TouchDisabled

	root.AddChild(shown)
	shown.AddChild(hidden)
	shown.AddChild(idle)
	hidden.AddChild(inner)
	return
}

func TestClassify(t *testing.T) {
	e := scene.NewElement("e", 1, 1)
	assert.Equal(t, uidebug.BoundsAffirm, uidebug.Classify(e, true))
	assert.Equal(t, uidebug.BoundsAlarm, uidebug.Classify(e, false))

	e.Touchable = scene.TouchChildrenOnly
	assert.Equal(t, uidebug.BoundsWarn, uidebug.Classify(e, true))

	e.Visible = false
	assert.Equal(t, uidebug.BoundsAlarm, uidebug.Classify(e, true))
}

func TestWalkBounds_SkipsHiddenUnlessForced(t *testing.T) {
	root, _, _, _, _ := overlayTree()

	var names []string
	uidebug.WalkBounds(root, false, func(n scene.Node, _ bool) {
		names = append(names, n.Base().Name)
	})
	assert.Equal(t, []string{"root", "shown", "idle"}, names)

	names = nil
	uidebug.WalkBounds(root, true, func(n scene.Node, _ bool) {
		names = append(names, n.Base().Name)
	})
	assert.Equal(t, []string{"root", "shown", "hidden", "inner", "idle"}, names)
}

func TestWalkBounds_ConjunctiveVisibility(t *testing.T) {
	root, _, _, _, _ := overlayTree()

	classes := map[string]uidebug.BoundsClass{}
	uidebug.WalkBounds(root, true, func(n scene.Node, parentVisible bool) {
		// Effectively visible iff visible itself and every ancestor is.
		want := true
		for cur := n; cur != nil; {
			want = want && cur.Base().Visible
			p := cur.Base().Parent()
			if p == nil {
				break
			}
			cur = p
		}
		assert.Equal(t, want, parentVisible && n.Base().Visible, n.Base().Name)
		classes[n.Base().Name] = uidebug.Classify(n, parentVisible)
	})

	assert.Equal(t, map[string]uidebug.BoundsClass{
		"root":   uidebug.BoundsAffirm,
		"shown":  uidebug.BoundsAffirm,
		"hidden": uidebug.BoundsAlarm,
		"inner":  uidebug.BoundsAlarm,
		"idle":   uidebug.BoundsWarn,
	}, classes, "inner is visible itself but hidden by its parent")
}

func TestWalkBounds_ClassificationIsStable(t *testing.T) {
	root, _, _, _, _ := overlayTree()
	collect := func() []uidebug.BoundsClass {
		var out []uidebug.BoundsClass
		uidebug.WalkBounds(root, true, func(n scene.Node, pv bool) {
			out = append(out, uidebug.Classify(n, pv))
		})
		return out
	}
	first := collect()
	for range 3 {
		assert.Equal(t, first, collect())
	}
}

func newOverlay(t *testing.T) (*scene.Stage, *uidebug.Prefs, *uidebug.BoundsOverlay, *scene.Table) {
	t.Helper()
	stage := scene.NewStage(400, 300, nil)
	grid := scene.NewTable("grid")
	grid.Add(scene.NewElement("a", 10, 10))
	grid.Add(scene.NewElement("b", 20, 10))
	grid.Row()
	grid.Add(scene.NewElement("c", 10, 30))
	stage.AddActor(grid)
	grid.Pack(stage.Style)
	stage.Act(0)

	prefs := uidebug.NewPrefs(nil)
	return stage, prefs, uidebug.NewBoundsOverlay(stage, prefs), grid
}

func TestBoundsOverlay_OffDrawsNothing(t *testing.T) {
	_, _, overlay, _ := newOverlay(t)
	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)

	overlay.Draw(dl)
	assert.Empty(t, dl.VtxBuffer)
}

func TestBoundsOverlay_OutlinesEveryNode(t *testing.T) {
	_, prefs, overlay, _ := newOverlay(t)
	prefs.SetElementDebug(true)
	prefs.SetBoundsOpacity(1)

	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)
	overlay.Draw(dl)

	// root, grid and three elements, four edge quads each.
	require.Len(t, dl.VtxBuffer, 5*4*4)
	assert.Equal(t, gfx.ColorGreen, dl.VtxBuffer[4*4].Color, "grid accepts input")
}

func TestBoundsOverlay_RootIsWarn(t *testing.T) {
	_, prefs, overlay, _ := newOverlay(t)
	prefs.SetElementDebug(true)
	prefs.SetBoundsOpacity(0.5)

	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)
	overlay.Draw(dl)

	// The stage root only passes input to its children.
	assert.Equal(t, gfx.WithAlpha(gfx.ColorYellow, 0.5), dl.VtxBuffer[0].Color)
}

func TestBoundsOverlay_GridLines(t *testing.T) {
	_, prefs, overlay, grid := newOverlay(t)
	prefs.SetCellDebug(true)

	dl := gfx.AcquireDrawList()
	defer gfx.ReleaseDrawList(dl)
	overlay.Draw(dl)
	// One column separator and one row separator.
	assert.Len(t, dl.VtxBuffer, 2*4)

	dl.Clear()
	grid.Invalidate()
	overlay.Draw(dl)
	assert.Empty(t, dl.VtxBuffer, "dirty layouts have no resolved grid")
}
