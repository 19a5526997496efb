package uidebug

import (
	"github.com/go-theft-auto/uidebug/gfx"
	"github.com/go-theft-auto/uidebug/scene"
)

// BoundsClass classifies a node for the bounds overlay.
type BoundsClass int

const (
	// BoundsAffirm marks a visible node that accepts input.
	BoundsAffirm BoundsClass = iota
	// BoundsWarn marks a visible node that rejects input.
	BoundsWarn
	// BoundsAlarm marks a node hidden by itself or by an ancestor.
	BoundsAlarm
)

var boundsColors = [...]uint32{
	BoundsAffirm: gfx.ColorGreen,
	BoundsWarn:   gfx.ColorYellow,
	BoundsAlarm:  gfx.ColorRed,
}

// Color returns the outline color of the class.
func (c BoundsClass) Color() uint32 { return boundsColors[c] }

// Classify returns the class of n given the conjunctive visibility of its
// ancestors.
func Classify(n scene.Node, parentVisible bool) BoundsClass {
	e := n.Base()
	switch {
	case !parentVisible || !e.Visible:
		return BoundsAlarm
	case e.IsTouchable():
		return BoundsAffirm
	default:
		return BoundsWarn
	}
}

// WalkBounds visits root and its descendants depth first, passing each node
// the conjunctive visibility of its ancestors. Invisible children are skipped
// unless force is set.
func WalkBounds(root scene.Node, force bool, fn func(n scene.Node, parentVisible bool)) {
	walkBounds(root, true, force, fn)
}

func walkBounds(n scene.Node, parentVisible, force bool, fn func(scene.Node, bool)) {
	fn(n, parentVisible)
	c, ok := n.(scene.Container)
	if !ok {
		return
	}
	visible := parentVisible && n.Base().Visible
	for _, child := range c.Children() {
		if child.Base().Visible || force {
			walkBounds(child, visible, force, fn)
		}
	}
}

// BoundsOverlay outlines every node of the stage and, for laid out tables,
// their grid lines. What it draws is read from Prefs every frame.
type BoundsOverlay struct {
	BaseService
	stage *scene.Stage
	prefs *Prefs
}

// NewBoundsOverlay creates the overlay service for stage.
func NewBoundsOverlay(stage *scene.Stage, prefs *Prefs) *BoundsOverlay {
	return &BoundsOverlay{stage: stage, prefs: prefs}
}

func (o *BoundsOverlay) Draw(dl *gfx.DrawList) {
	bounds, cells := o.prefs.ElementDebug(), o.prefs.CellDebug()
	if !bounds && !cells {
		return
	}
	opacity := o.prefs.BoundsOpacity()
	thickness := o.prefs.BoundsThickness()

	WalkBounds(o.stage.Root, o.prefs.ForceElementDebug(), func(n scene.Node, parentVisible bool) {
		if bounds {
			c := gfx.WithAlpha(Classify(n, parentVisible).Color(), opacity)
			dl.AddRectOutline(scene.StageRect(n), c, thickness)
		}
		if t, ok := n.(*scene.Table); ok && cells && !t.NeedsLayout() {
			drawGrid(dl, t, gfx.WithAlpha(gfx.ColorBlue, opacity), thickness)
		}
	})
}

// drawGrid draws the separators between the resolved columns and rows of t.
func drawGrid(dl *gfx.DrawList, t *scene.Table, c uint32, thickness float32) {
	r := scene.StageRect(t)
	top, bottom := r.Y+t.Padding, r.Y+r.H-t.Padding
	left, right := r.X+t.Padding, r.X+r.W-t.Padding

	x := left
	cols := t.ColumnWidths()
	for _, w := range cols[:max(len(cols)-1, 0)] {
		x += w
		dl.AddLine(gfx.Vec2{X: x, Y: top}, gfx.Vec2{X: x, Y: bottom}, c, thickness)
	}
	y := top
	rows := t.RowHeights()
	for _, h := range rows[:max(len(rows)-1, 0)] {
		y += h
		dl.AddLine(gfx.Vec2{X: left, Y: y}, gfx.Vec2{X: right, Y: y}, c, thickness)
	}
}
