package scene

import "github.com/go-theft-auto/uidebug/gfx"

// DragState tracks the state of a title-bar drag.
type DragState struct {
	Active  bool
	StartX  float32 // Pointer X when the drag started
	StartY  float32 // Pointer Y when the drag started
	OffsetX float32 // Window X relative to the pointer
	OffsetY float32 // Window Y relative to the pointer
}

// Reset clears the drag state.
func (d *DragState) Reset() { *d = DragState{} }

// SnapConfig configures window snapping when a drag ends.
type SnapConfig struct {
	Enabled    bool
	GridSize   float32 // Grid size for grid snapping (0 = disabled)
	EdgeMargin float32 // Snap to stage edges within this margin
}

// DefaultSnapConfig snaps to the stage edges within 10px.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{Enabled: true, EdgeMargin: 10}
}

// Window is a table with a draggable title bar above a content table.
type Window struct {
	Table

	Title     *Label
	Content   *Table
	Draggable bool
	Snap      SnapConfig

	titleBar *Table
	drag     DragState
}

// NewWindow creates a draggable window.
func NewWindow(title string) *Window {
	w := &Window{Draggable: true, Snap: DefaultSnapConfig()}
	w.init(w)
	w.Name = "window"
	w.Padding = SpaceXS

	w.titleBar = NewTable("titlebar")
	w.Title = NewLabel(title)
	w.titleBar.Add(w.Title).Pad(SpaceSM)
	w.titleBar.AddListener(ListenerFuncs{
		Down:    w.beginDrag,
		Dragged: w.dragTo,
		Up:      func(*InputEvent) { w.endDrag() },
	})

	w.Content = NewTable("content")
	w.Add(w.titleBar).GrowX()
	w.Row()
	w.Add(w.Content).GrowX()
	return w
}

// TitleBar returns the drag handle.
func (w *Window) TitleBar() *Table { return w.titleBar }

// IsDragging reports whether the window is being dragged.
func (w *Window) IsDragging() bool { return w.drag.Active }

// Draw implements Node.
func (w *Window) Draw(dc DrawContext, parent gfx.Vec2) {
	if !w.Visible {
		return
	}
	pos := w.origin(parent)
	r := gfx.Rect{X: pos.X, Y: pos.Y, W: w.Width, H: w.Height}
	dc.DL.AddRect(r, w.tint(dc.Style.PanelColor))
	dc.DL.AddRectOutline(r, w.tint(dc.Style.PanelBorderColor), dc.Style.BorderSize)
	tb := StageRect(w.titleBar)
	dc.DL.AddRect(tb, w.tint(dc.Style.ButtonColor))
	w.drawChildren(dc, pos)
}

func (w *Window) beginDrag(e *InputEvent) bool {
	if !w.Draggable {
		return false
	}
	w.drag = DragState{
		Active:  true,
		StartX:  e.StagePos.X,
		StartY:  e.StagePos.Y,
		OffsetX: w.X - e.StagePos.X,
		OffsetY: w.Y - e.StagePos.Y,
	}
	return true
}

func (w *Window) dragTo(e *InputEvent) {
	if !w.drag.Active {
		return
	}
	x := e.StagePos.X + w.drag.OffsetX
	y := e.StagePos.Y + w.drag.OffsetY
	if size, ok := w.displaySize(); ok {
		x = clampf(x, 0, size.X-w.Width)
		y = clampf(y, 0, size.Y-w.Height)
	}
	w.SetPosition(x, y)
}

func (w *Window) endDrag() {
	if !w.drag.Active {
		return
	}
	w.drag.Active = false
	if !w.Snap.Enabled {
		return
	}
	if w.Snap.EdgeMargin > 0 {
		if size, ok := w.displaySize(); ok {
			w.snapToEdges(size)
		}
	}
	if w.Snap.GridSize > 0 {
		w.snapToGrid()
	}
}

func (w *Window) displaySize() (gfx.Vec2, bool) {
	s := w.Stage()
	if s == nil {
		return gfx.Vec2{}, false
	}
	return gfx.Vec2{X: s.Root.Width, Y: s.Root.Height}, true
}

func (w *Window) snapToEdges(size gfx.Vec2) {
	margin := w.Snap.EdgeMargin
	if w.X < margin {
		w.X = 0
	}
	if w.Y < margin {
		w.Y = 0
	}
	if right := size.X - w.Width; w.X > right-margin {
		w.X = right
	}
	if bottom := size.Y - w.Height; w.Y > bottom-margin {
		w.Y = bottom
	}
}

func (w *Window) snapToGrid() {
	grid := w.Snap.GridSize
	w.X = float32(int(w.X/grid+0.5)) * grid
	w.Y = float32(int(w.Y/grid+0.5)) * grid
}

// Constrain keeps at least 50px of the window on screen.
func (w *Window) Constrain(display gfx.Vec2) {
	const minVisible = 50
	w.X = clampf(w.X, -w.Width+minVisible, display.X-minVisible)
	w.Y = clampf(w.Y, 0, display.Y-minVisible)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
