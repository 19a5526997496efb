package scene

import (
	"slices"

	"github.com/go-theft-auto/uidebug/gfx"
)

// Cell holds one child of a Table together with its layout constraints.
// A zero Max* means unbounded.
type Cell struct {
	MinWidth, MinHeight float32
	MaxWidth, MaxHeight float32
	FillX, FillY        bool
	ExpandX, ExpandY    bool
	Colspan             int
	PadTop, PadLeft     float32
	PadBottom, PadRight float32

	node  Node
	table *Table
	row   int
	col   int
}

// Node returns the child held by the cell.
func (c *Cell) Node() Node { return c.node }

// Table returns the table owning the cell.
func (c *Cell) Table() *Table { return c.table }

// Column returns the zero-based column index after the last layout.
func (c *Cell) Column() int { return c.col }

// Row returns the zero-based row index.
func (c *Cell) Row() int { return c.row }

// Size sets both the minimum and maximum size.
func (c *Cell) Size(w, h float32) *Cell {
	c.MinWidth, c.MaxWidth = w, w
	c.MinHeight, c.MaxHeight = h, h
	return c
}

// Width fixes the cell width.
func (c *Cell) Width(w float32) *Cell {
	c.MinWidth, c.MaxWidth = w, w
	return c
}

// Pad sets the padding on all four sides.
func (c *Cell) Pad(p float32) *Cell {
	c.PadTop, c.PadLeft, c.PadBottom, c.PadRight = p, p, p, p
	return c
}

// Fill stretches the child to the cell bounds.
func (c *Cell) Fill() *Cell {
	c.FillX, c.FillY = true, true
	return c
}

// GrowX makes the column absorb extra table width and fills it.
func (c *Cell) GrowX() *Cell {
	c.ExpandX, c.FillX = true, true
	return c
}

// Span sets the number of columns the cell occupies.
func (c *Cell) Span(n int) *Cell {
	c.Colspan = max(n, 1)
	return c
}

func (c *Cell) span() int { return max(c.Colspan, 1) }

// prefSize returns the padded size the cell asks of its row and column.
func (c *Cell) prefSize(s *Style) gfx.Vec2 {
	pref := c.node.PrefSize(s)
	w := max(pref.X, c.MinWidth)
	h := max(pref.Y, c.MinHeight)
	if c.MaxWidth > 0 {
		w = min(w, c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		h = min(h, c.MaxHeight)
	}
	return gfx.Vec2{X: w + c.PadLeft + c.PadRight, Y: h + c.PadTop + c.PadBottom}
}

// Table is a group that lays its children out on a grid of rows and columns.
type Table struct {
	Group

	// Padding is the inset between the table edge and the grid.
	Padding float32
	// CellPad is applied to every newly added cell.
	CellPad float32

	cells      []*Cell
	row        int
	rowOpen    bool
	colWidths  []float32
	rowHeights []float32
}

// NewTable creates an empty table.
func NewTable(name string) *Table {
	t := &Table{}
	t.init(t)
	t.Name = name
	return t
}

// Add appends n to the current row and returns its cell.
func (t *Table) Add(n Node) *Cell {
	t.AddChild(n)
	c := &Cell{node: n, table: t, row: t.row, Colspan: 1}
	c.Pad(t.CellPad)
	n.Base().cell = c
	t.cells = append(t.cells, c)
	t.rowOpen = true
	return c
}

// Row ends the current row. Calling it on an empty row is a no-op.
func (t *Table) Row() *Table {
	if t.rowOpen {
		t.row++
		t.rowOpen = false
	}
	return t
}

// Cells returns the table cells in insertion order.
func (t *Table) Cells() []*Cell { return t.cells }

// RemoveChild implements Container and drops the child's cell.
func (t *Table) RemoveChild(n Node) bool {
	if !t.Group.RemoveChild(n) {
		return false
	}
	t.cells = slices.DeleteFunc(t.cells, func(c *Cell) bool { return c.node == n })
	return true
}

// ClearChildren removes every child and resets the grid.
func (t *Table) ClearChildren() {
	t.Group.ClearChildren()
	t.cells = t.cells[:0]
	t.row = 0
	t.rowOpen = false
	t.colWidths = t.colWidths[:0]
	t.rowHeights = t.rowHeights[:0]
}

// Columns returns the column count as of the last layout.
func (t *Table) Columns() int { return len(t.colWidths) }

// Rows returns the row count as of the last layout.
func (t *Table) Rows() int { return len(t.rowHeights) }

// ColumnWidths returns the resolved column widths from the last layout.
func (t *Table) ColumnWidths() []float32 { return slices.Clone(t.colWidths) }

// RowHeights returns the resolved row heights from the last layout.
func (t *Table) RowHeights() []float32 { return slices.Clone(t.rowHeights) }

// measure assigns columns and returns the minimum column widths and row heights.
func (t *Table) measure(s *Style) (cols, rows []float32) {
	row, col := -1, 0
	for _, c := range t.cells {
		if c.row != row {
			row, col = c.row, 0
		}
		c.col = col
		col += c.span()
	}

	ncols := 0
	for _, c := range t.cells {
		ncols = max(ncols, c.col+c.span())
	}
	nrows := 0
	if len(t.cells) > 0 {
		nrows = t.cells[len(t.cells)-1].row + 1
	}
	cols = make([]float32, ncols)
	rows = make([]float32, nrows)

	for _, c := range t.cells {
		pref := c.prefSize(s)
		rows[c.row] = max(rows[c.row], pref.Y)
		if c.span() == 1 {
			cols[c.col] = max(cols[c.col], pref.X)
		}
	}
	// Spanning cells widen their columns evenly when they do not fit.
	for _, c := range t.cells {
		if c.span() == 1 {
			continue
		}
		pref := c.prefSize(s)
		var have float32
		for i := c.col; i < c.col+c.span(); i++ {
			have += cols[i]
		}
		if extra := pref.X - have; extra > 0 {
			each := extra / float32(c.span())
			for i := c.col; i < c.col+c.span(); i++ {
				cols[i] += each
			}
		}
	}
	return cols, rows
}

// PrefSize implements Node.
func (t *Table) PrefSize(s *Style) gfx.Vec2 {
	cols, rows := t.measure(s)
	var w, h float32
	for _, v := range cols {
		w += v
	}
	for _, v := range rows {
		h += v
	}
	return gfx.Vec2{X: w + 2*t.Padding, Y: h + 2*t.Padding}
}

// Layout implements Node.
func (t *Table) Layout(s *Style) {
	cols, rows := t.measure(s)
	distribute(cols, t.Width-2*t.Padding, func(i int) bool {
		return slices.ContainsFunc(t.cells, func(c *Cell) bool { return c.ExpandX && c.col == i })
	})
	distribute(rows, t.Height-2*t.Padding, func(i int) bool {
		return slices.ContainsFunc(t.cells, func(c *Cell) bool { return c.ExpandY && c.row == i })
	})
	t.colWidths, t.rowHeights = cols, rows

	for _, c := range t.cells {
		x := t.Padding
		for i := 0; i < c.col; i++ {
			x += cols[i]
		}
		y := t.Padding
		for i := 0; i < c.row; i++ {
			y += rows[i]
		}
		var areaW float32
		for i := c.col; i < c.col+c.span(); i++ {
			areaW += cols[i]
		}
		areaW -= c.PadLeft + c.PadRight
		areaH := rows[c.row] - c.PadTop - c.PadBottom

		pref := c.node.PrefSize(s)
		w := min(max(pref.X, c.MinWidth), areaW)
		h := min(max(pref.Y, c.MinHeight), areaH)
		if c.FillX {
			w = areaW
		}
		if c.FillY {
			h = areaH
		}
		if c.MaxWidth > 0 {
			w = min(w, c.MaxWidth)
		}
		if c.MaxHeight > 0 {
			h = min(h, c.MaxHeight)
		}

		e := c.node.Base()
		e.X = x + c.PadLeft
		// Vertically centred within the row.
		e.Y = y + c.PadTop + (areaH-h)/2
		if e.Width != w || e.Height != h {
			e.Width, e.Height = w, h
			e.needsLayout = true
		}
	}
}

// distribute spreads any space beyond the sum of sizes over the expanding
// entries, or over none when nothing expands.
func distribute(sizes []float32, avail float32, expands func(int) bool) {
	var sum float32
	for _, v := range sizes {
		sum += v
	}
	extra := avail - sum
	if extra <= 0 {
		return
	}
	var grow []int
	for i := range sizes {
		if expands(i) {
			grow = append(grow, i)
		}
	}
	if len(grow) == 0 {
		return
	}
	each := extra / float32(len(grow))
	for _, i := range grow {
		sizes[i] += each
	}
}
