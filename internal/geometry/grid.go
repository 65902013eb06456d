package geometry

import "fmt"

// Grid partitions an area into rows and columns of equally sized cells
// separated by uniform spacing. Cells are numbered left to right, top to
// bottom.
type Grid struct {
	Area    Rect
	Rows    int
	Cols    int
	Spacing int
}

// NewGrid creates a grid over area. It panics if rows or cols is not positive.
func NewGrid(area Rect, rows, cols int) Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("geometry: invalid grid dimensions %dx%d", rows, cols))
	}
	return Grid{Area: area, Rows: rows, Cols: cols}
}

// WithSpacing returns a copy of the grid with the given spacing between cells.
func (g Grid) WithSpacing(spacing int) Grid {
	g.Spacing = spacing
	return g
}

// CellCount returns the number of cells in the grid.
func (g Grid) CellCount() int {
	return g.Rows * g.Cols
}

// RowCol returns the cell at row and col. It panics if either is out of range.
func (g Grid) RowCol(row, col int) Rect {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		panic(fmt.Sprintf("geometry: cell (%d,%d) out of range for %dx%d grid", row, col, g.Rows, g.Cols))
	}
	cellWidth := (g.Area.Width() - (g.Cols-1)*g.Spacing) / g.Cols
	cellHeight := (g.Area.Height() - (g.Rows-1)*g.Spacing) / g.Rows
	x := col * (cellWidth + g.Spacing)
	y := row * (cellHeight + g.Spacing)
	return RectFromSize(g.Area.TopLeft().Add(Off(x, y)), Off(cellWidth, cellHeight))
}

// Cell returns the cell with the given index. It panics if index is out of range.
func (g Grid) Cell(index int) Rect {
	if index < 0 || index >= g.CellCount() {
		panic(fmt.Sprintf("geometry: cell index %d out of range for %dx%d grid", index, g.Rows, g.Cols))
	}
	return g.RowCol(index/g.Cols, index%g.Cols)
}

// LinearLayout arranges items of uniform size along one axis.
type LinearLayout struct {
	Axis    Axis
	Align   Alignment
	Spacing int
}

// HorizontalLayout returns a start-aligned left-to-right layout.
func HorizontalLayout() LinearLayout {
	return LinearLayout{Axis: Horizontal}
}

// VerticalLayout returns a start-aligned top-to-bottom layout.
func VerticalLayout() LinearLayout {
	return LinearLayout{Axis: Vertical}
}

// AlignAtCenter returns a copy of the layout centered within its area.
func (l LinearLayout) AlignAtCenter() LinearLayout {
	l.Align = Center
	return l
}

// WithSpacing returns a copy of the layout with the given spacing between items.
func (l LinearLayout) WithSpacing(spacing int) LinearLayout {
	l.Spacing = spacing
	return l
}

// ArrangeUniform places count items of the given size in area and calls sink
// with the top-left corner of each, in order. Items are centered on the cross
// axis.
func (l LinearLayout) ArrangeUniform(area Rect, count int, size Offset, sink func(Point)) {
	if count <= 0 {
		return
	}
	itemSize := size.Axis(l.Axis)
	total := count*itemSize + (count-1)*l.Spacing
	available := area.Size().Axis(l.Axis)

	cursor := 0
	switch l.Align {
	case Center:
		cursor = (available - total) / 2
	case End:
		cursor = available - total
	}
	cross := area.Size().Axis(l.Axis.Cross())/2 - size.Axis(l.Axis.Cross())/2

	for i := 0; i < count; i++ {
		topLeft := area.TopLeft().
			Add(OnAxis(l.Axis, cursor)).
			Add(OnAxis(l.Axis.Cross(), cross))
		sink(topLeft)
		cursor += itemSize + l.Spacing
	}
}
