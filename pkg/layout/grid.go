package layout

import "github.com/go-drift/ember/pkg/graphics"

// Grid positions children in fixed-width cells, wrapping to a new row when
// a row's columns are exhausted. Cell width is derived once from the
// available width; cell height is the per-row maximum of child heights.
type Grid struct {
	origin    graphics.Offset
	columns   int
	cellWidth float64
	gapX      float64
	gapY      float64

	col     int     // next column index in the current row
	rowTop  float64 // y offset of the current row, relative to origin
	rowMaxH float64 // tallest child in the current row so far
	rows    int     // completed rows
	count   int
}

// NewGrid creates a grid at origin dividing availableWidth into columns.
// Cell width is max(0, (availableWidth - (columns-1)*gapX) / columns).
// A non-positive column count is treated as one column.
func NewGrid(origin graphics.Offset, availableWidth float64, columns int, gapX, gapY float64) *Grid {
	if columns < 1 {
		columns = 1
	}
	cell := (availableWidth - float64(columns-1)*gapX) / float64(columns)
	if cell < 0 {
		cell = 0
	}
	return &Grid{
		origin:    origin,
		columns:   columns,
		cellWidth: cell,
		gapX:      gapX,
		gapY:      gapY,
	}
}

// CellWidth returns the fixed width of every cell.
func (g *Grid) CellWidth() float64 {
	return g.cellWidth
}

// Columns returns the column count.
func (g *Grid) Columns() int {
	return g.columns
}

// CurrentPosition returns the top-left corner of the next cell.
func (g *Grid) CurrentPosition() graphics.Offset {
	return graphics.Offset{
		X: g.origin.X + float64(g.col)*(g.cellWidth+g.gapX),
		Y: g.origin.Y + g.rowTop,
	}
}

// Advance records the child's height into the current row and moves to the
// next column, wrapping to a new row when the row is full. Children wider
// than their cell still occupy exactly one cell.
func (g *Grid) Advance(size graphics.Size) {
	if size.Height > g.rowMaxH {
		g.rowMaxH = size.Height
	}
	g.count++
	g.col++
	if g.col >= g.columns {
		g.col = 0
		g.rowTop += g.rowMaxH + g.gapY
		g.rowMaxH = 0
		g.rows++
	}
}

// Close reports the total occupied size, including the still-open last row.
func (g *Grid) Close() graphics.Size {
	if g.count == 0 {
		return graphics.Size{}
	}
	var height float64
	if g.col > 0 {
		// Last row is still open; rowTop is its top edge.
		height = g.rowTop + g.rowMaxH
	} else {
		// The last Advance wrapped; rowTop includes one trailing row gap.
		height = g.rowTop - g.gapY
	}
	usedCols := g.count
	if usedCols > g.columns {
		usedCols = g.columns
	}
	width := float64(usedCols)*g.cellWidth + float64(usedCols-1)*g.gapX
	return graphics.Size{Width: width, Height: height}
}
