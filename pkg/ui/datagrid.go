package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/layout"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
	"github.com/go-drift/ember/pkg/theme"
)

import stderrors "errors"

// DataGrid places a table of string cells with a header row and row
// selection: equal-width columns from the grid cell formula, one row of
// height MenuItemHeight per entry. Clicking a row writes its index into
// *selected; returns true on the frame the selection changed. Rows shorter
// than the column count leave trailing cells blank.
func (c *Context) DataGrid(name string, columns []string, rows [][]string, selected *int) bool {
	f := c.ensureFrame("ui.DataGrid")
	if f == nil {
		return false
	}
	if len(columns) == 0 {
		errors.Report(&errors.UIError{
			Op:     "ui.DataGrid",
			Kind:   errors.KindMisuse,
			Err:    stderrors.New("no columns"),
			Widget: name,
		})
		return false
	}
	if selected == nil {
		selected = new(int)
	}
	id := state.NewID(name, kindDataGrid)
	m := c.theme.Metrics
	p := c.theme.Palette
	pos := f.layout.CurrentPosition()
	width := f.availableWidth()
	rowH := m.MenuItemHeight

	// The cell geometry comes from the same formula as the grid container.
	grid := layout.NewGrid(pos, width, len(columns), 0, 0)
	cellW := grid.CellWidth()

	total := graphics.Size{Width: width, Height: rowH * float64(len(rows)+1)}
	bounds := graphics.RectFromOffsetSize(pos, total)
	visible := f.layout.IsRectVisible(bounds)

	// Header row.
	header := graphics.RectFromLTWH(pos.X, pos.Y, width, rowH)
	if visible {
		f.renderer.DrawBox(header, render.BoxStyle{Fill: p.SurfaceRaised})
		for col, title := range columns {
			c.drawCell(title, pos.X+float64(col)*cellW, pos.Y, cellW, rowH, c.theme.Caption)
		}
	}

	changed := false
	for i, row := range rows {
		top := pos.Y + rowH*float64(i+1)
		rowBounds := graphics.RectFromLTWH(pos.X, top, width, rowH)
		w := c.interact(id.Index(i), rowBounds, PriorityDefault)
		if w.released {
			c.store.ClearActivePress(id.Index(i))
			if *selected != i {
				*selected = i
				changed = true
			}
		}
		if !w.visible || !visible {
			continue
		}
		switch {
		case i == *selected:
			f.renderer.DrawBox(rowBounds, render.BoxStyle{Fill: p.Primary.WithAlpha(0.25)})
		case w.hovered:
			f.renderer.DrawBox(rowBounds, render.BoxStyle{Fill: blendOver(p.Surface, p.Hover)})
		}
		for col := range columns {
			if col >= len(row) {
				break
			}
			c.drawCell(row[col], pos.X+float64(col)*cellW, top, cellW, rowH, c.theme.Body)
		}
	}

	if visible {
		f.renderer.DrawBox(bounds, render.BoxStyle{
			Border:      p.Border,
			BorderWidth: m.BorderWidth,
		})
	}
	f.layout.Advance(total)
	return changed
}

func (c *Context) drawCell(content string, x, y, w, h float64, style theme.TextStyle) {
	f := c.frame
	size := c.text.MeasureText(content, textStyle(style))
	origin := graphics.Offset{
		X: x + c.theme.Metrics.Padding,
		Y: y + (h-size.Height)/2,
	}
	maxSize := graphics.Size{Width: w - 2*c.theme.Metrics.Padding, Height: h}
	f.renderer.DrawText(origin, content, textStyle(style), render.AlignStart, maxSize, style.Color)
}
