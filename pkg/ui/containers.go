package ui

import (
	"fmt"

	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/layout"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
)

import stderrors "errors"

// BeginHBox opens a horizontal box at the current position. A negative gap
// selects the theme's default spacing.
func (c *Context) BeginHBox(gap float64) {
	f := c.ensureFrame("ui.BeginHBox")
	if f == nil {
		return
	}
	f.layout.Push(layout.NewHBox(f.layout.CurrentPosition(), c.resolveGap(gap)))
}

// EndHBox closes the innermost container, which must be an HBox, and
// advances the parent cursor by its occupied size.
func (c *Context) EndHBox() graphics.Size {
	return c.endBox("ui.EndHBox", layout.Horizontal)
}

// BeginVBox opens a vertical box at the current position. A negative gap
// selects the theme's default spacing.
func (c *Context) BeginVBox(gap float64) {
	f := c.ensureFrame("ui.BeginVBox")
	if f == nil {
		return
	}
	f.layout.Push(layout.NewVBox(f.layout.CurrentPosition(), c.resolveGap(gap)))
}

// EndVBox closes the innermost container, which must be a VBox, and
// advances the parent cursor by its occupied size.
func (c *Context) EndVBox() graphics.Size {
	return c.endBox("ui.EndVBox", layout.Vertical)
}

func (c *Context) resolveGap(gap float64) float64 {
	if gap < 0 {
		return c.theme.Metrics.Spacing
	}
	return gap
}

func (c *Context) endBox(op string, axis layout.Axis) graphics.Size {
	f := c.ensureFrame(op)
	if f == nil {
		return graphics.Size{}
	}
	cont, size, ok := f.layout.Pop()
	if !ok {
		errors.Report(&errors.UIError{Op: op, Kind: errors.KindLayout, Err: stderrors.New("End without a matching Begin")})
		return graphics.Size{}
	}
	if box, isBox := cont.(*layout.Box); !isBox || box.Axis() != axis {
		errors.Report(&errors.UIError{
			Op:   op,
			Kind: errors.KindLayout,
			Err:  fmt.Errorf("closed container is %T, not the expected box", cont),
		})
	}
	f.layout.Advance(size)
	return size
}

// BeginGrid opens a grid at the current position spanning the available
// width, with a fixed cell width derived from the column count. Negative
// gaps select the theme's default spacing.
func (c *Context) BeginGrid(columns int, gapX, gapY float64) {
	f := c.ensureFrame("ui.BeginGrid")
	if f == nil {
		return
	}
	pos := f.layout.CurrentPosition()
	f.layout.Push(layout.NewGrid(pos, f.availableWidth(), columns, c.resolveGap(gapX), c.resolveGap(gapY)))
}

// EndGrid closes the innermost container, which must be a grid, and
// advances the parent by its occupied size, the still-open last row
// included.
func (c *Context) EndGrid() graphics.Size {
	f := c.ensureFrame("ui.EndGrid")
	if f == nil {
		return graphics.Size{}
	}
	cont, size, ok := f.layout.Pop()
	if !ok {
		errors.Report(&errors.UIError{Op: "ui.EndGrid", Kind: errors.KindLayout, Err: stderrors.New("EndGrid without a matching BeginGrid")})
		return graphics.Size{}
	}
	if _, isGrid := cont.(*layout.Grid); !isGrid {
		errors.Report(&errors.UIError{
			Op:   "ui.EndGrid",
			Kind: errors.KindLayout,
			Err:  fmt.Errorf("closed container is %T, not a grid", cont),
		})
	}
	f.layout.Advance(size)
	return size
}

// scrollState is the persisted offset of one scroll region, plus the
// previous frame's content size so a wheel delta can be clamped on the
// frame it arrives rather than one frame late.
type scrollState struct {
	Offset  graphics.Offset
	Content graphics.Size
}

// BeginScrollRegion opens a scrolling viewport of the given size at the
// current position. The scroll offset persists under name across frames,
// clamped against the content size at EndScrollRegion. Children scrolled
// out of the viewport are culled but advance layout identically.
func (c *Context) BeginScrollRegion(name string, size graphics.Size) {
	f := c.ensureFrame("ui.BeginScrollRegion")
	if f == nil {
		return
	}
	id := state.NewID(name, kindScroll)
	st := state.StateOf[scrollState](c.store, id)
	pos := f.layout.CurrentPosition()
	viewport := graphics.RectFromOffsetSize(pos, size)

	if !f.measuring && viewport.Contains(f.input.Pointer) {
		st.Offset.X -= f.input.ScrollDelta.X
		st.Offset.Y -= f.input.ScrollDelta.Y
		if st.Content.Width > 0 || st.Content.Height > 0 {
			st.Offset = layout.ClampScroll(st.Offset, st.Content, size)
		}
	}

	if f.layout.IsRectVisible(viewport) {
		f.renderer.DrawBox(viewport, render.BoxStyle{Fill: c.theme.Palette.Surface})
	}
	f.renderer.PushClipRect(viewport)
	f.layout.PushClip(viewport)
	f.layout.Push(layout.NewScrollRegion(viewport, st.Offset, c.theme.Metrics.Spacing))
	f.scrollRegions = append(f.scrollRegions, id)
}

// EndScrollRegion closes the innermost container, which must be a scroll
// region: clamps and persists the offset against the now-known content
// size, draws the scrollbar, pops the clip, and advances the parent by the
// viewport size.
func (c *Context) EndScrollRegion() {
	f := c.ensureFrame("ui.EndScrollRegion")
	if f == nil {
		return
	}
	cont, content, ok := f.layout.Pop()
	sr, isScroll := cont.(*layout.ScrollRegion)
	if !ok || !isScroll {
		errors.Report(&errors.UIError{
			Op:   "ui.EndScrollRegion",
			Kind: errors.KindLayout,
			Err:  stderrors.New("EndScrollRegion without a matching BeginScrollRegion"),
		})
		return
	}
	viewport := sr.Viewport()

	if n := len(f.scrollRegions); n > 0 {
		id := f.scrollRegions[n-1]
		f.scrollRegions = f.scrollRegions[:n-1]
		st := state.StateOf[scrollState](c.store, id)
		st.Offset = layout.ClampScroll(st.Offset, content, viewport.Size())
		st.Content = content
	}

	if content.Height > viewport.Height() && f.layout.IsRectVisible(viewport) {
		c.drawScrollbar(viewport, content, sr.Offset())
	}
	f.renderer.PopClipRect()
	f.layout.PopClip()
	f.layout.Advance(viewport.Size())
}

func (c *Context) drawScrollbar(viewport graphics.Rect, content graphics.Size, offset graphics.Offset) {
	f := c.frame
	m := c.theme.Metrics
	gutter := graphics.Rect{
		Left:   viewport.Right - m.ScrollbarWidth,
		Top:    viewport.Top,
		Right:  viewport.Right,
		Bottom: viewport.Bottom,
	}
	f.renderer.DrawBox(gutter, render.BoxStyle{Fill: c.theme.Palette.SurfaceRaised})

	ratio := viewport.Height() / content.Height
	thumbH := max(ratio*viewport.Height(), m.ScrollbarWidth)
	maxScroll := content.Height - viewport.Height()
	t := 0.0
	if maxScroll > 0 {
		t = graphics.Clamp(offset.Y/maxScroll, 0, 1)
	}
	thumbTop := viewport.Top + t*(viewport.Height()-thumbH)
	thumb := graphics.RectFromLTWH(gutter.Left+2, thumbTop, m.ScrollbarWidth-4, thumbH)
	f.renderer.DrawBox(thumb, render.BoxStyle{Fill: c.theme.Palette.Border, CornerRadius: (m.ScrollbarWidth - 4) / 2})
}

// panelState is the persisted extent of one resizable panel.
type panelState struct {
	Extent float64
}

// BeginPanel opens a resizable panel anchored to an edge of the viewport.
// Its extent persists under name, starts at defaultExtent, and is
// live-adjusted within [minExtent, maxExtent] by dragging the free-edge
// border. Panels are screen-anchored: closing one does not advance the
// parent cursor.
func (c *Context) BeginPanel(name string, edge layout.Edge, defaultExtent, minExtent, maxExtent float64) {
	f := c.ensureFrame("ui.BeginPanel")
	if f == nil {
		return
	}
	id := state.NewID(name, kindPanel)
	st := state.StateOf[panelState](c.store, id)
	if st.Extent == 0 {
		st.Extent = graphics.Clamp(defaultExtent, minExtent, maxExtent)
	}

	panel := layout.NewResizablePanel(f.viewport, edge, st.Extent, c.theme.Metrics.Spacing)
	border := panel.BorderRect(c.theme.Metrics.PanelBorder)
	w := c.interact(id, border, PriorityPanelBorder)
	if w.active && f.input.ButtonDown(input.MouseButtonLeft) {
		st.Extent = panel.AdjustExtent(f.input.PointerDelta(), minExtent, maxExtent)
		panel = layout.NewResizablePanel(f.viewport, edge, st.Extent, c.theme.Metrics.Spacing)
		border = panel.BorderRect(c.theme.Metrics.PanelBorder)
	}

	bounds := panel.Bounds()
	p := c.theme.Palette
	if f.layout.IsRectVisible(bounds) {
		f.renderer.DrawBox(bounds, render.BoxStyle{Fill: p.Surface})
		f.renderer.DrawBox(border, render.BoxStyle{Fill: c.fillFor(id, w, p.Border)})
	}
	f.renderer.PushClipRect(bounds)
	f.layout.PushClip(bounds)
	f.layout.Push(panel)
}

// EndPanel closes the innermost container, which must be a resizable
// panel, and pops its clip.
func (c *Context) EndPanel() graphics.Size {
	f := c.ensureFrame("ui.EndPanel")
	if f == nil {
		return graphics.Size{}
	}
	cont, size, ok := f.layout.Pop()
	if _, isPanel := cont.(*layout.ResizablePanel); !ok || !isPanel {
		errors.Report(&errors.UIError{
			Op:   "ui.EndPanel",
			Kind: errors.KindLayout,
			Err:  stderrors.New("EndPanel without a matching BeginPanel"),
		})
		return graphics.Size{}
	}
	f.renderer.PopClipRect()
	f.layout.PopClip()
	return size
}
