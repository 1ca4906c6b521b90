package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/layout"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
)

import stderrors "errors"

// treeState is the persisted expansion state of one tree node.
type treeState struct {
	Expanded bool
}

// BeginTreeNode places a collapsible row and returns whether it is
// expanded. Clicking the row toggles it. When it returns true, the caller
// must emit the children and close with EndTreeNode; when it returns false,
// EndTreeNode must not be called:
//
//	if ctx.BeginTreeNode("fs/usr", "usr") {
//	    ctx.Label("bin")
//	    ctx.EndTreeNode()
//	}
func (c *Context) BeginTreeNode(name, label string) bool {
	f := c.ensureFrame("ui.BeginTreeNode")
	if f == nil {
		return false
	}
	id := state.NewID(name, kindTree)
	st := state.StateOf[treeState](c.store, id)
	m := c.theme.Metrics

	pos := f.layout.CurrentPosition()
	size := graphics.Size{Width: f.availableWidth(), Height: m.MenuItemHeight}
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	if w.released {
		st.Expanded = !st.Expanded
		c.store.ClearActivePress(id)
	}

	if w.visible {
		p := c.theme.Palette
		if w.hovered || w.active {
			f.renderer.DrawBox(bounds, render.BoxStyle{Fill: c.fillFor(id, w, p.Surface)})
		}
		c.drawTreeArrow(bounds, st.Expanded)
		labelSize := c.text.MeasureText(label, textStyle(c.theme.Body))
		labelPos := graphics.Offset{
			X: pos.X + m.MenuItemHeight,
			Y: pos.Y + (size.Height-labelSize.Height)/2,
		}
		f.renderer.DrawText(labelPos, label, textStyle(c.theme.Body), render.AlignStart, labelSize, c.theme.Body.Color)
	}
	f.layout.Advance(size)

	if st.Expanded {
		childOrigin := f.layout.CurrentPosition()
		childOrigin.X += m.TreeIndent
		f.layout.Push(layout.NewVBox(childOrigin, c.theme.Metrics.Spacing))
	}
	return st.Expanded
}

// EndTreeNode closes an expanded tree node's child box and advances the
// parent by the children's occupied size, indent included.
func (c *Context) EndTreeNode() {
	f := c.ensureFrame("ui.EndTreeNode")
	if f == nil {
		return
	}
	cont, size, ok := f.layout.Pop()
	if box, isBox := cont.(*layout.Box); !ok || !isBox || box.Axis() != layout.Vertical {
		errors.Report(&errors.UIError{
			Op:   "ui.EndTreeNode",
			Kind: errors.KindLayout,
			Err:  stderrors.New("EndTreeNode without a matching expanded BeginTreeNode"),
		})
		return
	}
	f.layout.Advance(graphics.Size{
		Width:  size.Width + c.theme.Metrics.TreeIndent,
		Height: size.Height,
	})
}

// drawTreeArrow draws the expansion chevron in the row's leading square.
func (c *Context) drawTreeArrow(row graphics.Rect, expanded bool) {
	f := c.frame
	s := row.Height()
	cx := row.Left + s/2
	cy := row.Top + s/2
	color := c.theme.Palette.TextMuted
	if expanded {
		f.renderer.DrawLine(graphics.Offset{X: cx - 4, Y: cy - 2}, graphics.Offset{X: cx, Y: cy + 3}, 1.5, color)
		f.renderer.DrawLine(graphics.Offset{X: cx, Y: cy + 3}, graphics.Offset{X: cx + 4, Y: cy - 2}, 1.5, color)
	} else {
		f.renderer.DrawLine(graphics.Offset{X: cx - 2, Y: cy - 4}, graphics.Offset{X: cx + 3, Y: cy}, 1.5, color)
		f.renderer.DrawLine(graphics.Offset{X: cx + 3, Y: cy}, graphics.Offset{X: cx - 2, Y: cy + 4}, 1.5, color)
	}
}
