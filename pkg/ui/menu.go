package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
)

import stderrors "errors"

// MenuButton places a button that opens a dropdown menu of items beneath
// itself. It returns the selected item index on the frame after a selection
// is made in the menu; ok is false on every other frame. An empty item list
// is reported and the menu never opens.
func (c *Context) MenuButton(name, label string, items []string) (index int, ok bool) {
	f := c.ensureFrame("ui.MenuButton")
	if f == nil {
		return 0, false
	}
	id := state.NewID(name, kindMenu)
	m := c.theme.Metrics
	textSize := c.text.MeasureText(label, textStyle(c.theme.Body))
	size := graphics.Size{Width: textSize.Width + 2*m.Padding + m.MenuItemHeight/2, Height: m.ButtonHeight}
	pos := f.layout.CurrentPosition()
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	if w.released {
		c.store.ClearActivePress(id)
		c.openMenu(id, graphics.Offset{X: bounds.Left, Y: bounds.Bottom}, items)
	}

	if w.visible {
		p := c.theme.Palette
		f.renderer.DrawBox(bounds, render.BoxStyle{
			Fill:         c.fillFor(id, w, p.SurfaceRaised),
			Border:       p.Border,
			BorderWidth:  m.BorderWidth,
			CornerRadius: m.CornerRadius,
		})
		f.renderer.DrawText(pos, label, textStyle(c.theme.Body), render.AlignCenter, size, c.theme.Body.Color)
	}
	f.layout.Advance(size)

	if f.measuring {
		return 0, false
	}
	return c.popups.TakeResult(id)
}

// OpenContextMenu opens a menu popup at an arbitrary screen position, for
// right-click style menus. Read the selection with ContextMenuResult under
// the same name.
func (c *Context) OpenContextMenu(name string, at graphics.Offset, items []string) {
	f := c.ensureFrame("ui.OpenContextMenu")
	if f == nil || f.measuring {
		return
	}
	c.openMenu(state.NewID(name, kindMenu), at, items)
}

// ContextMenuResult returns the pending selection for a menu opened under
// name, consuming it.
func (c *Context) ContextMenuResult(name string) (index int, ok bool) {
	f := c.ensureFrame("ui.ContextMenuResult")
	if f == nil || f.measuring {
		return 0, false
	}
	return c.popups.TakeResult(state.NewID(name, kindMenu))
}

func (c *Context) openMenu(owner state.ID, at graphics.Offset, items []string) {
	if len(items) == 0 {
		errors.Report(&errors.UIError{
			Op:     "ui.OpenContextMenu",
			Kind:   errors.KindPopup,
			Err:    stderrors.New("empty item list"),
			Widget: owner.String(),
		})
		return
	}
	m := c.theme.Metrics
	width := 0.0
	for _, item := range items {
		if s := c.text.MeasureText(item, textStyle(c.theme.Body)); s.Width > width {
			width = s.Width
		}
	}
	width += 2 * m.Padding
	bounds := graphics.RectFromLTWH(at.X, at.Y, width, float64(len(items))*m.MenuItemHeight)
	// Copy so a caller-mutated slice cannot change an open menu.
	menuItems := append([]string(nil), items...)
	c.popups.Open(owner, bounds, func() {
		c.drawMenu(owner, bounds, menuItems)
	})
}

// drawMenu is the deferred popup draw callback: it runs at EndFrame, above
// every normal widget.
func (c *Context) drawMenu(owner state.ID, bounds graphics.Rect, items []string) {
	f := c.frame
	if f == nil {
		return
	}
	m := c.theme.Metrics
	p := c.theme.Palette
	f.renderer.DrawBox(bounds, render.BoxStyle{
		Fill:         p.SurfaceRaised,
		Border:       p.Border,
		BorderWidth:  m.BorderWidth,
		CornerRadius: m.CornerRadius,
	})
	for i, item := range items {
		row := graphics.Rect{
			Left:   bounds.Left,
			Top:    bounds.Top + float64(i)*m.MenuItemHeight,
			Right:  bounds.Right,
			Bottom: bounds.Top + float64(i+1)*m.MenuItemHeight,
		}
		hovered := row.Contains(f.input.Pointer)
		if hovered {
			c.store.SetPotentialTarget(owner.Index(i))
			f.renderer.DrawBox(row, render.BoxStyle{Fill: blendOver(p.SurfaceRaised, p.Hover)})
			if f.input.ButtonJustPressed(input.MouseButtonLeft) {
				c.router.Submit(owner.Index(i), PriorityOverlay)
				c.popups.Select(i)
			}
		}
		itemSize := c.text.MeasureText(item, textStyle(c.theme.Body))
		itemPos := graphics.Offset{
			X: row.Left + m.Padding,
			Y: row.Top + (m.MenuItemHeight-itemSize.Height)/2,
		}
		f.renderer.DrawText(itemPos, item, textStyle(c.theme.Body), render.AlignStart, itemSize, c.theme.Body.Color)
	}
}
