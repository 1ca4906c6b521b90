package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
)

import stderrors "errors"

// colorSwatches is the preset palette the color selector popup offers.
var colorSwatches = []graphics.Color{
	graphics.RGB(0x00, 0x00, 0x00), graphics.RGB(0x44, 0x44, 0x44),
	graphics.RGB(0x88, 0x88, 0x88), graphics.RGB(0xFF, 0xFF, 0xFF),
	graphics.RGB(0xE5, 0x39, 0x35), graphics.RGB(0xFB, 0x8C, 0x00),
	graphics.RGB(0xFD, 0xD8, 0x35), graphics.RGB(0x43, 0xA0, 0x47),
	graphics.RGB(0x00, 0x89, 0x7B), graphics.RGB(0x1E, 0x88, 0xE5),
	graphics.RGB(0x39, 0x49, 0xAB), graphics.RGB(0x8E, 0x24, 0xAA),
	graphics.RGB(0xD8, 0x1B, 0x60), graphics.RGB(0x6D, 0x4C, 0x41),
	graphics.RGB(0x54, 0x6E, 0x7A), graphics.RGB(0xFF, 0x57, 0x22),
}

const swatchColumns = 4

// ColorSelector places a color swatch that opens a preset palette popup
// when clicked. Choosing a palette entry writes it into *color; returns
// true on the frame the color changed.
func (c *Context) ColorSelector(name string, color *graphics.Color) bool {
	f := c.ensureFrame("ui.ColorSelector")
	if f == nil {
		return false
	}
	if color == nil {
		errors.Report(&errors.UIError{
			Op:     "ui.ColorSelector",
			Kind:   errors.KindMisuse,
			Err:    stderrors.New("nil color pointer"),
			Widget: name,
		})
		color = new(graphics.Color)
	}
	id := state.NewID(name, kindColor)
	m := c.theme.Metrics
	pos := f.layout.CurrentPosition()
	size := graphics.Size{Width: m.ButtonHeight, Height: m.ButtonHeight}
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	if w.released {
		c.store.ClearActivePress(id)
		c.openColorPopup(id, graphics.Offset{X: bounds.Left, Y: bounds.Bottom})
	}

	changed := false
	if !f.measuring {
		if index, ok := c.popups.TakeResult(id); ok && index >= 0 && index < len(colorSwatches) {
			if colorSwatches[index] != *color {
				*color = colorSwatches[index]
				changed = true
			}
		}
	}

	if w.visible {
		p := c.theme.Palette
		f.renderer.DrawBox(bounds, render.BoxStyle{
			Fill:         *color,
			Border:       p.Border,
			BorderWidth:  m.BorderWidth,
			CornerRadius: m.CornerRadius,
		})
	}
	f.layout.Advance(size)
	return changed
}

func (c *Context) openColorPopup(owner state.ID, at graphics.Offset) {
	m := c.theme.Metrics
	cell := m.ButtonHeight
	rows := (len(colorSwatches) + swatchColumns - 1) / swatchColumns
	pad := m.Padding
	bounds := graphics.RectFromLTWH(at.X, at.Y,
		float64(swatchColumns)*cell+2*pad, float64(rows)*cell+2*pad)
	c.popups.Open(owner, bounds, func() {
		c.drawColorPopup(owner, bounds)
	})
}

func (c *Context) drawColorPopup(owner state.ID, bounds graphics.Rect) {
	f := c.frame
	if f == nil {
		return
	}
	m := c.theme.Metrics
	p := c.theme.Palette
	cell := m.ButtonHeight
	f.renderer.DrawBox(bounds, render.BoxStyle{
		Fill:         p.SurfaceRaised,
		Border:       p.Border,
		BorderWidth:  m.BorderWidth,
		CornerRadius: m.CornerRadius,
	})
	// The padding band between swatches belongs to the popup too; claim it
	// so a press there cannot fall through to a widget underneath. A press
	// on a swatch submits later and wins the tie.
	if bounds.Contains(f.input.Pointer) {
		c.store.SetPotentialTarget(owner)
		if f.input.ButtonJustPressed(input.MouseButtonLeft) {
			c.router.Submit(owner, PriorityOverlay)
		}
	}
	for i, swatch := range colorSwatches {
		col := i % swatchColumns
		row := i / swatchColumns
		r := graphics.RectFromLTWH(
			bounds.Left+m.Padding+float64(col)*cell,
			bounds.Top+m.Padding+float64(row)*cell,
			cell-2, cell-2)
		hovered := r.Contains(f.input.Pointer)
		border := p.Border
		if hovered {
			border = p.Focus
			c.store.SetPotentialTarget(owner.Index(i))
			if f.input.ButtonJustPressed(input.MouseButtonLeft) {
				c.router.Submit(owner.Index(i), PriorityOverlay)
				c.popups.Select(i)
			}
		}
		f.renderer.DrawBox(r, render.BoxStyle{
			Fill:         swatch,
			Border:       border,
			BorderWidth:  m.BorderWidth,
			CornerRadius: m.CornerRadius / 2,
		})
	}
}
