package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
	"github.com/go-drift/ember/pkg/theme"
)

import stderrors "errors"

// Label draws text in the body style and advances the cursor.
func (c *Context) Label(content string) {
	c.LabelStyled(content, c.theme.Body)
}

// LabelStyled draws text in an explicit style.
func (c *Context) LabelStyled(content string, style theme.TextStyle) {
	f := c.ensureFrame("ui.Label")
	if f == nil {
		return
	}
	pos := f.layout.CurrentPosition()
	size := c.text.MeasureText(content, textStyle(style))
	bounds := graphics.RectFromOffsetSize(pos, size)
	if f.layout.IsRectVisible(bounds) {
		f.renderer.DrawText(pos, content, textStyle(style), render.AlignStart, size, style.Color)
	}
	f.layout.Advance(size)
}

// Button places a release-mode button sized to its label. It returns true
// on the frame the pointer is released over the button while the button
// owns the active press.
func (c *Context) Button(name, label string) bool {
	f := c.ensureFrame("ui.Button")
	if f == nil {
		return false
	}
	m := c.theme.Metrics
	textSize := c.text.MeasureText(label, textStyle(c.theme.Body))
	size := graphics.Size{Width: textSize.Width + 2*m.Padding, Height: m.ButtonHeight}
	return c.buttonAt(name, label, size, false)
}

// ButtonSized places a release-mode button with an explicit size.
func (c *Context) ButtonSized(name, label string, size graphics.Size) bool {
	if c.ensureFrame("ui.ButtonSized") == nil {
		return false
	}
	return c.buttonAt(name, label, size, false)
}

// PressButton places a press-mode button: the claim resolved at this
// frame's end fires the activation on the following frame, once the true
// winner among overlapping widgets is known.
func (c *Context) PressButton(name, label string) bool {
	f := c.ensureFrame("ui.PressButton")
	if f == nil {
		return false
	}
	m := c.theme.Metrics
	textSize := c.text.MeasureText(label, textStyle(c.theme.Body))
	size := graphics.Size{Width: textSize.Width + 2*m.Padding, Height: m.ButtonHeight}
	return c.buttonAt(name, label, size, true)
}

func (c *Context) buttonAt(name, label string, size graphics.Size, pressMode bool) bool {
	f := c.frame
	id := state.NewID(name, kindButton)
	pos := f.layout.CurrentPosition()
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	fired := false
	if pressMode {
		fired = w.activated
	} else if w.released {
		fired = true
		c.store.ClearActivePress(id)
	}

	if w.visible {
		p := c.theme.Palette
		f.renderer.DrawBox(bounds, render.BoxStyle{
			Fill:         c.fillFor(id, w, p.SurfaceRaised),
			Border:       p.Border,
			BorderWidth:  c.theme.Metrics.BorderWidth,
			CornerRadius: c.theme.Metrics.CornerRadius,
		})
		f.renderer.DrawText(pos, label, textStyle(c.theme.Body), render.AlignCenter, size, c.theme.Body.Color)
	}
	f.layout.Advance(size)
	return fired
}

// Checkbox places a box with a trailing label and toggles *value on
// activation. It returns true on the frame the value changed. A nil value
// is reported and the checkbox degrades to a static drawing.
func (c *Context) Checkbox(name, label string, value *bool) bool {
	f := c.ensureFrame("ui.Checkbox")
	if f == nil {
		return false
	}
	if value == nil {
		errors.Report(&errors.UIError{
			Op:     "ui.Checkbox",
			Kind:   errors.KindMisuse,
			Err:    stderrors.New("nil value pointer"),
			Widget: name,
		})
		value = new(bool)
	}
	id := state.NewID(name, kindCheckbox)
	m := c.theme.Metrics
	pos := f.layout.CurrentPosition()
	labelSize := c.text.MeasureText(label, textStyle(c.theme.Body))
	size := graphics.Size{
		Width:  m.CheckboxSize + m.Padding + labelSize.Width,
		Height: max(m.CheckboxSize, labelSize.Height),
	}
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	changed := false
	if w.released {
		*value = !*value
		changed = true
		c.store.ClearActivePress(id)
	}

	if w.visible {
		p := c.theme.Palette
		boxTop := pos.Y + (size.Height-m.CheckboxSize)/2
		box := graphics.RectFromLTWH(pos.X, boxTop, m.CheckboxSize, m.CheckboxSize)
		fill := c.fillFor(id, w, p.Surface)
		border := p.Border
		if *value {
			fill = p.Primary
			border = p.Primary
		}
		f.renderer.DrawBox(box, render.BoxStyle{
			Fill:         fill,
			Border:       border,
			BorderWidth:  m.BorderWidth,
			CornerRadius: m.CornerRadius / 2,
		})
		if *value {
			// Checkmark as two strokes.
			x, y, s := box.Left, box.Top, m.CheckboxSize
			f.renderer.DrawLine(
				graphics.Offset{X: x + 0.25*s, Y: y + 0.55*s},
				graphics.Offset{X: x + 0.45*s, Y: y + 0.75*s},
				2, p.OnPrimary)
			f.renderer.DrawLine(
				graphics.Offset{X: x + 0.45*s, Y: y + 0.75*s},
				graphics.Offset{X: x + 0.78*s, Y: y + 0.28*s},
				2, p.OnPrimary)
		}
		labelPos := graphics.Offset{X: pos.X + m.CheckboxSize + m.Padding, Y: pos.Y + (size.Height-labelSize.Height)/2}
		f.renderer.DrawText(labelPos, label, textStyle(c.theme.Body), render.AlignStart, labelSize, c.theme.Body.Color)
	}
	f.layout.Advance(size)
	return changed
}

// Slider places a horizontal slider filling the available width and writes
// the dragged value into *value, clamped to [min, max]. It returns true on
// frames the value changed. An inverted range is reported and the slider
// degrades to a static drawing.
func (c *Context) Slider(name string, value *float64, lo, hi float64) bool {
	f := c.ensureFrame("ui.Slider")
	if f == nil {
		return false
	}
	if value == nil || lo >= hi {
		errors.Report(&errors.UIError{
			Op:     "ui.Slider",
			Kind:   errors.KindMisuse,
			Err:    stderrors.New("nil value pointer or inverted range"),
			Widget: name,
		})
		if value == nil {
			value = new(float64)
		}
		if lo >= hi {
			hi = lo + 1
		}
	}
	id := state.NewID(name, kindSlider)
	m := c.theme.Metrics
	pos := f.layout.CurrentPosition()
	size := graphics.Size{Width: f.availableWidth(), Height: m.SliderHeight}
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	knob := m.SliderKnobSize
	trackW := size.Width - knob
	changed := false
	if w.active && f.input.ButtonDown(input.MouseButtonLeft) && trackW > 0 {
		t := graphics.Clamp((f.input.Pointer.X-bounds.Left-knob/2)/trackW, 0, 1)
		next := lo + t*(hi-lo)
		if next != *value {
			*value = next
			changed = true
		}
	}
	*value = graphics.Clamp(*value, lo, hi)

	if w.visible {
		p := c.theme.Palette
		midY := pos.Y + size.Height/2
		f.renderer.DrawLine(
			graphics.Offset{X: bounds.Left + knob/2, Y: midY},
			graphics.Offset{X: bounds.Right - knob/2, Y: midY},
			2, p.Border)
		t := (*value - lo) / (hi - lo)
		knobX := bounds.Left + t*trackW
		f.renderer.DrawLine(
			graphics.Offset{X: bounds.Left + knob/2, Y: midY},
			graphics.Offset{X: knobX + knob/2, Y: midY},
			2, p.Primary)
		knobRect := graphics.RectFromLTWH(knobX, midY-knob/2, knob, knob)
		f.renderer.DrawBox(knobRect, render.BoxStyle{
			Fill:         c.fillFor(id, w, p.Primary),
			CornerRadius: knob / 2,
		})
	}
	f.layout.Advance(size)
	return changed
}
