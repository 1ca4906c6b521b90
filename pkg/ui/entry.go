package ui

import (
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
)

import stderrors "errors"

// entryState is the persisted editing state of one text entry.
type entryState struct {
	// Caret is the rune index the caret sits before.
	Caret int
}

// TextEntry places a single-line editable text field filling the available
// width. Clicking focuses it and positions the caret; while focused, typed
// characters insert at the caret and Backspace, Delete, Left, Right, Home,
// and End edit and move it. Enter and Escape drop focus. It returns true on
// frames *text changed.
func (c *Context) TextEntry(name string, content *string) bool {
	f := c.ensureFrame("ui.TextEntry")
	if f == nil {
		return false
	}
	if content == nil {
		errors.Report(&errors.UIError{
			Op:     "ui.TextEntry",
			Kind:   errors.KindMisuse,
			Err:    stderrors.New("nil text pointer"),
			Widget: name,
		})
		content = new(string)
	}
	id := state.NewID(name, kindEntry)
	st := state.StateOf[entryState](c.store, id)
	m := c.theme.Metrics

	pos := f.layout.CurrentPosition()
	size := graphics.Size{Width: f.availableWidth(), Height: m.EntryHeight}
	bounds := graphics.RectFromOffsetSize(pos, size)
	w := c.interact(id, bounds, PriorityDefault)

	style := textStyle(c.theme.Body)
	textOrigin := graphics.Offset{X: pos.X + m.Padding, Y: pos.Y + (size.Height-c.theme.Body.Size)/2}
	textMax := graphics.Size{Width: size.Width - 2*m.Padding, Height: size.Height}
	lay := c.text.TextLayout(*content, style, textMax, render.AlignStart)

	if w.released {
		c.store.SetFocus(id)
		st.Caret = lay.CaretForX(f.input.Pointer.X - textOrigin.X)
		c.store.ClearActivePress(id)
	}

	focused := c.store.IsFocused(id)
	changed := false
	if focused && !f.measuring {
		runes := []rune(*content)
		caret := graphics.ClampInt(st.Caret, 0, len(runes))
		snap := f.input

		for _, r := range snap.Typed {
			runes = append(runes[:caret:caret], append([]rune{r}, runes[caret:]...)...)
			caret++
			changed = true
		}
		if snap.KeyPressed(input.KeyBackspace) && caret > 0 {
			runes = append(runes[:caret-1:caret-1], runes[caret:]...)
			caret--
			changed = true
		}
		if snap.KeyPressed(input.KeyDelete) && caret < len(runes) {
			runes = append(runes[:caret:caret], runes[caret+1:]...)
			changed = true
		}
		if snap.KeyPressed(input.KeyLeft) && caret > 0 {
			caret--
		}
		if snap.KeyPressed(input.KeyRight) && caret < len(runes) {
			caret++
		}
		if snap.KeyPressed(input.KeyHome) {
			caret = 0
		}
		if snap.KeyPressed(input.KeyEnd) {
			caret = len(runes)
		}
		if snap.KeyPressed(input.KeyEnter) || snap.KeyPressed(input.KeyEscape) {
			c.store.ClearFocus()
			focused = false
		}

		st.Caret = caret
		if changed {
			*content = string(runes)
			lay = c.text.TextLayout(*content, style, textMax, render.AlignStart)
		}
	}

	if w.visible {
		p := c.theme.Palette
		borderColor := p.Border
		if focused {
			borderColor = p.Focus
		}
		f.renderer.DrawBox(bounds, render.BoxStyle{
			Fill:         p.Surface,
			Border:       borderColor,
			BorderWidth:  m.BorderWidth,
			CornerRadius: m.CornerRadius,
		})
		f.renderer.DrawText(textOrigin, *content, style, render.AlignStart, textMax, c.theme.Body.Color)
		if focused {
			caretX := textOrigin.X + lay.XForCaret(st.Caret)
			f.renderer.DrawLine(
				graphics.Offset{X: caretX, Y: bounds.Top + 4},
				graphics.Offset{X: caretX, Y: bounds.Bottom - 4},
				1, c.theme.Body.Color)
		}
	}
	f.layout.Advance(size)
	return changed
}
