package ui

import (
	"time"

	"github.com/go-drift/ember/pkg/animation"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
	"github.com/go-drift/ember/pkg/theme"
)

// Widget state kinds. An id looked up under a different kind than it was
// created with is a reported state error, not silent aliasing.
const (
	kindButton   state.Kind = "button"
	kindCheckbox state.Kind = "checkbox"
	kindSlider   state.Kind = "slider"
	kindEntry    state.Kind = "entry"
	kindTree     state.Kind = "tree"
	kindColor    state.Kind = "color"
	kindMenu     state.Kind = "menu"
	kindDataGrid state.Kind = "datagrid"
	kindScroll   state.Kind = "scroll"
	kindPanel    state.Kind = "panel"
)

// Claim priorities. Overlapping same-priority claims resolve to the latest
// submission, which is topmost draw order.
const (
	// PriorityDefault is the priority of ordinary widgets.
	PriorityDefault = 0
	// PriorityPanelBorder lets a panel's drag border win against widgets
	// drawn along its edge.
	PriorityPanelBorder = 10
	// PriorityOverlay is used by popup-drawn widgets, which must win
	// against everything beneath the overlay.
	PriorityOverlay = 100
)

// hoverFade is the duration of the hover color animation.
const hoverFade = 120 * time.Millisecond

// interaction is the per-frame input derived for one widget.
type interaction struct {
	bounds  graphics.Rect
	visible bool

	hovered bool
	// active means this widget owns the active press (committed by a
	// previous frame's arbitration).
	active bool
	// activated means the press-mode activation fired for this widget this
	// frame.
	activated bool
	// released means the pointer came up this frame over this widget while
	// it owned the active press: the release-mode trigger.
	released bool
}

// interact performs the shared input bookkeeping for a widget occupying
// bounds: hover registration, press claims, and activation reads.
//
// Culled widgets participate identically; only draw and measure work is
// skipped based on the visible flag. During a measurement dry run the whole
// interaction is suppressed so the real pass sees each event exactly once.
func (c *Context) interact(id state.ID, bounds graphics.Rect, priority int) interaction {
	f := c.frame
	w := interaction{bounds: bounds, visible: f.layout.IsRectVisible(bounds)}
	if f.measuring {
		return w
	}
	c.store.Touch(id)

	snap := f.input
	clip := f.layout.ActiveClip()
	w.hovered = bounds.Contains(snap.Pointer) && clip.Contains(snap.Pointer)
	if w.hovered {
		c.store.SetPotentialTarget(id)
		if snap.ButtonJustPressed(input.MouseButtonLeft) {
			c.router.Submit(id, priority)
		}
	}
	w.active = c.store.IsActivePressed(id)
	w.activated = c.router.TakeActivation(id)
	w.released = w.hovered && w.active && snap.ButtonJustReleased(input.MouseButtonLeft)
	return w
}

// fillFor blends the widget base fill with the theme's hover and pressed
// overlays, fading the hover transition through the animation scheduler.
func (c *Context) fillFor(id state.ID, w interaction, base graphics.Color) graphics.Color {
	p := c.theme.Palette
	if w.active {
		return blendOver(base, p.Pressed)
	}
	if c.frame.measuring {
		return base
	}
	t := c.anims.Animate(id, "hover", boolTarget(w.hovered), hoverFade, animation.EaseOut)
	if t <= 0 {
		return base
	}
	return graphics.LerpColor(base, blendOver(base, p.Hover), t)
}

// blendOver composites a translucent overlay color onto base.
func blendOver(base, overlay graphics.Color) graphics.Color {
	return graphics.LerpColor(base, overlay.WithAlpha(1), overlay.Alpha())
}

func boolTarget(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// textStyle converts a theme typography role to a renderer text style.
func textStyle(s theme.TextStyle) render.TextStyle {
	return render.TextStyle{Family: s.Family, Size: s.Size}
}

// availableWidth returns the horizontal space from the current cursor to
// the active clip's right edge. Widgets that fill their row size to this.
func (f *frameState) availableWidth() float64 {
	pos := f.layout.CurrentPosition()
	w := f.layout.ActiveClip().Right - pos.X
	if w < 0 {
		return 0
	}
	return w
}
