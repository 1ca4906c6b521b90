// Package ui is the immediate-mode frame controller and widget set.
//
// Application code re-describes its interface every frame between BeginFrame
// and EndFrame: container Begin/End pairs position children through the
// layout stack, and one call per widget kind performs placement, input
// handling, state update, and drawing in a single call. The Context session
// object threads the retained pieces (widget state, click arbitration,
// popups, animations) through every call; nothing is ambient or global.
package ui

import (
	"time"

	"github.com/go-drift/ember/pkg/animation"
	"github.com/go-drift/ember/pkg/errors"
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/layout"
	"github.com/go-drift/ember/pkg/popup"
	"github.com/go-drift/ember/pkg/render"
	"github.com/go-drift/ember/pkg/state"
	"github.com/go-drift/ember/pkg/text"
	"github.com/go-drift/ember/pkg/theme"
)

import stderrors "errors"

var errNoFrame = stderrors.New("widget call outside BeginFrame/EndFrame")

// Frame carries one frame's inputs and capabilities into BeginFrame.
type Frame struct {
	// Renderer draws this frame. Nil degrades to the no-op renderer.
	Renderer render.Renderer
	// Input is the frame's immutable snapshot. Nil degrades to empty input.
	Input *input.Snapshot
	// Viewport is the drawable screen area.
	Viewport graphics.Rect
	// Elapsed is the wall time since the previous frame, for animations.
	Elapsed time.Duration
}

// frameState is the per-frame transient half of a Context, alive between
// BeginFrame and EndFrame.
type frameState struct {
	renderer render.Renderer
	input    *input.Snapshot
	layout   *layout.Stack
	viewport graphics.Rect

	// measuring is set while a dry run executes; input accounting and
	// popup/result traffic are suppressed so the real pass sees them once.
	measuring bool

	// scrollRegions tracks the ids of open scroll regions so EndScrollRegion
	// can persist the clamped offset.
	scrollRegions []state.ID
}

// Context is the session object for one UI instance. Construct once at
// startup and thread through every call; all retained cross-frame state
// lives here.
type Context struct {
	store  *state.Store
	router *input.Router
	popups *popup.Manager
	modals *popup.ModalHost
	anims  *animation.Scheduler
	theme  *theme.ThemeData
	text   render.TextService

	// elapsed accumulates frame deltas into the total scheduler time.
	elapsed time.Duration

	frame *frameState
}

// NewContext creates a session. A nil theme selects the default light
// theme; a nil text service selects the shared face service.
func NewContext(th *theme.ThemeData, ts render.TextService) *Context {
	if th == nil {
		th = theme.DefaultLightTheme()
	}
	if ts == nil {
		ts = text.DefaultService()
	}
	return &Context{
		store:  state.NewStore(),
		router: input.NewRouter(),
		popups: popup.NewManager(),
		modals: popup.NewModalHost(),
		anims:  animation.NewScheduler(),
		theme:  th,
		text:   ts,
	}
}

// Store exposes the widget state store.
func (c *Context) Store() *state.Store {
	return c.store
}

// Animations exposes the animation scheduler.
func (c *Context) Animations() *animation.Scheduler {
	return c.anims
}

// Popups exposes the popup manager.
func (c *Context) Popups() *popup.Manager {
	return c.popups
}

// Modals exposes the modal window host.
func (c *Context) Modals() *popup.ModalHost {
	return c.modals
}

// OpenModalWindow opens a modal child window over the interface. An
// already-open window is replaced and its closed callback receives
// popup.ModalDismissed. draw runs each frame at EndFrame, above the main
// tree.
func (c *Context) OpenModalWindow(title string, width, height float64, draw func(), closed func(result int)) {
	c.modals.Open(title, width, height, draw, closed)
}

// CloseModalWindow closes the open modal window, delivering result to its
// closed callback.
func (c *Context) CloseModalWindow(result int) {
	c.modals.Close(result)
}

// IsModalWindowOpen reports whether a modal window is open.
func (c *Context) IsModalWindowOpen() bool {
	return c.modals.IsOpen()
}

// Theme returns the active theme.
func (c *Context) Theme() *theme.ThemeData {
	return c.theme
}

// SetTheme swaps the active theme. Takes effect from the next widget call.
func (c *Context) SetTheme(th *theme.ThemeData) {
	if th != nil {
		c.theme = th
	}
}

// Text returns the text measurement service.
func (c *Context) Text() render.TextService {
	return c.text
}

// InFrame reports whether a frame is open.
func (c *Context) InFrame() bool {
	return c.frame != nil
}

// BeginFrame opens a frame: captures the snapshot and capabilities,
// advances animations by the elapsed time, rolls the click arbiter's
// committed winner into this frame's activation offer, and resets the
// layout and clip stacks.
//
// Calling BeginFrame with a frame already open is reported and the stale
// frame is force-ended first.
func (c *Context) BeginFrame(frame Frame) {
	if c.frame != nil {
		errors.Report(&errors.UIError{
			Op:   "ui.BeginFrame",
			Kind: errors.KindMisuse,
			Err:  stderrors.New("BeginFrame while a frame is already open"),
		})
		c.EndFrame()
	}
	if frame.Renderer == nil {
		errors.Report(&errors.UIError{
			Op:   "ui.BeginFrame",
			Kind: errors.KindMisuse,
			Err:  stderrors.New("nil renderer, drawing disabled for this frame"),
		})
		frame.Renderer = render.NoopRenderer{}
	}
	if frame.Input == nil {
		errors.Report(&errors.UIError{
			Op:   "ui.BeginFrame",
			Kind: errors.KindMisuse,
			Err:  stderrors.New("nil input snapshot, input disabled for this frame"),
		})
		frame.Input = &input.Snapshot{}
	}

	c.store.BeginFrame()
	c.router.BeginFrame()
	c.elapsed += frame.Elapsed
	c.anims.Advance(c.elapsed)
	c.popups.BeginFrame(c.store.Frame())

	c.frame = &frameState{
		renderer: frame.Renderer,
		input:    frame.Input,
		layout:   layout.NewStack(frame.Viewport),
		viewport: frame.Viewport,
	}
}

// EndFrame closes the frame: runs the deferred popup draw, resolves the
// click-claim winner for next frame, applies the empty-space focus and
// stale-press safety nets, repairs unbalanced stacks, and flushes the
// renderer.
func (c *Context) EndFrame() {
	f := c.frame
	if f == nil {
		errors.Report(&errors.UIError{
			Op:   "ui.EndFrame",
			Kind: errors.KindMisuse,
			Err:  stderrors.New("EndFrame without a matching BeginFrame"),
		})
		return
	}
	snap := f.input
	pressed := snap.ButtonJustPressed(input.MouseButtonLeft)
	popupWasOpen := c.popups.IsOpen()

	// Deferred overlay drawing runs first so popup widgets layer topmost
	// and their claims are the latest submissions.
	c.popups.EndFrame(pressed, snap.Pointer)
	c.modals.Draw()

	// This frame's claim winner becomes next frame's active-press owner.
	if claim, ok := c.router.Resolve(); ok {
		c.store.ClearAllActivePressState()
		c.store.TrySetActivePress(claim.ID, claim.Priority)
	}

	// A press on empty space with no popup open clears focus.
	if pressed && !popupWasOpen && c.store.PotentialTargetID().IsZero() {
		c.store.ClearFocus()
	}

	// Stale-press safety net: button up but someone still marked pressed.
	if !snap.ButtonDown(input.MouseButtonLeft) && !c.store.ActivePressID().IsZero() {
		c.store.ClearAllActivePressState()
	}

	if d := f.layout.Depth(); d > 0 {
		errors.Report(&errors.UIError{
			Op:   "ui.EndFrame",
			Kind: errors.KindLayout,
			Err:  &errors.UnbalancedStackError{Stack: "layout", Depth: d},
		})
	}
	if d := f.layout.ClipDepth(); d > 0 {
		errors.Report(&errors.UIError{
			Op:   "ui.EndFrame",
			Kind: errors.KindLayout,
			Err:  &errors.UnbalancedStackError{Stack: "clip", Depth: d},
		})
	}
	f.layout.ForceClear()

	if err := f.renderer.Flush(); err != nil {
		errors.Report(&errors.UIError{Op: "ui.EndFrame", Kind: errors.KindRender, Err: err})
	}
	c.frame = nil
}

// ensureFrame returns the open frame, or nil after reporting the misuse.
// Widget calls outside a frame degrade to no-ops.
func (c *Context) ensureFrame(op string) *frameState {
	if c.frame == nil {
		errors.Report(&errors.UIError{Op: op, Kind: errors.KindMisuse, Err: errNoFrame})
		return nil
	}
	return c.frame
}

// Measure executes fn as a dry run against an isolated layout stack and the
// no-op renderer, returning the size the calls would occupy. fn must issue
// the same call sequence it will issue for real; input accounting is
// suppressed so the real pass observes presses and results exactly once.
func (c *Context) Measure(fn func()) (size graphics.Size) {
	f := c.ensureFrame("ui.Measure")
	if f == nil || fn == nil {
		return graphics.Size{}
	}
	pos := f.layout.CurrentPosition()
	clip := f.layout.ActiveClip()
	isolated := layout.NewStack(graphics.Rect{
		Left: pos.X, Top: pos.Y, Right: clip.Right, Bottom: clip.Bottom,
	})

	savedLayout := f.layout
	savedRenderer := f.renderer
	savedMeasuring := f.measuring
	f.layout = isolated
	f.renderer = render.NoopRenderer{}
	f.measuring = true
	defer func() {
		f.layout = savedLayout
		f.renderer = savedRenderer
		f.measuring = savedMeasuring
		size = isolated.ContentSize()
	}()
	defer errors.Recover("ui.Measure")

	fn()
	return
}
