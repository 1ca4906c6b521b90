package uitest

import (
	"time"

	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/input"
	"github.com/go-drift/ember/pkg/ui"
)

const (
	// DefaultWidth is the default test viewport width.
	DefaultWidth = 800
	// DefaultHeight is the default test viewport height.
	DefaultHeight = 600
	// DefaultStep is the frame duration the harness advances per pump.
	DefaultStep = 16 * time.Millisecond
)

// Harness drives a ui.Context frame by frame with scripted input and a
// manual clock. Each Frame call captures the pending input, runs the given
// build function between BeginFrame and EndFrame, and records every draw.
type Harness struct {
	// Ctx is the session under test.
	Ctx *ui.Context
	// Renderer records the most recent frame's draw calls.
	Renderer *RecordingRenderer
	// Collector receives scripted input; Frame takes its snapshot.
	Collector *input.Collector
	// Viewport is the frame viewport.
	Viewport graphics.Rect
	// Step is the elapsed time per frame.
	Step time.Duration
}

// NewHarness creates a harness with the default viewport, step, and a
// fresh session using the default theme and text service.
func NewHarness() *Harness {
	return &Harness{
		Ctx:       ui.NewContext(nil, nil),
		Renderer:  NewRecordingRenderer(),
		Collector: input.NewCollector(),
		Viewport:  graphics.RectFromLTWH(0, 0, DefaultWidth, DefaultHeight),
		Step:      DefaultStep,
	}
}

// Frame pumps one frame: takes the collector's snapshot, clears the
// renderer log, and runs build inside BeginFrame/EndFrame. It returns the
// snapshot the frame consumed.
func (h *Harness) Frame(build func(c *ui.Context)) *input.Snapshot {
	snap := h.Collector.Take()
	h.Renderer.Reset()
	h.Ctx.BeginFrame(ui.Frame{
		Renderer: h.Renderer,
		Input:    snap,
		Viewport: h.Viewport,
		Elapsed:  h.Step,
	})
	if build != nil {
		build(h.Ctx)
	}
	h.Ctx.EndFrame()
	return snap
}

// Pump runs n frames with the same build function and no new input.
func (h *Harness) Pump(n int, build func(c *ui.Context)) {
	for i := 0; i < n; i++ {
		h.Frame(build)
	}
}

// MoveTo positions the pointer for the next frame.
func (h *Harness) MoveTo(x, y float64) {
	h.Collector.MoveTo(graphics.Offset{X: x, Y: y})
}

// Press pushes the left button down for the next frame.
func (h *Harness) Press() {
	h.Collector.SetButton(input.MouseButtonLeft, true)
}

// Release lifts the left button for the next frame.
func (h *Harness) Release() {
	h.Collector.SetButton(input.MouseButtonLeft, false)
}

// Click presses at a position and pumps the press and release frames
// against build. Release-mode widgets fire during the second frame.
func (h *Harness) Click(x, y float64, build func(c *ui.Context)) {
	h.MoveTo(x, y)
	h.Press()
	h.Frame(build)
	h.Release()
	h.Frame(build)
}

// Type queues a string as typed characters for the next frame.
func (h *Harness) Type(s string) {
	for _, r := range s {
		h.Collector.TypeRune(r)
	}
}

// Key presses a key down; it stays held until KeyUp.
func (h *Harness) Key(k input.Key) {
	h.Collector.SetKey(k, true)
}

// KeyUp releases a held key.
func (h *Harness) KeyUp(k input.Key) {
	h.Collector.SetKey(k, false)
}

// Scroll queues wheel movement for the next frame.
func (h *Harness) Scroll(dx, dy float64) {
	h.Collector.Scroll(dx, dy)
}
