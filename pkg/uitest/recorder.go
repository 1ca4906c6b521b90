// Package uitest provides test doubles for driving the UI core without a
// real backend: a recording renderer, a scripted input driver, and a
// frame-pumping harness with a manual clock.
package uitest

import (
	"fmt"
	"strings"

	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/render"
)

// DrawOp is one recorded renderer call.
type DrawOp struct {
	// Op names the call ("box", "text", "line", "image", "pushClip",
	// "popClip", "flush").
	Op string
	// Rect is the geometry for box, image, and clip ops.
	Rect graphics.Rect
	// Text is the drawn string for text ops.
	Text string
	// From and To are the endpoints for line ops.
	From, To graphics.Offset
	// Color is the draw color, where applicable.
	Color graphics.Color
}

// RecordingRenderer implements render.Renderer by logging every call. Tests
// assert against the op log instead of pixels.
type RecordingRenderer struct {
	Ops []DrawOp

	// FlushErr, when set, is returned from Flush to exercise backend
	// failure reporting.
	FlushErr error

	clipDepth int
}

var _ render.Renderer = (*RecordingRenderer)(nil)

// NewRecordingRenderer creates an empty recorder.
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

// Reset clears the op log between frames.
func (r *RecordingRenderer) Reset() {
	r.Ops = r.Ops[:0]
}

func (r *RecordingRenderer) DrawBox(rect graphics.Rect, style render.BoxStyle) {
	r.Ops = append(r.Ops, DrawOp{Op: "box", Rect: rect, Color: style.Fill})
}

func (r *RecordingRenderer) DrawText(origin graphics.Offset, text string, style render.TextStyle, align render.Alignment, maxSize graphics.Size, color graphics.Color) {
	r.Ops = append(r.Ops, DrawOp{
		Op:    "text",
		Rect:  graphics.RectFromOffsetSize(origin, maxSize),
		Text:  text,
		Color: color,
	})
}

func (r *RecordingRenderer) DrawLine(from, to graphics.Offset, width float64, color graphics.Color) {
	r.Ops = append(r.Ops, DrawOp{Op: "line", From: from, To: to, Color: color})
}

func (r *RecordingRenderer) DrawImage(rect graphics.Rect, image render.ImageHandle) {
	r.Ops = append(r.Ops, DrawOp{Op: "image", Rect: rect})
}

func (r *RecordingRenderer) PushClipRect(rect graphics.Rect) {
	r.clipDepth++
	r.Ops = append(r.Ops, DrawOp{Op: "pushClip", Rect: rect})
}

func (r *RecordingRenderer) PopClipRect() {
	r.clipDepth--
	r.Ops = append(r.Ops, DrawOp{Op: "popClip"})
}

// ClipBalanced reports whether every PushClipRect was matched by a
// PopClipRect.
func (r *RecordingRenderer) ClipBalanced() bool {
	return r.clipDepth == 0
}

func (r *RecordingRenderer) Flush() error {
	r.Ops = append(r.Ops, DrawOp{Op: "flush"})
	return r.FlushErr
}

// TextOps returns the drawn strings, in draw order.
func (r *RecordingRenderer) TextOps() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Op == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// ContainsText reports whether text was drawn this frame.
func (r *RecordingRenderer) ContainsText(text string) bool {
	for _, op := range r.Ops {
		if op.Op == "text" && op.Text == text {
			return true
		}
	}
	return false
}

// CountOp returns how many ops of the given kind were recorded.
func (r *RecordingRenderer) CountOp(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Op == kind {
			n++
		}
	}
	return n
}

// String formats the op log, one op per line, for test failure output.
func (r *RecordingRenderer) String() string {
	var b strings.Builder
	for _, op := range r.Ops {
		switch op.Op {
		case "text":
			fmt.Fprintf(&b, "text %q at %+v\n", op.Text, op.Rect)
		case "line":
			fmt.Fprintf(&b, "line %+v -> %+v\n", op.From, op.To)
		default:
			fmt.Fprintf(&b, "%s %+v\n", op.Op, op.Rect)
		}
	}
	return b.String()
}
