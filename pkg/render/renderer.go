// Package render defines the capability contracts Ember consumes from
// rendering backends: box/text/line/image drawing with a clip stack, and
// text measurement with hit testing. Concrete rasterization lives in host
// backends; the package ships only the no-op implementation used for
// measurement-only dry runs.
package render

import "github.com/go-drift/ember/pkg/graphics"

// Alignment positions text within its maximum size.
type Alignment int

const (
	// AlignStart aligns to the left edge.
	AlignStart Alignment = iota
	// AlignCenter centers horizontally.
	AlignCenter
	// AlignEnd aligns to the right edge.
	AlignEnd
)

// BoxStyle describes how a rectangle is painted.
type BoxStyle struct {
	// Fill is the interior color. A zero (fully transparent) fill draws nothing.
	Fill graphics.Color
	// Border is the outline color.
	Border graphics.Color
	// BorderWidth is the outline thickness in pixels. Zero disables the outline.
	BorderWidth float64
	// CornerRadius rounds the corners.
	CornerRadius float64
}

// TextStyle selects a face and size for text drawing and measurement.
type TextStyle struct {
	// Family names the font face. Empty selects the backend default.
	Family string
	// Size is the em size in pixels. Zero selects the backend default.
	Size float64
}

// ImageHandle references a backend-owned image resource.
type ImageHandle uint64

// Renderer is the drawing capability consumed from the host backend.
//
// Implementations must tolerate being driven by a malformed frame: a failed
// draw call is reported and skipped for the frame rather than propagated.
// Every implementation must also be usable as a pure sink so the same call
// sequence can run once for measurement and once for real.
type Renderer interface {
	// DrawBox paints a styled rectangle.
	DrawBox(rect graphics.Rect, style BoxStyle)
	// DrawText paints text at origin, constrained and aligned within maxSize.
	DrawText(origin graphics.Offset, text string, style TextStyle, align Alignment, maxSize graphics.Size, color graphics.Color)
	// DrawLine paints a line segment.
	DrawLine(from, to graphics.Offset, width float64, color graphics.Color)
	// DrawImage paints a backend image into rect.
	DrawImage(rect graphics.Rect, image ImageHandle)
	// PushClipRect restricts subsequent drawing to rect, intersected with
	// the active clip.
	PushClipRect(rect graphics.Rect)
	// PopClipRect restores the previous clip.
	PopClipRect()
	// Flush submits the frame. Backend resource failures (device lost)
	// surface here; the host is responsible for out-of-band recreation.
	Flush() error
}

// TextLayout is a measured line of text with caret hit testing. Identical
// (text, style) inputs always produce equal geometry.
type TextLayout struct {
	// Text is the measured string.
	Text string
	// Bounds is the laid-out size, clamped to the max size it was built with.
	Bounds graphics.Size
	// Advances holds the cumulative x offset after each rune. Its length
	// equals the rune count; Advances[i] is the caret x after rune i.
	Advances []float64
}

// CaretForX returns the rune index of the caret position nearest to x.
func (l *TextLayout) CaretForX(x float64) int {
	if x <= 0 || len(l.Advances) == 0 {
		return 0
	}
	prev := 0.0
	for i, adv := range l.Advances {
		mid := (prev + adv) / 2
		if x < mid {
			return i
		}
		prev = adv
	}
	return len(l.Advances)
}

// XForCaret returns the x offset of the caret before rune index i.
func (l *TextLayout) XForCaret(i int) float64 {
	if i <= 0 || len(l.Advances) == 0 {
		return 0
	}
	if i > len(l.Advances) {
		i = len(l.Advances)
	}
	return l.Advances[i-1]
}

// TextService is the measurement capability consumed from the host backend.
type TextService interface {
	// MeasureText returns the rendered size of text in the given style.
	// Repeated calls with identical arguments return equal geometry.
	MeasureText(text string, style TextStyle) graphics.Size
	// TextLayout lays out text within maxSize and returns hit-testing
	// geometry.
	TextLayout(text string, style TextStyle, maxSize graphics.Size, align Alignment) TextLayout
}
