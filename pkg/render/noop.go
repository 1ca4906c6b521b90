package render

import "github.com/go-drift/ember/pkg/graphics"

// NoopRenderer discards every draw call. It backs dry-run measurement
// passes, where a widget subtree executes solely to learn its size, and
// culled-subtree execution, where layout must advance without paint work.
type NoopRenderer struct{}

var _ Renderer = NoopRenderer{}

func (NoopRenderer) DrawBox(graphics.Rect, BoxStyle) {}

func (NoopRenderer) DrawText(graphics.Offset, string, TextStyle, Alignment, graphics.Size, graphics.Color) {
}

func (NoopRenderer) DrawLine(graphics.Offset, graphics.Offset, float64, graphics.Color) {}

func (NoopRenderer) DrawImage(graphics.Rect, ImageHandle) {}

func (NoopRenderer) PushClipRect(graphics.Rect) {}

func (NoopRenderer) PopClipRect() {}

func (NoopRenderer) Flush() error { return nil }
