package layout

import "github.com/go-drift/ember/pkg/graphics"

// ScrollRegion is a container that clips children to a fixed viewport
// rectangle and shifts their positions by a scroll offset. The offset
// itself is persistent cross-frame state owned by the caller (keyed by the
// region's widget id in the state store); the container only applies it.
type ScrollRegion struct {
	viewport graphics.Rect
	offset   graphics.Offset
	inner    *Box
}

// NewScrollRegion creates a scroll region over viewport with the given
// scroll offset already applied to child positions. Children flow
// vertically with the given gap.
func NewScrollRegion(viewport graphics.Rect, offset graphics.Offset, gap float64) *ScrollRegion {
	origin := graphics.Offset{
		X: viewport.Left - offset.X,
		Y: viewport.Top - offset.Y,
	}
	return &ScrollRegion{
		viewport: viewport,
		offset:   offset,
		inner:    NewVBox(origin, gap),
	}
}

// Viewport returns the fixed on-screen rectangle of the region.
func (s *ScrollRegion) Viewport() graphics.Rect {
	return s.viewport
}

// Offset returns the scroll offset applied to children.
func (s *ScrollRegion) Offset() graphics.Offset {
	return s.offset
}

// CurrentPosition returns the next child position, already shifted by the
// scroll offset.
func (s *ScrollRegion) CurrentPosition() graphics.Offset {
	return s.inner.CurrentPosition()
}

// Advance moves the content cursor past a child.
func (s *ScrollRegion) Advance(size graphics.Size) {
	s.inner.Advance(size)
}

// Close reports the total content size, which the caller uses to clamp the
// persisted scroll offset for the next frame.
func (s *ScrollRegion) Close() graphics.Size {
	return s.inner.Close()
}

// ClampScroll limits a scroll offset to [0, content-viewport] on both axes.
// Content smaller than the viewport clamps to zero.
func ClampScroll(offset graphics.Offset, content, viewport graphics.Size) graphics.Offset {
	return graphics.Offset{
		X: graphics.Clamp(offset.X, 0, content.Width-viewport.Width),
		Y: graphics.Clamp(offset.Y, 0, content.Height-viewport.Height),
	}
}
