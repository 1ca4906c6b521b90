package layout

import "github.com/go-drift/ember/pkg/graphics"

// Edge names the screen edge a resizable panel is anchored to. The
// draggable border sits on the opposite side.
type Edge int

const (
	// EdgeLeft anchors the panel to the left edge; the border is on its right.
	EdgeLeft Edge = iota
	// EdgeRight anchors the panel to the right edge; the border is on its left.
	EdgeRight
	// EdgeTop anchors the panel to the top edge; the border is on its bottom.
	EdgeTop
	// EdgeBottom anchors the panel to the bottom edge; the border is on its top.
	EdgeBottom
)

// IsHorizontal reports whether the panel resizes along x.
func (e Edge) IsHorizontal() bool {
	return e == EdgeLeft || e == EdgeRight
}

// ResizablePanel is a container anchored to one screen edge whose extent
// along the resize axis is an externally owned value. The panel computes
// its bounds and border geometry; the drag interaction that live-adjusts
// the value belongs to the widget layer.
type ResizablePanel struct {
	screen graphics.Rect
	edge   Edge
	extent float64
	inner  *Box
}

// NewResizablePanel creates a panel occupying extent pixels from the given
// edge of screen. Children flow vertically with the given gap.
func NewResizablePanel(screen graphics.Rect, edge Edge, extent, gap float64) *ResizablePanel {
	p := &ResizablePanel{screen: screen, edge: edge, extent: extent}
	p.inner = NewVBox(p.Bounds().Origin(), gap)
	return p
}

// Bounds returns the panel's on-screen rectangle.
func (p *ResizablePanel) Bounds() graphics.Rect {
	switch p.edge {
	case EdgeLeft:
		return graphics.Rect{Left: p.screen.Left, Top: p.screen.Top, Right: p.screen.Left + p.extent, Bottom: p.screen.Bottom}
	case EdgeRight:
		return graphics.Rect{Left: p.screen.Right - p.extent, Top: p.screen.Top, Right: p.screen.Right, Bottom: p.screen.Bottom}
	case EdgeTop:
		return graphics.Rect{Left: p.screen.Left, Top: p.screen.Top, Right: p.screen.Right, Bottom: p.screen.Top + p.extent}
	default:
		return graphics.Rect{Left: p.screen.Left, Top: p.screen.Bottom - p.extent, Right: p.screen.Right, Bottom: p.screen.Bottom}
	}
}

// BorderRect returns the draggable border strip of the given thickness,
// centered on the panel's free edge.
func (p *ResizablePanel) BorderRect(thickness float64) graphics.Rect {
	b := p.Bounds()
	half := thickness / 2
	switch p.edge {
	case EdgeLeft:
		return graphics.Rect{Left: b.Right - half, Top: b.Top, Right: b.Right + half, Bottom: b.Bottom}
	case EdgeRight:
		return graphics.Rect{Left: b.Left - half, Top: b.Top, Right: b.Left + half, Bottom: b.Bottom}
	case EdgeTop:
		return graphics.Rect{Left: b.Left, Top: b.Bottom - half, Right: b.Right, Bottom: b.Bottom + half}
	default:
		return graphics.Rect{Left: b.Left, Top: b.Top - half, Right: b.Right, Bottom: b.Top + half}
	}
}

// AdjustExtent applies a pointer drag delta to the panel's extent, clamped
// to [min, max]. Deltas toward the anchored edge shrink the panel.
func (p *ResizablePanel) AdjustExtent(delta graphics.Offset, min, max float64) float64 {
	d := delta.Y
	if p.edge.IsHorizontal() {
		d = delta.X
	}
	if p.edge == EdgeRight || p.edge == EdgeBottom {
		d = -d
	}
	return graphics.Clamp(p.extent+d, min, max)
}

// CurrentPosition returns the next child position inside the panel.
func (p *ResizablePanel) CurrentPosition() graphics.Offset {
	return p.inner.CurrentPosition()
}

// Advance moves the content cursor past a child.
func (p *ResizablePanel) Advance(size graphics.Size) {
	p.inner.Advance(size)
}

// Close reports the panel's occupied size, which is its full bounds: the
// panel's extent comes from the caller, not from its content.
func (p *ResizablePanel) Close() graphics.Size {
	return p.Bounds().Size()
}
