// Package layout implements Ember's stack-scoped container algorithms:
// horizontal and vertical boxes, grids, scroll regions, and resizable
// panels, together with the clip-rect stack used for culling.
//
// Containers are pure cursor arithmetic. A widget reads its position from
// the innermost container, does its work, and advances the cursor by its
// size; a container's own occupied size is known only once every child has
// advanced. Because the math has no side effects outside the container, the
// same call sequence can run against an isolated stack for measurement and
// against the real one for drawing, with numerically identical results.
package layout

import "github.com/go-drift/ember/pkg/graphics"

// Axis selects the main layout direction of a box.
type Axis int

const (
	// Horizontal lays children out along x.
	Horizontal Axis = iota
	// Vertical lays children out along y.
	Vertical
)

// Container is a stack-scoped layout algorithm positioning children within
// the current frame. Dispatch is explicit through this interface; no type
// inspection.
type Container interface {
	// CurrentPosition returns where the next child should be placed,
	// including the inter-child gap when children precede it.
	CurrentPosition() graphics.Offset
	// Advance moves the cursor past a child of the given size.
	Advance(size graphics.Size)
	// Close finalizes the container and returns its total occupied size.
	Close() graphics.Size
}

// Box is an HBox or VBox: a cursor along one main axis with a tracked
// maximum cross-axis extent.
type Box struct {
	axis   Axis
	origin graphics.Offset
	gap    float64

	main  float64 // occupied extent along the main axis, gaps included
	cross float64 // maximum extent across the main axis
	count int
}

// NewHBox creates a horizontal box at origin with the given inter-child gap.
func NewHBox(origin graphics.Offset, gap float64) *Box {
	return &Box{axis: Horizontal, origin: origin, gap: gap}
}

// NewVBox creates a vertical box at origin with the given inter-child gap.
func NewVBox(origin graphics.Offset, gap float64) *Box {
	return &Box{axis: Vertical, origin: origin, gap: gap}
}

// Axis returns the box's main layout direction.
func (b *Box) Axis() Axis {
	return b.axis
}

// Origin returns the box's top-left corner.
func (b *Box) Origin() graphics.Offset {
	return b.origin
}

// CurrentPosition returns the placement point for the next child: the
// origin advanced by the occupied extent, plus one gap when the child is
// not the first.
func (b *Box) CurrentPosition() graphics.Offset {
	offset := b.main
	if b.count > 0 {
		offset += b.gap
	}
	if b.axis == Horizontal {
		return graphics.Offset{X: b.origin.X + offset, Y: b.origin.Y}
	}
	return graphics.Offset{X: b.origin.X, Y: b.origin.Y + offset}
}

// Advance moves the cursor by gap (if not first) plus the child's main-axis
// size, and widens the cross-axis extent to the child's if larger.
func (b *Box) Advance(size graphics.Size) {
	if b.count > 0 {
		b.main += b.gap
	}
	if b.axis == Horizontal {
		b.main += size.Width
		if size.Height > b.cross {
			b.cross = size.Height
		}
	} else {
		b.main += size.Height
		if size.Width > b.cross {
			b.cross = size.Width
		}
	}
	b.count++
}

// Close reports the total occupied size: sum of child sizes plus
// (count-1) gaps along the main axis, maximum child size across it.
func (b *Box) Close() graphics.Size {
	if b.axis == Horizontal {
		return graphics.Size{Width: b.main, Height: b.cross}
	}
	return graphics.Size{Width: b.cross, Height: b.main}
}

// Count returns the number of children advanced so far.
func (b *Box) Count() int {
	return b.count
}
