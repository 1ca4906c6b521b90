package layout

import "github.com/go-drift/ember/pkg/graphics"

// Stack holds the frame's open containers and clip rectangles. A fresh
// implicit root box (vertical, at the viewport origin) always sits at the
// bottom, so widget calls are valid even outside any explicit container.
//
// Begin/End pairs must balance within a frame. The stack never panics on
// imbalance; the frame controller detects leftovers at EndFrame, reports
// them, and calls ForceClear so the next frame starts clean.
type Stack struct {
	viewport   graphics.Rect
	root       *Box
	containers []Container
	clips      []graphics.Rect
}

// NewStack creates a layout stack for the given viewport.
func NewStack(viewport graphics.Rect) *Stack {
	s := &Stack{}
	s.Reset(viewport)
	return s
}

// Reset clears all containers and clips and installs a fresh root box.
// The frame controller calls this at BeginFrame.
func (s *Stack) Reset(viewport graphics.Rect) {
	s.viewport = viewport
	s.root = NewVBox(viewport.Origin(), 0)
	s.containers = s.containers[:0]
	s.clips = s.clips[:0]
}

// Viewport returns the screen rectangle the stack was reset with.
func (s *Stack) Viewport() graphics.Rect {
	return s.viewport
}

// Depth returns the number of explicitly opened containers.
func (s *Stack) Depth() int {
	return len(s.containers)
}

// ClipDepth returns the number of pushed clip rectangles.
func (s *Stack) ClipDepth() int {
	return len(s.clips)
}

// Push opens a container.
func (s *Stack) Push(c Container) {
	s.containers = append(s.containers, c)
}

// Pop closes the innermost container and returns it with its occupied
// size. Returns false when no explicit container is open.
func (s *Stack) Pop() (Container, graphics.Size, bool) {
	n := len(s.containers)
	if n == 0 {
		return nil, graphics.Size{}, false
	}
	c := s.containers[n-1]
	s.containers = s.containers[:n-1]
	return c, c.Close(), true
}

// Top returns the innermost container, which is the root box when none is
// explicitly open.
func (s *Stack) Top() Container {
	if n := len(s.containers); n > 0 {
		return s.containers[n-1]
	}
	return s.root
}

// CurrentPosition returns the innermost container's next child position.
func (s *Stack) CurrentPosition() graphics.Offset {
	return s.Top().CurrentPosition()
}

// Advance moves the innermost container's cursor past a child.
func (s *Stack) Advance(size graphics.Size) {
	s.Top().Advance(size)
}

// ContentSize reports the root box's occupied size so far. Measurement dry
// runs read this after replaying a call sequence against an isolated stack.
func (s *Stack) ContentSize() graphics.Size {
	return s.root.Close()
}

// PushClip intersects rect with the active clip and makes the result the
// new active clip.
func (s *Stack) PushClip(rect graphics.Rect) {
	s.clips = append(s.clips, s.ActiveClip().Intersect(rect))
}

// PopClip restores the previous clip. A pop with nothing pushed is ignored.
func (s *Stack) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// ActiveClip returns the innermost clip rectangle, or the viewport when
// nothing is pushed.
func (s *Stack) ActiveClip() graphics.Rect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.viewport
}

// IsRectVisible reports whether any part of bounds lies inside the active
// clip. Widgets use this to cull draw and measure work; a culled widget
// must still advance the cursor by its full size so rendered and culled
// passes produce identical layout.
func (s *Stack) IsRectVisible(bounds graphics.Rect) bool {
	return s.ActiveClip().Overlaps(bounds)
}

// ForceClear empties both stacks and reports how many entries were still
// open. The frame controller uses this to repair unbalanced frames.
func (s *Stack) ForceClear() (containers, clips int) {
	containers = len(s.containers)
	clips = len(s.clips)
	s.containers = s.containers[:0]
	s.clips = s.clips[:0]
	return containers, clips
}
