// Package input provides the per-frame input snapshot and the click-capture
// arbiter that resolves exactly one input-target winner per frame.
package input

import "github.com/go-drift/ember/pkg/graphics"

// MouseButton identifies a pointer button.
type MouseButton int

const (
	// MouseButtonLeft is the primary pointer button.
	MouseButtonLeft MouseButton = iota
	// MouseButtonRight is the secondary pointer button.
	MouseButtonRight
	// MouseButtonMiddle is the middle pointer button.
	MouseButtonMiddle

	mouseButtonCount
)

// Key identifies a non-character key.
type Key int

const (
	KeyNone Key = iota
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeySpace
	KeyShift
	KeyControl
)

// Snapshot is one frame's input, captured atomically before any widget
// logic runs and immutable for the remainder of the frame. Every widget in
// a frame observes the same input state.
type Snapshot struct {
	// Pointer is the pointer position this frame.
	Pointer graphics.Offset
	// PrevPointer is the pointer position of the previous frame.
	PrevPointer graphics.Offset
	// ScrollDelta is the wheel movement this frame, in pixels.
	ScrollDelta graphics.Offset
	// Typed is the queue of characters typed this frame, in order.
	Typed []rune

	down     [mouseButtonCount]bool
	pressed  [mouseButtonCount]bool
	released [mouseButtonCount]bool

	keysPressed  map[Key]bool
	keysReleased map[Key]bool
	keysHeld     map[Key]bool
}

// ButtonDown reports whether the button is held this frame.
func (s *Snapshot) ButtonDown(b MouseButton) bool {
	return validButton(b) && s.down[b]
}

// ButtonJustPressed reports whether the button went down this frame.
func (s *Snapshot) ButtonJustPressed(b MouseButton) bool {
	return validButton(b) && s.pressed[b]
}

// ButtonJustReleased reports whether the button went up this frame.
func (s *Snapshot) ButtonJustReleased(b MouseButton) bool {
	return validButton(b) && s.released[b]
}

// KeyPressed reports whether the key went down this frame.
func (s *Snapshot) KeyPressed(k Key) bool {
	return s.keysPressed[k]
}

// KeyReleased reports whether the key went up this frame.
func (s *Snapshot) KeyReleased(k Key) bool {
	return s.keysReleased[k]
}

// KeyHeld reports whether the key is held this frame.
func (s *Snapshot) KeyHeld(k Key) bool {
	return s.keysHeld[k]
}

// PointerDelta returns the pointer movement since the previous frame.
func (s *Snapshot) PointerDelta() graphics.Offset {
	return s.Pointer.Sub(s.PrevPointer)
}

func validButton(b MouseButton) bool {
	return b >= 0 && b < mouseButtonCount
}

// Collector accumulates platform events between frames and produces one
// immutable Snapshot per frame. It is the contract boundary with the host's
// event loop: the host feeds events as they arrive, and the frame
// controller calls Take exactly once per frame.
type Collector struct {
	pointer     graphics.Offset
	prevPointer graphics.Offset
	down        [mouseButtonCount]bool
	prevDown    [mouseButtonCount]bool
	scroll      graphics.Offset
	typed       []rune
	keysDown    map[Key]bool
	prevKeys    map[Key]bool
}

// NewCollector creates an empty input collector.
func NewCollector() *Collector {
	return &Collector{
		keysDown: make(map[Key]bool),
		prevKeys: make(map[Key]bool),
	}
}

// MoveTo records the current pointer position.
func (c *Collector) MoveTo(p graphics.Offset) {
	c.pointer = p
}

// SetButton records a button transition.
func (c *Collector) SetButton(b MouseButton, down bool) {
	if validButton(b) {
		c.down[b] = down
	}
}

// Scroll accumulates wheel movement.
func (c *Collector) Scroll(dx, dy float64) {
	c.scroll.X += dx
	c.scroll.Y += dy
}

// TypeRune appends a typed character to this frame's queue.
func (c *Collector) TypeRune(r rune) {
	c.typed = append(c.typed, r)
}

// SetKey records a key transition.
func (c *Collector) SetKey(k Key, down bool) {
	if down {
		c.keysDown[k] = true
	} else {
		delete(c.keysDown, k)
	}
}

// Take produces the frame's Snapshot from the accumulated events and
// rolls the collector's previous-frame bookkeeping forward. Edge flags
// (just-pressed, just-released) are derived from the prior Take.
func (c *Collector) Take() *Snapshot {
	s := &Snapshot{
		Pointer:      c.pointer,
		PrevPointer:  c.prevPointer,
		ScrollDelta:  c.scroll,
		Typed:        c.typed,
		keysPressed:  make(map[Key]bool),
		keysReleased: make(map[Key]bool),
		keysHeld:     make(map[Key]bool),
	}
	for b := MouseButton(0); b < mouseButtonCount; b++ {
		s.down[b] = c.down[b]
		s.pressed[b] = c.down[b] && !c.prevDown[b]
		s.released[b] = !c.down[b] && c.prevDown[b]
	}
	for k := range c.keysDown {
		s.keysHeld[k] = true
		if !c.prevKeys[k] {
			s.keysPressed[k] = true
		}
	}
	for k := range c.prevKeys {
		if !c.keysDown[k] {
			s.keysReleased[k] = true
		}
	}

	c.prevPointer = c.pointer
	c.prevDown = c.down
	c.prevKeys = make(map[Key]bool, len(c.keysDown))
	for k := range c.keysDown {
		c.prevKeys[k] = true
	}
	c.scroll = graphics.Offset{}
	c.typed = nil
	return s
}
