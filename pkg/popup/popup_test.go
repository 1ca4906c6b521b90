package popup

import (
	"testing"

	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/state"
)

// Test that opening a second popup replaces the first and the replaced
// popup's draw callback never runs again.
func TestOpenReplacesActivePopup(t *testing.T) {
	m := NewManager()
	a := state.NewID("menu-a", "menu")
	b := state.NewID("menu-b", "menu")

	var drawnA, drawnB int
	m.BeginFrame(1)
	m.Open(a, graphics.RectFromLTWH(0, 0, 100, 100), func() { drawnA++ })
	m.Open(b, graphics.RectFromLTWH(200, 0, 100, 100), func() { drawnB++ })
	m.EndFrame(false, graphics.Offset{})

	if drawnA != 0 {
		t.Errorf("replaced popup drew %d times, want 0", drawnA)
	}
	if drawnB != 1 {
		t.Errorf("active popup drew %d times, want 1", drawnB)
	}
	if !m.IsOwner(b) {
		t.Error("expected popup B to own the overlay")
	}
}

// Test that replacing a popup discards its pending, unconsumed result.
func TestOpenDiscardsPendingResult(t *testing.T) {
	m := NewManager()
	a := state.NewID("menu-a", "menu")
	b := state.NewID("menu-b", "menu")

	m.BeginFrame(1)
	m.Open(a, graphics.RectFromLTWH(0, 0, 100, 100), nil)
	m.Select(2)

	m.BeginFrame(2)
	m.Open(b, graphics.RectFromLTWH(0, 0, 100, 100), nil)

	if _, ok := m.TakeResult(a); ok {
		t.Error("result for replaced popup should have been discarded")
	}
}

// Test that a selection is delivered to its owner exactly once.
func TestTakeResultConsumesOnce(t *testing.T) {
	m := NewManager()
	owner := state.NewID("menu", "menu")

	m.BeginFrame(1)
	m.Open(owner, graphics.RectFromLTWH(0, 0, 100, 100), nil)
	m.Select(3)

	if m.IsOpen() {
		t.Error("selection should close the popup")
	}
	index, ok := m.TakeResult(owner)
	if !ok || index != 3 {
		t.Errorf("TakeResult = (%d, %v), want (3, true)", index, ok)
	}
	if _, ok := m.TakeResult(owner); ok {
		t.Error("second TakeResult should find nothing")
	}
}

// Test that a result is only delivered to the widget that opened the popup.
func TestTakeResultWrongOwner(t *testing.T) {
	m := NewManager()
	owner := state.NewID("menu", "menu")
	other := state.NewID("other", "menu")

	m.BeginFrame(1)
	m.Open(owner, graphics.RectFromLTWH(0, 0, 100, 100), nil)
	m.Select(0)

	if _, ok := m.TakeResult(other); ok {
		t.Error("result delivered to a widget that did not open the popup")
	}
	if _, ok := m.TakeResult(owner); !ok {
		t.Error("result for the true owner should still be pending")
	}
}

// Test that a press outside the popup's bounds dismisses it, but not on
// the frame the popup opened.
func TestOutsidePressDismissal(t *testing.T) {
	m := NewManager()
	owner := state.NewID("menu", "menu")
	bounds := graphics.RectFromLTWH(10, 10, 100, 100)
	outside := graphics.Offset{X: 500, Y: 500}

	// Opening frame: the press that opened the popup lands outside its
	// bounds but must not close it.
	m.BeginFrame(1)
	m.Open(owner, bounds, nil)
	m.EndFrame(true, outside)
	if !m.IsOpen() {
		t.Fatal("popup dismissed on its opening frame")
	}

	// Next frame, press inside: stays open.
	m.BeginFrame(2)
	m.EndFrame(true, graphics.Offset{X: 50, Y: 50})
	if !m.IsOpen() {
		t.Fatal("popup dismissed by a press inside its bounds")
	}

	// Press outside: closes.
	m.BeginFrame(3)
	m.EndFrame(true, outside)
	if m.IsOpen() {
		t.Error("popup should close on an outside press after the opening frame")
	}
}

// Test that a popup dismissed by an outside press does not draw that frame.
func TestDismissedPopupDoesNotDraw(t *testing.T) {
	m := NewManager()
	owner := state.NewID("menu", "menu")

	var drawn int
	m.BeginFrame(1)
	m.Open(owner, graphics.RectFromLTWH(0, 0, 100, 100), func() { drawn++ })
	m.EndFrame(false, graphics.Offset{})

	m.BeginFrame(2)
	m.EndFrame(true, graphics.Offset{X: 500, Y: 500})

	if drawn != 1 {
		t.Errorf("popup drew %d times, want 1 (opening frame only)", drawn)
	}
}

// Test that SetBounds during the draw callback feeds the next frame's
// dismissal test.
func TestSetBoundsDuringDraw(t *testing.T) {
	m := NewManager()
	owner := state.NewID("menu", "menu")
	laidOut := graphics.RectFromLTWH(0, 0, 300, 300)

	m.BeginFrame(1)
	m.Open(owner, graphics.Rect{}, func() { m.SetBounds(laidOut) })
	m.EndFrame(false, graphics.Offset{})

	// A press inside the laid-out bounds must not dismiss.
	m.BeginFrame(2)
	m.EndFrame(true, graphics.Offset{X: 150, Y: 150})
	if !m.IsOpen() {
		t.Error("press inside bounds set during draw dismissed the popup")
	}
}

// Test the modal window lifecycle: open, close with a result, and the
// closed callback firing exactly once.
func TestModalWindowLifecycle(t *testing.T) {
	h := NewModalHost()

	var results []int
	h.Open("Settings", 400, 300, nil, func(r int) { results = append(results, r) })
	if !h.IsOpen() {
		t.Fatal("modal window should be open")
	}
	if got := h.Active().Title; got != "Settings" {
		t.Errorf("title = %q, want %q", got, "Settings")
	}

	h.Close(7)
	if h.IsOpen() {
		t.Error("modal window should be closed")
	}
	h.Close(8) // no-op
	if len(results) != 1 || results[0] != 7 {
		t.Errorf("closed callback results = %v, want [7]", results)
	}
}

// Test that opening a modal over an existing one dismisses the first.
func TestModalOpenReplaces(t *testing.T) {
	h := NewModalHost()

	var first int = 99
	h.Open("First", 100, 100, nil, func(r int) { first = r })
	h.Open("Second", 100, 100, nil, nil)

	if first != ModalDismissed {
		t.Errorf("replaced modal result = %d, want ModalDismissed", first)
	}
	if got := h.Active().Title; got != "Second" {
		t.Errorf("active modal = %q, want %q", got, "Second")
	}
}

// Test that Draw paints the open window each frame it remains open.
func TestModalDraw(t *testing.T) {
	h := NewModalHost()

	var drawn int
	h.Open("W", 100, 100, func() { drawn++ }, nil)
	h.Draw()
	h.Draw()
	h.Close(0)
	h.Draw()

	if drawn != 2 {
		t.Errorf("modal drew %d times, want 2", drawn)
	}
}
