package state

import (
	"testing"

	"github.com/go-drift/ember/pkg/errors"
)

type buttonState struct {
	Hot     bool
	Presses int
}

type sliderState struct {
	Dragging bool
}

// silenceErrors installs a capturing handler for the duration of a test so
// expected degradation paths don't write to stderr.
func silenceErrors(t *testing.T) *captureHandler {
	t.Helper()
	h := &captureHandler{}
	errors.SetHandler(h)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return h
}

type captureHandler struct {
	reported []*errors.UIError
}

func (h *captureHandler) HandleError(err *errors.UIError) { h.reported = append(h.reported, err) }
func (h *captureHandler) HandlePanic(err *errors.PanicError) {}

// TestStateOf_SameObjectAcrossFrames verifies that an id yields the same
// state object identity on every frame.
func TestStateOf_SameObjectAcrossFrames(t *testing.T) {
	s := NewStore()
	id := NewID("toolbar/save", "button")

	s.BeginFrame()
	st := StateOf[buttonState](s, id)
	st.Presses = 3

	s.BeginFrame()
	again := StateOf[buttonState](s, id)
	if again != st {
		t.Error("expected identical state object across frames")
	}
	if again.Presses != 3 {
		t.Errorf("state mutation lost: Presses = %d", again.Presses)
	}
}

// TestStateOf_DefaultConstructed verifies lazy zero-value creation.
func TestStateOf_DefaultConstructed(t *testing.T) {
	s := NewStore()
	st := StateOf[buttonState](s, NewID("a", "button"))
	if st.Hot || st.Presses != 0 {
		t.Errorf("expected zero value, got %+v", *st)
	}
}

// TestStateOf_KindMismatchDegrades verifies that requesting a different
// kind for the same name reports an error and yields a fresh object
// instead of aliasing.
func TestStateOf_KindMismatchDegrades(t *testing.T) {
	h := silenceErrors(t)
	s := NewStore()

	b := StateOf[buttonState](s, NewID("x", "button"))
	b.Presses = 7

	sl := StateOf[sliderState](s, NewID("x", "slider"))
	if sl.Dragging {
		t.Error("mismatched lookup should return a fresh zero value")
	}
	if len(h.reported) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(h.reported))
	}
	if h.reported[0].Kind != errors.KindState {
		t.Errorf("unexpected error kind %v", h.reported[0].Kind)
	}
}

// TestStore_EvictOrphans verifies untouched ids are reclaimed after the
// configured age while touched ids survive.
func TestStore_EvictOrphans(t *testing.T) {
	s := NewStore()
	s.EvictAfter = 0 // drive eviction manually

	stale := NewID("stale", "button")
	live := NewID("live", "button")
	s.BeginFrame()
	StateOf[buttonState](s, stale)
	StateOf[buttonState](s, live)

	for i := 0; i < 10; i++ {
		s.BeginFrame()
		StateOf[buttonState](s, live)
	}

	removed := s.EvictOrphans(5)
	if removed != 1 {
		t.Errorf("expected 1 eviction, got %d", removed)
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 surviving entry, got %d", s.Len())
	}
}

// TestStore_EvictSparesFocusAndPress verifies focused and pressed widgets
// survive eviction even when untouched.
func TestStore_EvictSparesFocusAndPress(t *testing.T) {
	s := NewStore()
	s.EvictAfter = 0

	focused := NewID("entry", "text")
	pressed := NewID("knob", "slider")
	s.BeginFrame()
	StateOf[buttonState](s, focused)
	StateOf[buttonState](s, pressed)
	s.SetFocus(focused)
	s.TrySetActivePress(pressed, 0)

	for i := 0; i < 10; i++ {
		s.BeginFrame()
	}
	if removed := s.EvictOrphans(5); removed != 0 {
		t.Errorf("expected no evictions, got %d", removed)
	}
}

// TestStore_ActivePressPriority verifies priority and last-wins semantics.
func TestStore_ActivePressPriority(t *testing.T) {
	s := NewStore()
	low := NewID("low", "button")
	high := NewID("high", "button")
	other := NewID("other", "button")

	if !s.TrySetActivePress(low, 0) {
		t.Fatal("first claim should succeed")
	}
	if !s.TrySetActivePress(high, 5) {
		t.Fatal("higher priority should take the press")
	}
	if s.TrySetActivePress(other, 1) {
		t.Error("lower priority should not take the press")
	}
	// Equal priority: later caller wins (topmost draw order).
	if !s.TrySetActivePress(other, 5) {
		t.Error("equal priority should take the press")
	}
	if s.ActivePressID() != other {
		t.Errorf("ActivePressID = %v, want %v", s.ActivePressID(), other)
	}
}

// TestStore_ClearActivePressOnlyOwner verifies ClearActivePress is a no-op
// for non-owners and ClearAllActivePressState always clears.
func TestStore_ClearActivePress(t *testing.T) {
	s := NewStore()
	owner := NewID("owner", "button")
	stranger := NewID("stranger", "button")

	s.TrySetActivePress(owner, 0)
	s.ClearActivePress(stranger)
	if s.ActivePressID() != owner {
		t.Error("non-owner clear should be a no-op")
	}
	s.ClearActivePress(owner)
	if !s.ActivePressID().IsZero() {
		t.Error("owner clear should release the press")
	}

	s.TrySetActivePress(owner, 9)
	s.ClearAllActivePressState()
	if !s.ActivePressID().IsZero() {
		t.Error("force clear should release the press")
	}
}

// TestStore_PotentialTargetResetPerFrame verifies the potential target is
// per-frame state.
func TestStore_PotentialTargetResetPerFrame(t *testing.T) {
	s := NewStore()
	a := NewID("a", "button")
	b := NewID("b", "button")

	s.BeginFrame()
	s.SetPotentialTarget(a)
	s.SetPotentialTarget(b)
	if s.PotentialTargetID() != b {
		t.Error("last registration should win within a frame")
	}

	s.BeginFrame()
	if !s.PotentialTargetID().IsZero() {
		t.Error("potential target should reset at frame start")
	}
}

// TestID_Identity verifies sub-key derivation and hashing determinism.
func TestID_Identity(t *testing.T) {
	base := NewID("list", "row")
	if base.Index(1) == base.Index(2) {
		t.Error("indexed ids should differ")
	}
	if base.Sub("header").Name != "list/header" {
		t.Errorf("unexpected sub name %q", base.Sub("header").Name)
	}
	if base.Hash() != NewID("list", "row").Hash() {
		t.Error("hash should be deterministic")
	}
	if base.Hash() == NewID("list", "col").Hash() {
		t.Error("kind should participate in the hash")
	}
	if !(ID{}).IsZero() {
		t.Error("zero ID should report IsZero")
	}
}
