package animation

import (
	"testing"
	"time"

	"github.com/go-drift/ember/pkg/state"
)

var owner = state.NewID("button", "button")

// TestScheduler_FirstCallStartsAtTarget verifies no motion on first access.
func TestScheduler_FirstCallStartsAtTarget(t *testing.T) {
	s := NewScheduler()
	s.Advance(0)
	if v := s.Animate(owner, "hover", 0.75, time.Second, nil); v != 0.75 {
		t.Errorf("initial value = %v, want 0.75", v)
	}
}

// TestScheduler_TweenProgress verifies linear interpolation toward a
// changed target and arrival at the end of the duration.
func TestScheduler_TweenProgress(t *testing.T) {
	s := NewScheduler()
	s.Advance(0)
	s.Animate(owner, "hover", 0, time.Second, nil)

	// Target changes: tween re-triggers from the current value.
	s.Advance(0)
	s.Animate(owner, "hover", 1, time.Second, nil)

	s.Advance(500 * time.Millisecond)
	if v := s.Animate(owner, "hover", 1, time.Second, nil); v < 0.49 || v > 0.51 {
		t.Errorf("midpoint value = %v, want ~0.5", v)
	}

	s.Advance(2 * time.Second)
	if v := s.Animate(owner, "hover", 1, time.Second, nil); v != 1 {
		t.Errorf("final value = %v, want 1", v)
	}
}

// TestScheduler_RetargetMidFlight verifies a target change mid-tween
// restarts from the current value, not the original start.
func TestScheduler_RetargetMidFlight(t *testing.T) {
	s := NewScheduler()
	s.Advance(0)
	s.Animate(owner, "hover", 0, time.Second, nil)
	s.Advance(0)
	s.Animate(owner, "hover", 1, time.Second, nil)

	s.Advance(500 * time.Millisecond)
	mid := s.Animate(owner, "hover", 1, time.Second, nil)

	// Reverse toward 0; it should move down from mid, not jump.
	v := s.Animate(owner, "hover", 0, time.Second, nil)
	if v != mid {
		t.Errorf("re-trigger frame value = %v, want current %v", v, mid)
	}
	s.Advance(750 * time.Millisecond)
	v2 := s.Animate(owner, "hover", 0, time.Second, nil)
	if v2 >= mid || v2 <= 0 {
		t.Errorf("reversing value = %v, want between 0 and %v", v2, mid)
	}
}

// TestScheduler_PruneUnrefreshed verifies entries skipped for a frame are
// removed while refreshed entries survive.
func TestScheduler_PruneUnrefreshed(t *testing.T) {
	s := NewScheduler()
	other := state.NewID("other", "button")

	s.Advance(0)
	s.Animate(owner, "hover", 1, time.Second, nil)
	s.Animate(other, "hover", 1, time.Second, nil)
	if s.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", s.Len())
	}

	// Frame 2: only one entry refreshed.
	s.Advance(16 * time.Millisecond)
	s.Animate(owner, "hover", 1, time.Second, nil)

	// Frame 3: the skipped entry is pruned.
	s.Advance(32 * time.Millisecond)
	if s.Len() != 1 {
		t.Errorf("expected 1 surviving entry, got %d", s.Len())
	}
}

// TestScheduler_ProceduralHoldsFinalValue verifies elapsed-driven effects
// and retriggering.
func TestScheduler_ProceduralHoldsFinalValue(t *testing.T) {
	s := NewScheduler()
	// Grow for 100ms, then hold at 2.0.
	pulse := func(elapsed time.Duration) float64 {
		if elapsed >= 100*time.Millisecond {
			return 2.0
		}
		return 1.0 + float64(elapsed)/float64(100*time.Millisecond)
	}

	s.Advance(0)
	if v := s.Procedural(owner, "pulse", pulse); v != 1.0 {
		t.Errorf("t=0 value = %v, want 1.0", v)
	}

	s.Advance(50 * time.Millisecond)
	if v := s.Procedural(owner, "pulse", pulse); v < 1.49 || v > 1.51 {
		t.Errorf("t=50ms value = %v, want ~1.5", v)
	}

	s.Advance(time.Second)
	if v := s.Procedural(owner, "pulse", pulse); v != 2.0 {
		t.Errorf("completed value = %v, want held 2.0", v)
	}

	// Retrigger restarts the elapsed clock.
	s.Retrigger(owner, "pulse")
	if v := s.Procedural(owner, "pulse", pulse); v != 1.0 {
		t.Errorf("retriggered value = %v, want 1.0", v)
	}
}

// TestScheduler_IndependentPurposes verifies a widget can run several
// animations keyed by purpose.
func TestScheduler_IndependentPurposes(t *testing.T) {
	s := NewScheduler()
	s.Advance(0)
	a := s.Animate(owner, "hover", 0.2, time.Second, nil)
	b := s.Animate(owner, "press", 0.9, time.Second, nil)
	if a == b {
		t.Error("purposes should be independent entries")
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", s.Len())
	}
}

// TestCurves_Endpoints verifies every easing curve fixes 0 and 1.
func TestCurves_Endpoints(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":     LinearCurve,
		"ease":       Ease,
		"ease-in":    EaseIn,
		"ease-out":   EaseOut,
		"ease-inout": EaseInOut,
	}
	for name, c := range curves {
		if got := c(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := c(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		mid := c(0.5)
		if mid < 0 || mid > 1 {
			t.Errorf("%s(0.5) = %v, out of range", name, mid)
		}
	}
}

// TestCubicBezier_Monotonic verifies the solver produces increasing output
// for an s-shaped curve.
func TestCubicBezier_Monotonic(t *testing.T) {
	c := CubicBezier(0.4, 0.0, 0.2, 1.0)
	prev := -1.0
	for i := 0; i <= 20; i++ {
		v := c(float64(i) / 20)
		if v < prev {
			t.Fatalf("curve not monotonic at t=%v: %v < %v", float64(i)/20, v, prev)
		}
		prev = v
	}
}
