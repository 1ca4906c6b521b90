// Package animation provides Ember's per-frame animation scheduler and the
// easing curves that drive it.
//
// The scheduler is pull-based to match the immediate-mode call pattern: a
// widget asks for its animated value every frame, which simultaneously
// refreshes the entry. Entries no widget asked about last frame are pruned.
package animation

import (
	"time"

	"github.com/go-drift/ember/pkg/state"
)

// entryKey identifies one animation: the owning widget plus a purpose
// string, so a widget can run several independent animations.
type entryKey struct {
	owner   state.ID
	purpose string
}

// entry is one interpolation in flight.
type entry struct {
	// Tween fields: interpolate startValue toward target over duration.
	target     float64
	startValue float64
	current    float64
	start      time.Duration // scheduler time the current tween began
	duration   time.Duration
	curve      func(float64) float64

	// Procedural fields: value is fn(elapsed since trigger).
	fn        func(elapsed time.Duration) float64
	triggered time.Duration

	touched uint64 // generation of the last refresh
}

// Scheduler advances per-(owner, purpose) interpolation entries once per
// frame. Widgets refresh their entries by evaluating them; an entry not
// refreshed for a full frame is removed.
type Scheduler struct {
	now     time.Duration
	gen     uint64
	entries map[entryKey]*entry
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{entries: make(map[entryKey]*entry)}
}

// Advance moves the scheduler to the given total elapsed time and prunes
// entries that were not refreshed during the previous frame. The frame
// controller calls this once at BeginFrame.
func (s *Scheduler) Advance(elapsed time.Duration) {
	s.now = elapsed
	s.gen++
	if s.gen < 2 {
		return
	}
	for k, e := range s.entries {
		if e.touched < s.gen-1 {
			delete(s.entries, k)
		}
	}
}

// Now returns the scheduler's current time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Len returns the number of live entries.
func (s *Scheduler) Len() int {
	return len(s.entries)
}

// Animate evaluates a target-seeking tween for (owner, purpose) and
// refreshes it for this frame.
//
// On first call the value starts at target with no motion. Whenever target
// changes, the tween re-triggers from the current value, easing toward the
// new target over duration with the given curve (nil means linear). This
// is the hover-fade pattern: pass target=1 while hovered, target=0
// otherwise, and paint with the returned value.
func (s *Scheduler) Animate(owner state.ID, purpose string, target float64, duration time.Duration, curve func(float64) float64) float64 {
	k := entryKey{owner: owner, purpose: purpose}
	e, ok := s.entries[k]
	if !ok {
		e = &entry{target: target, startValue: target, current: target, start: s.now}
		s.entries[k] = e
	}
	e.touched = s.gen

	if target != e.target {
		e.startValue = e.current
		e.target = target
		e.start = s.now
	}
	e.duration = duration
	e.curve = curve

	e.current = e.evaluateTween(s.now)
	return e.current
}

// evaluateTween interpolates startValue toward target at time now.
func (e *entry) evaluateTween(now time.Duration) float64 {
	if e.duration <= 0 || now >= e.start+e.duration {
		return e.target
	}
	t := float64(now-e.start) / float64(e.duration)
	if e.curve != nil {
		t = e.curve(t)
	}
	return e.startValue + (e.target-e.startValue)*t
}

// Procedural evaluates a continuous function of elapsed-since-trigger time
// for (owner, purpose) and refreshes the entry for this frame. The
// function itself decides how to behave after its phases complete; a
// finished effect typically holds its final value.
//
// The trigger time is set when the entry is created and reset by
// Retrigger.
func (s *Scheduler) Procedural(owner state.ID, purpose string, fn func(elapsed time.Duration) float64) float64 {
	k := entryKey{owner: owner, purpose: purpose}
	e, ok := s.entries[k]
	if !ok {
		e = &entry{triggered: s.now}
		s.entries[k] = e
	}
	e.touched = s.gen
	e.fn = fn
	e.current = fn(s.now - e.triggered)
	return e.current
}

// Retrigger restarts the elapsed clock of a procedural entry. A missing
// entry is created so the following Procedural call starts from zero.
func (s *Scheduler) Retrigger(owner state.ID, purpose string) {
	k := entryKey{owner: owner, purpose: purpose}
	e, ok := s.entries[k]
	if !ok {
		e = &entry{}
		s.entries[k] = e
	}
	e.touched = s.gen
	e.triggered = s.now
}
