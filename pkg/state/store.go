package state

import (
	"fmt"

	"github.com/go-drift/ember/pkg/errors"
)

// DefaultEvictAfter is the number of frames an id may go untouched before
// its state is reclaimed by EvictOrphans.
const DefaultEvictAfter = 600

// entry holds one widget's persistent state together with bookkeeping.
type entry struct {
	kind    Kind
	value   any
	touched uint64 // frame number of the last StateOf access
}

// Store is the session-wide widget state table. It is an explicit object,
// constructed at startup and threaded through every call; there is no
// ambient global store.
//
// The store also owns the cross-frame input bookkeeping: which widget has
// keyboard focus, which widget is actively pressed, and which widget is the
// current frame's potential input target.
type Store struct {
	frame   uint64
	entries map[string]*entry

	focused        ID
	active         ID
	activePriority int
	potential      ID

	// EvictAfter bounds state lifetime: ids untouched for this many frames
	// are reclaimed by EvictOrphans. Zero disables eviction.
	EvictAfter uint64
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{
		entries:    make(map[string]*entry),
		EvictAfter: DefaultEvictAfter,
	}
}

// BeginFrame advances the store's frame counter and reclaims orphaned state.
// The frame controller calls this once per frame.
func (s *Store) BeginFrame() {
	s.frame++
	// Potential target is per-frame: widgets must re-register every frame.
	s.potential = ID{}
	if s.EvictAfter > 0 {
		s.EvictOrphans(s.EvictAfter)
	}
}

// Frame returns the current frame number.
func (s *Store) Frame() uint64 {
	return s.frame
}

// Len returns the number of ids with stored state.
func (s *Store) Len() int {
	return len(s.entries)
}

// StateOf returns the persistent *T for id, default-constructing it on
// first access. The same id and type yield the same object identity across
// frames.
//
// A kind or type mismatch is reported and replaced with a fresh default
// rather than aliasing another widget's state or crashing the frame.
func StateOf[T any](s *Store, id ID) *T {
	e, ok := s.entries[id.Name]
	if ok {
		if e.kind != id.Kind {
			errors.Report(&errors.UIError{
				Op:     "state.StateOf",
				Kind:   errors.KindState,
				Widget: id.String(),
				Err:    &errors.StateMismatchError{ID: id.Name, Want: string(id.Kind), Got: string(e.kind)},
			})
			ok = false
		} else if _, isT := e.value.(*T); !isT {
			errors.Report(&errors.UIError{
				Op:     "state.StateOf",
				Kind:   errors.KindState,
				Widget: id.String(),
				Err:    fmt.Errorf("stored state is %T, requested %T", e.value, (*T)(nil)),
			})
			ok = false
		}
	}
	if !ok {
		e = &entry{kind: id.Kind, value: new(T)}
		s.entries[id.Name] = e
	}
	e.touched = s.frame
	return e.value.(*T)
}

// Touch stamps the id as used this frame without creating state.
// Culled widgets call this so their state survives eviction while offscreen.
func (s *Store) Touch(id ID) {
	if e, ok := s.entries[id.Name]; ok && e.kind == id.Kind {
		e.touched = s.frame
	}
}

// Delete removes the stored state for id, if any.
func (s *Store) Delete(id ID) {
	delete(s.entries, id.Name)
}

// EvictOrphans reclaims state for ids untouched in the last maxAge frames
// and returns the number of entries removed. Focused or actively pressed
// widgets are never evicted.
func (s *Store) EvictOrphans(maxAge uint64) int {
	if s.frame < maxAge {
		return 0
	}
	cutoff := s.frame - maxAge
	removed := 0
	for name, e := range s.entries {
		if e.touched >= cutoff {
			continue
		}
		if name == s.focused.Name || name == s.active.Name {
			continue
		}
		delete(s.entries, name)
		removed++
	}
	return removed
}

// FocusedID returns the widget holding keyboard focus, or the zero ID.
func (s *Store) FocusedID() ID {
	return s.focused
}

// SetFocus gives keyboard focus to id.
func (s *Store) SetFocus(id ID) {
	s.focused = id
}

// ClearFocus removes keyboard focus.
func (s *Store) ClearFocus() {
	s.focused = ID{}
}

// IsFocused reports whether id holds keyboard focus.
func (s *Store) IsFocused(id ID) bool {
	return !id.IsZero() && s.focused == id
}

// ActivePressID returns the widget marked actively pressed, or the zero ID.
// At most one widget holds this status at a time.
func (s *Store) ActivePressID() ID {
	return s.active
}

// ActivePressPriority returns the priority the active press was taken with.
func (s *Store) ActivePressPriority() int {
	return s.activePriority
}

// TrySetActivePress marks id as actively pressed if no widget holds the
// status, or if priority is at least the current holder's priority (later
// equal-priority callers win, matching topmost draw order). Reports whether
// the press was taken.
func (s *Store) TrySetActivePress(id ID, priority int) bool {
	if id.IsZero() {
		return false
	}
	if !s.active.IsZero() && priority < s.activePriority {
		return false
	}
	s.active = id
	s.activePriority = priority
	return true
}

// ClearActivePress releases the active press if id holds it.
func (s *Store) ClearActivePress(id ID) {
	if s.active == id {
		s.active = ID{}
		s.activePriority = 0
	}
}

// ClearAllActivePressState force-clears the active press regardless of
// owner. The frame controller uses this as a stale-state safety net when
// the button is up but a widget is still marked pressed.
func (s *Store) ClearAllActivePressState() {
	s.active = ID{}
	s.activePriority = 0
}

// IsActivePressed reports whether id holds the active press.
func (s *Store) IsActivePressed(id ID) bool {
	return !id.IsZero() && s.active == id
}

// PotentialTargetID returns the widget registered as this frame's potential
// input target, or the zero ID.
func (s *Store) PotentialTargetID() ID {
	return s.potential
}

// SetPotentialTarget registers id as the potential input target. The last
// call in a frame wins, which is equivalent to topmost z-order since later
// draw calls overwrite earlier registrations.
func (s *Store) SetPotentialTarget(id ID) {
	s.potential = id
}
