package input

import "github.com/go-drift/ember/pkg/state"

// Claim is a widget's request to be recognized as the resolved input target
// for this frame's press. Several overlapping widgets may each submit a
// claim in the same frame; the true owner is only knowable once the entire
// widget tree has executed.
type Claim struct {
	// ID is the claiming widget.
	ID state.ID
	// Priority breaks ties between overlapping claims. Higher wins.
	Priority int

	seq int
}

// pressPhase tags the router's two-phase click resolution state machine.
type pressPhase int

const (
	// pressIdle means no claim activity is in flight.
	pressIdle pressPhase = iota
	// pressPending means claims were submitted this frame and the winner
	// has not been resolved yet.
	pressPending
	// pressCommitted means a winner was resolved at EndFrame and becomes
	// the active-press owner next frame.
	pressCommitted
)

// Router arbitrates press claims across one frame.
//
// Resolution is deliberately deferred: the winner among this frame's claims
// is chosen at EndFrame (highest priority, then latest submission, which is
// topmost draw order) and committed to take effect next frame. Press-mode
// widgets read the committed activation in that following frame via
// TakeActivation.
type Router struct {
	claims []Claim
	seq    int
	phase  pressPhase

	committed Claim // winner staged at EndFrame
	offered   Claim // activation offered to widgets this frame
	hasOffer  bool
}

// NewRouter creates a router with no claim activity.
func NewRouter() *Router {
	return &Router{}
}

// BeginFrame rolls the committed winner into this frame's activation offer
// and clears the claim list.
func (r *Router) BeginFrame() {
	r.claims = r.claims[:0]
	r.seq = 0
	r.hasOffer = false
	if r.phase == pressCommitted {
		r.offered = r.committed
		r.hasOffer = true
	}
	r.phase = pressIdle
}

// Submit registers a claim for this frame. Widgets submit only when they
// held the potential-target slot at the moment of the press.
func (r *Router) Submit(id state.ID, priority int) {
	if id.IsZero() {
		return
	}
	r.seq++
	r.claims = append(r.claims, Claim{ID: id, Priority: priority, seq: r.seq})
	r.phase = pressPending
}

// HasClaims reports whether any claim was submitted this frame.
func (r *Router) HasClaims() bool {
	return len(r.claims) > 0
}

// Resolve chooses this frame's winner: highest priority, then latest
// submission. The winner is staged to become next frame's active-press
// owner. Returns the zero Claim and false when no claims were submitted.
func (r *Router) Resolve() (Claim, bool) {
	if len(r.claims) == 0 {
		r.phase = pressIdle
		return Claim{}, false
	}
	best := r.claims[0]
	for _, c := range r.claims[1:] {
		if c.Priority > best.Priority || (c.Priority == best.Priority && c.seq > best.seq) {
			best = c
		}
	}
	r.committed = best
	r.phase = pressCommitted
	return best, true
}

// TakeActivation consumes the press-mode activation for id, if the
// committed winner from the previous frame matches. It returns true at most
// once per commit; an unconsumed activation is discarded at the next
// BeginFrame (the widget moved or disappeared).
func (r *Router) TakeActivation(id state.ID) bool {
	if !r.hasOffer || r.offered.ID != id {
		return false
	}
	r.hasOffer = false
	return true
}
