// Package state provides the persistent widget state store that backs
// Ember's immediate-mode API.
//
// Application code re-describes its interface every frame, so the only
// cross-frame memory a widget has is the record this package keeps for its
// identity. Identity is structured: a path-like name plus a kind tag, so
// retrieving the wrong state type for an id fails explicitly instead of
// silently aliasing another widget's state.
package state

import (
	"fmt"
	"hash/fnv"
)

// Kind tags an ID with the widget state type it refers to.
// Two ids with the same name but different kinds are distinct.
type Kind string

// ID is a stable widget identity across frames. Same id + same call site
// yields the same persistent state on every frame.
type ID struct {
	// Name is a path-like identifier supplied by the caller,
	// e.g. "sidebar/files" or "toolbar/save:2".
	Name string
	// Kind is the state type tag.
	Kind Kind
}

// NewID constructs an ID from a caller-supplied name and kind.
func NewID(name string, kind Kind) ID {
	return ID{Name: name, Kind: kind}
}

// Sub returns a child id with the given segment appended to the path.
func (id ID) Sub(segment string) ID {
	return ID{Name: id.Name + "/" + segment, Kind: id.Kind}
}

// Index returns a variant of the id distinguished by an integer sub-key.
// Use this for widgets emitted in loops.
func (id ID) Index(i int) ID {
	return ID{Name: fmt.Sprintf("%s:%d", id.Name, i), Kind: id.Kind}
}

// IsZero reports whether the id is the zero identity (no widget).
func (id ID) IsZero() bool {
	return id.Name == "" && id.Kind == ""
}

// Hash returns a deterministic 64-bit hash of the identity.
func (id ID) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(id.Kind))
	h.Write([]byte{0})
	h.Write([]byte(id.Name))
	return h.Sum64()
}

func (id ID) String() string {
	if id.IsZero() {
		return "<none>"
	}
	return string(id.Kind) + ":" + id.Name
}
