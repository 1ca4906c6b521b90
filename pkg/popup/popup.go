// Package popup manages Ember's single active overlay: context menus,
// dropdowns, and custom popups, plus the modal child windows hosts embed.
//
// At most one popup exists at a time. Its draw callback is deferred to
// EndFrame so it paints above every normal widget and can anchor itself to
// bounds computed earlier in the frame.
package popup

import (
	"github.com/go-drift/ember/pkg/graphics"
	"github.com/go-drift/ember/pkg/state"
)

// DrawFunc paints the popup. It runs at EndFrame, after all normal widget
// calls, and may update the popup's bounds via SetBounds as it draws.
type DrawFunc func()

// Result is an item selection made inside a popup, read exactly once by
// the owning widget.
type Result struct {
	// Owner is the widget that opened the popup.
	Owner state.ID
	// Index is the selected item.
	Index int
}

// active is the single live popup.
type active struct {
	owner       state.ID
	bounds      graphics.Rect
	draw        DrawFunc
	openedFrame uint64
}

// Manager owns the single active popup and its one-frame result slot.
type Manager struct {
	frame  uint64
	popup  *active
	result *Result
}

// NewManager creates a manager with no popup open.
func NewManager() *Manager {
	return &Manager{}
}

// BeginFrame records the current frame number, which distinguishes the
// opening frame from later ones for outside-press dismissal.
func (m *Manager) BeginFrame(frame uint64) {
	m.frame = frame
}

// Open makes owner's popup the active overlay, atomically replacing any
// existing popup and discarding its pending result.
func (m *Manager) Open(owner state.ID, bounds graphics.Rect, draw DrawFunc) {
	m.popup = &active{
		owner:       owner,
		bounds:      bounds,
		draw:        draw,
		openedFrame: m.frame,
	}
	m.result = nil
}

// Close dismisses the active popup without writing a result.
func (m *Manager) Close() {
	m.popup = nil
}

// IsOpen reports whether a popup is active.
func (m *Manager) IsOpen() bool {
	return m.popup != nil
}

// IsOwner reports whether id owns the active popup.
func (m *Manager) IsOwner(id state.ID) bool {
	return m.popup != nil && m.popup.owner == id
}

// Owner returns the active popup's owner, or the zero ID.
func (m *Manager) Owner() state.ID {
	if m.popup == nil {
		return state.ID{}
	}
	return m.popup.owner
}

// Bounds returns the active popup's screen bounds.
func (m *Manager) Bounds() graphics.Rect {
	if m.popup == nil {
		return graphics.Rect{}
	}
	return m.popup.bounds
}

// SetBounds updates the active popup's screen bounds. The draw callback
// calls this once it has laid the popup out, so the next frame's
// outside-press test uses real geometry.
func (m *Manager) SetBounds(bounds graphics.Rect) {
	if m.popup != nil {
		m.popup.bounds = bounds
	}
}

// Select records an item selection for the active popup's owner and closes
// the popup.
func (m *Manager) Select(index int) {
	if m.popup == nil {
		return
	}
	m.result = &Result{Owner: m.popup.owner, Index: index}
	m.popup = nil
}

// TakeResult returns the pending selection for owner, consuming it. The
// slot clears after one read.
func (m *Manager) TakeResult(owner state.ID) (int, bool) {
	if m.result == nil || m.result.Owner != owner {
		return 0, false
	}
	index := m.result.Index
	m.result = nil
	return index, true
}

// EndFrame runs the deferred popup logic: outside-press dismissal followed
// by the draw callback. pressed and pointer describe this frame's input.
//
// The opening frame is exempt from dismissal, since the press that opened
// the popup and the outside-press test would otherwise be the same event.
// A popup dismissed this frame does not draw this frame.
func (m *Manager) EndFrame(pressed bool, pointer graphics.Offset) {
	if m.popup == nil {
		return
	}
	if pressed && m.popup.openedFrame < m.frame && !m.popup.bounds.Contains(pointer) {
		m.popup = nil
		return
	}
	if m.popup.draw != nil {
		m.popup.draw()
	}
}
