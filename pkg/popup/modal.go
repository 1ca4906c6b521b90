package popup

// ModalDismissed is passed to a modal window's closed callback when the
// window is torn down without an explicit result: replaced by another
// modal, or force-closed by the host.
const ModalDismissed = -1

// ModalWindow describes an open modal child window.
type ModalWindow struct {
	// Title is the window chrome title.
	Title string
	// Width and Height are the requested content size in logical pixels.
	Width, Height float64
	// Draw paints the window contents each frame while the window is open.
	Draw func()
	// Closed runs once when the window closes, with the result code passed
	// to Close.
	Closed func(result int)
}

// ModalHost owns the single modal child window a session may have open.
// It is the popup pattern at window scale: at most one, opening replaces,
// closing delivers a result to the opener.
type ModalHost struct {
	window *ModalWindow
}

// NewModalHost creates a host with no window open.
func NewModalHost() *ModalHost {
	return &ModalHost{}
}

// Open shows a modal window. An already-open window is closed first with
// ModalDismissed.
func (h *ModalHost) Open(title string, width, height float64, draw func(), closed func(result int)) {
	if h.window != nil && h.window.Closed != nil {
		h.window.Closed(ModalDismissed)
	}
	h.window = &ModalWindow{
		Title:  title,
		Width:  width,
		Height: height,
		Draw:   draw,
		Closed: closed,
	}
}

// Close closes the open window, delivering result to its closed callback.
// Closing an already-closed host is a no-op.
func (h *ModalHost) Close(result int) {
	if h.window == nil {
		return
	}
	closed := h.window.Closed
	h.window = nil
	if closed != nil {
		closed(result)
	}
}

// IsOpen reports whether a modal window is open.
func (h *ModalHost) IsOpen() bool {
	return h.window != nil
}

// Active returns the open window, or nil.
func (h *ModalHost) Active() *ModalWindow {
	return h.window
}

// Draw paints the open window's contents, if any. Hosts call this after
// the main frame so the window layers above it.
func (h *ModalHost) Draw() {
	if h.window != nil && h.window.Draw != nil {
		h.window.Draw()
	}
}
