// Package errors provides structured error handling for the Ember UI core.
//
// A long-running interactive UI must never crash mid-frame from a single
// widget's bad input, so framework code reports errors here and degrades to
// a no-op instead of propagating failures up through the frame.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindMisuse indicates an API misuse, such as a widget call outside a frame.
	KindMisuse
	// KindLayout indicates a layout stack violation, such as unbalanced Begin/End pairs.
	KindLayout
	// KindState indicates a widget state problem, such as a kind mismatch for an id.
	KindState
	// KindRender indicates a rendering or backend resource error.
	KindRender
	// KindPopup indicates a popup or modal window error.
	KindPopup
	// KindConfig indicates a theme or configuration loading error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindMisuse:
		return "misuse"
	case KindLayout:
		return "layout"
	case KindState:
		return "state"
	case KindRender:
		return "render"
	case KindPopup:
		return "popup"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// UIError represents a structured error in the Ember core.
type UIError struct {
	// Op is the operation that failed (e.g., "layout.EndGrid").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Widget is the widget identity involved, if applicable.
	Widget string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *UIError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] widget=%s: %v", e.Op, e.Kind, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *UIError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.EndFrame").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// StateMismatchError reports that a widget id was looked up with a different
// state kind than it was created with.
type StateMismatchError struct {
	// ID is the widget identity string.
	ID string
	// Want is the kind requested by the caller.
	Want string
	// Got is the kind currently stored for the id.
	Got string
}

func (e *StateMismatchError) Error() string {
	return fmt.Sprintf("state kind mismatch for %q: requested %s, stored %s", e.ID, e.Want, e.Got)
}

// UnbalancedStackError reports container Begin/End calls that did not
// balance within a frame.
type UnbalancedStackError struct {
	// Stack names the stack that was left unbalanced ("layout" or "clip").
	Stack string
	// Depth is the number of entries left open at EndFrame.
	Depth int
}

func (e *UnbalancedStackError) Error() string {
	return fmt.Sprintf("%s stack unbalanced at EndFrame: %d entries still open", e.Stack, e.Depth)
}

// ErrorHandler receives errors reported by the Ember core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *UIError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
