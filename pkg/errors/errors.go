// Package errors provides structured error handling for the Collage editor
// core. The span and offset-mapping hot paths are total functions and never
// produce errors; everything reported here comes from the boundaries around
// them (persistence, configuration, surface integration) or from recovered
// panics in event entry points.
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
	// KindReconcile indicates a failure while rebuilding spans from a
	// surface mutation.
	KindReconcile
	// KindSurface indicates a surface-integration error (clipboard,
	// selection restore, dispatch).
	KindSurface
	// KindPersist indicates a document load/store error.
	KindPersist
	// KindConfig indicates a configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindReconcile:
		return "reconcile"
	case KindSurface:
		return "surface"
	case KindPersist:
		return "persist"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// EditorError represents a structured error in the editor core.
type EditorError struct {
	// Op is the operation that failed (e.g., "document.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Element is the ID of the affected canvas element, if applicable.
	Element string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *EditorError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("%s [%s] element=%s: %v", e.Op, e.Kind, e.Element, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "editor.SyncFromSurface").
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

// ErrorHandler receives errors reported by the editor core.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *EditorError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
