// Package errors provides structured error handling for the duit toolkit.
//
// Errors discovered while loading resources (stylesheets, specs) are returned
// to the caller. Errors discovered in the middle of a frame cannot be
// recovered from sensibly; those are reported through the global handler and
// then raised as a panic carrying a *DuitError (see Fatal).
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
	// KindStyle indicates a stylesheet or style resolution failure.
	KindStyle
	// KindTypeMismatch indicates a widget handle used with the wrong widget type.
	KindTypeMismatch
	// KindResource indicates a missing texture, font or file.
	KindResource
	// KindBorrow indicates a pod was accessed while already in use.
	KindBorrow
	// KindSpec indicates an invalid widget specification.
	KindSpec
	// KindConfig indicates an invalid project configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindStyle:
		return "style"
	case KindTypeMismatch:
		return "type_mismatch"
	case KindResource:
		return "resource"
	case KindBorrow:
		return "borrow"
	case KindSpec:
		return "spec"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// DuitError represents a structured error raised by the toolkit.
type DuitError struct {
	// Op is the operation that failed (e.g., "widget.Pod.Layout").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *DuitError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *DuitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "ui.Render").
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

// TypeMismatchError is raised when a typed widget handle does not match the
// dynamic type of the widget it points to.
type TypeMismatchError struct {
	// Want is the type requested through the handle.
	Want string
	// Got is the dynamic type of the widget.
	Got string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("widget is %s, not %s", e.Got, e.Want)
}

// BorrowError is raised when a pod is entered while it is already being
// laid out, painted or dispatched to.
type BorrowError struct {
	// Widget is the type name of the pod's widget.
	Widget string
	// Op is the operation that attempted the second borrow.
	Op string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("%s: %s is already borrowed", e.Op, e.Widget)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *DuitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
