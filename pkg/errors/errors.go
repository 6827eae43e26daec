// Package errors provides structured error reporting for tab scroll widgets.
//
// Widget operations never return errors to their callers: faults such as a
// data source handing back no view are absorbed and reported to a Handler
// owned by the widget instance.
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
	// KindDataSource indicates a data source returned no view or misbehaved.
	KindDataSource
	// KindIndex indicates a page index outside [0, pageCount).
	KindIndex
	// KindLayout indicates layout ran without usable geometry.
	KindLayout
	// KindConfig indicates invalid configuration.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindDataSource:
		return "datasource"
	case KindIndex:
		return "index"
	case KindLayout:
		return "layout"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// NoIndex marks an Error that is not tied to a page.
const NoIndex = -1

// Error is a structured widget error.
type Error struct {
	// Op is the operation that failed (e.g., "tabscroll.materialize").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Index is the page index involved, or NoIndex.
	Index int
	// Err is the underlying error.
	Err error
	// StackTrace is set for recovered panics.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Index != NoIndex {
		return fmt.Sprintf("%s [%s] index=%d: %v", e.Op, e.Kind, e.Index, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from panic().
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by a widget.
type Handler interface {
	HandleError(err *Error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(err *Error)

// HandleError calls f(err).
func (f HandlerFunc) HandleError(err *Error) {
	f(err)
}
