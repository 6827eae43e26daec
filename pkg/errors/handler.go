package errors

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Reporter delivers errors to a handler, filling in timestamps. The zero
// value discards everything.
type Reporter struct {
	Handler Handler
}

// Report sends err to the handler. If err.Timestamp is zero, it is set to
// the current time.
func (r Reporter) Report(err *Error) {
	if err == nil || r.Handler == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	r.Handler.HandleError(err)
}

// Guard runs fn and converts a panic into a KindPanic report. It returns
// false if fn panicked.
func (r Reporter) Guard(op string, index int, fn func()) (ok bool) {
	defer func() {
		if v := recover(); v != nil {
			ok = false
			r.Report(&Error{
				Op:         op,
				Kind:       KindPanic,
				Index:      index,
				Err:        &PanicError{Value: v},
				StackTrace: CaptureStack(),
			})
		}
	}()
	fn()
	return true
}

// CaptureStack returns the current call stack as a string, skipping the
// frames of CaptureStack and its direct caller.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
