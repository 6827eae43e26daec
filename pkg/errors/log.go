package errors

import (
	"context"
	"log/slog"
)

// LogHandler is a Handler that writes errors to a slog.Logger. Index faults
// are debug-level, panics are errors, everything else is a warning.
type LogHandler struct {
	Logger *slog.Logger
	// Verbose adds stack traces to panic records.
	Verbose bool
}

// HandleError logs err.
func (h *LogHandler) HandleError(err *Error) {
	if err == nil {
		return
	}
	logger := h.Logger
	if logger == nil {
		logger = slog.Default()
	}

	level := slog.LevelWarn
	switch err.Kind {
	case KindIndex:
		level = slog.LevelDebug
	case KindPanic:
		level = slog.LevelError
	}

	attrs := []slog.Attr{
		slog.String("op", err.Op),
		slog.String("kind", err.Kind.String()),
	}
	if err.Index != NoIndex {
		attrs = append(attrs, slog.Int("index", err.Index))
	}
	if err.Err != nil {
		attrs = append(attrs, slog.String("error", err.Err.Error()))
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, slog.String("stack", err.StackTrace))
	}
	logger.LogAttrs(context.Background(), level, "tabscroll error", attrs...)
}
