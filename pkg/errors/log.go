package errors

import "log/slog"

// LogHandler is an ErrorHandler that writes records to a slog.Logger.
type LogHandler struct {
	// Logger receives the records; nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to the records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleError logs a LayoutError. Config fallbacks are warnings, the rest errors.
func (h *LogHandler) HandleError(err *LayoutError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind.String(), "err", err.Err}
	if err.Path != "" {
		attrs = append(attrs, "path", err.Path)
	}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	if err.Kind == KindConfig {
		h.logger().Warn("cutlinear fallback", attrs...)
		return
	}
	h.logger().Error("cutlinear error", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("cutlinear panic", attrs...)
}
