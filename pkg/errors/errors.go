// Package errors provides structured error reporting for the cutlinear module.
//
// Geometry code never fails: out-of-range values are clamped and unknown
// names fall back to defaults. What this package carries are the failures
// and fallbacks of the outer surfaces (style files, the CLI) so a host can
// route them to its own handler.
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
	// KindConfig indicates a configuration value that was replaced by a default.
	KindConfig
	// KindParsing indicates a style file that could not be decoded.
	KindParsing
	// KindRender indicates a failure writing rendered output.
	KindRender
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindProvider indicates a misbehaving provider callback.
	KindProvider
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindParsing:
		return "parsing"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// LayoutError represents a structured error in the cutlinear module.
type LayoutError struct {
	// Op is the operation that failed (e.g., "style.Load").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Path is the configuration key or file involved, if any.
	Path string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *LayoutError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s [%s] path=%s: %v", e.Op, e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "cmd.render").
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

// ValueError describes a configuration value that could not be used as given.
type ValueError struct {
	// Field is the configuration key.
	Field string
	// Got is the value found.
	Got any
	// Fallback is the value used instead.
	Fallback any
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %v for %s, using %v", e.Got, e.Field, e.Fallback)
}

// ErrorHandler receives errors reported by the module.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *LayoutError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
