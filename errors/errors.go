package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad     Phase = "load"     // native library loading and symbol binding
	PhaseDispatch Phase = "dispatch" // boundary command dispatch
	PhaseParse    Phase = "parse"    // SVG document parsing
	PhaseRender   Phase = "render"   // rasterization pipeline
	PhaseResource Phase = "resource" // caller-side resource lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindCapabilityUnavailable Kind = "capability_unavailable"
	KindInvalidParameter      Kind = "invalid_parameter"
	KindParseFailed           Kind = "parse_failed"
	KindReadFailed            Kind = "read_failed"
	KindInternal              Kind = "internal"
	KindAllocation            Kind = "allocation"
	KindUnsupported           Kind = "unsupported"
	KindNotFound              Kind = "not_found"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is an *Error of the given kind, regardless of phase.
func IsKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}

// Convenience constructors for common error patterns

// CapabilityUnavailable reports a missing native library or symbol
func CapabilityUnavailable(phase Phase, what string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCapabilityUnavailable,
		Detail: what,
		Cause:  cause,
	}
}

// InvalidParameter reports malformed caller input
func InvalidParameter(phase Phase, detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidParameter,
		Detail: detail,
	}
}

// ParseFailed reports that the native parser rejected the input
func ParseFailed(detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindParseFailed,
		Detail: detail,
	}
}

// ReadFailed reports a failure to obtain the document bytes
func ReadFailed(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseResource,
		Kind:   KindReadFailed,
		Detail: detail,
		Cause:  cause,
	}
}

// Internal reports a native-side failure despite valid input
func Internal(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInternal,
		Detail: detail,
	}
}

// AllocationFailed reports a local allocation failure
func AllocationFailed(phase Phase, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// Unsupported reports a request for a capability this resource does not carry
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
