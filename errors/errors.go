package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in an invocation the error occurred
type Phase string

const (
	PhaseCall    Phase = "call"    // host capability call
	PhaseEncode  Phase = "encode"  // domain value to payload
	PhaseExtract Phase = "extract" // payload to domain value
	PhaseConfig  Phase = "config"  // logging/destination configuration
	PhaseDecode  Phase = "decode"  // host reply classification
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindLimitExceeded   Kind = "limit_exceeded"
	KindUnauthenticated Kind = "unauthenticated"
	KindUnavailable     Kind = "unavailable"
	KindUnsupported     Kind = "unsupported"
	KindMalformedReply  Kind = "malformed_reply"
	KindInternal        Kind = "internal"
)

// Error is the structured error type used for host-call failures across
// the SDK. Codec failures are not represented here: every codec surfaces
// its own error type to the immediate caller.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Op     string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

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

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the host operation name, e.g. "cache_scalar.get"
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// HostCall passes through a failure reported by a host capability. The
// host's message is carried verbatim; this layer does not interpret it
// beyond the kind classification.
func HostCall(op string, kind Kind, message string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   kind,
		Op:     op,
		Detail: message,
	}
}

// Message creates a catch-all error with a plain message.
func Message(detail string, args ...any) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindInternal,
		Detail: detail,
	}
}

// NotFound creates a not-found error
func NotFound(op, what string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindNotFound,
		Op:     op,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// Limit creates a limit-exceeded error
func Limit(op, detail string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindLimitExceeded,
		Op:     op,
		Detail: detail,
	}
}

// Unauthenticated creates an authentication error
func Unauthenticated(op, detail string) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindUnauthenticated,
		Op:     op,
		Detail: detail,
	}
}

// MalformedReply reports a host reply that does not match the shape the
// issued command requires. It is raised at the point the mismatch is
// detected, never earlier.
func MalformedReply(op, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindMalformedReply,
		Op:     op,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
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
