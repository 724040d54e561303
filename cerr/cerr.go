// Package cerr defines the core's error taxonomy.
//
// Every error the core returns to a caller is a *cerr.Error with one of the
// Kind values below, generalizing the teacher's ad hoc fmt.Errorf("...: %w")
// wrapping (see dom/loader.go, dom/url.go) into a typed, switchable shape.
package cerr

import "fmt"

// Kind classifies a core error.
type Kind int

const (
	// MalformedInput covers unparseable path d, shape attributes, viewBox,
	// or element-tree input.
	MalformedInput Kind = iota
	// NumericDomain covers sqrt of a negative, division by zero, or a
	// non-finite result where finiteness is required.
	NumericDomain
	// UnsupportedCommand covers an unknown path command letter.
	UnsupportedCommand
	// UnsupportedFormat covers a requested output format outside the closed set.
	UnsupportedFormat
	// ResourceFailure covers an unreadable file, unreachable URL, non-2xx
	// HTTP response, or a timed-out fetch.
	ResourceFailure
	// ConfigurationError covers an invalid option, e.g. precision outside
	// [1, MaxPrecision].
	ConfigurationError
	// InternalInvariant covers a verification step that detected an
	// inconsistency; reported but does not corrupt output.
	InternalInvariant
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case NumericDomain:
		return "NumericDomain"
	case UnsupportedCommand:
		return "UnsupportedCommand"
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case ResourceFailure:
		return "ResourceFailure"
	case ConfigurationError:
		return "ConfigurationError"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type returned by the core. Line and Column are
// zero when a source position doesn't apply.
type Error struct {
	Kind   Kind
	Reason string
	Line   int
	Column int
	cause  error
}

// New creates an Error with no source position.
func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Newf creates an Error with a formatted reason.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// At attaches a source position to the error and returns it, for chaining.
func (e *Error) At(line, column int) *Error {
	e.Line = line
	e.Column = column
	return e
}

// Wrap creates an Error of kind wrapping cause, preserving errors.Is/As via Unwrap.
func Wrap(kind Kind, reason string, cause error) *Error {
	return &Error{Kind: kind, Reason: reason, cause: cause}
}

func (e *Error) Error() string {
	if e.Line > 0 || e.Column > 0 {
		if e.cause != nil {
			return fmt.Sprintf("%s: %s (line %d, column %d): %v", e.Kind, e.Reason, e.Line, e.Column, e.cause)
		}
		return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Reason, e.Line, e.Column)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the wrapped cause, if any, for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is a *cerr.Error of the given kind.
func Is(err error, kind Kind) bool {
	var ce *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			ce = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return ce != nil && ce.Kind == kind
}
