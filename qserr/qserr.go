// Package qserr defines the error taxonomy shared across the sieve core.
package qserr

import "fmt"

// Kind classifies an error returned by the sieve core.
type Kind int

const (
	// InvalidInput marks a precondition violation on a public entry point.
	InvalidInput Kind = iota
	// InsufficientRelations marks a recoverable matrix/sieve shortfall.
	InsufficientRelations
	// NumericOverflow marks a contract violation in a fixed-width path.
	NumericOverflow
	// Cancelled marks a user-requested or timeout-driven abort.
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case InsufficientRelations:
		return "InsufficientRelations"
	case NumericOverflow:
		return "NumericOverflow"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying cause with a Kind so callers can branch on
// errors.As without parsing messages.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an *Error of the given kind wrapping msg.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Err: fmt.Errorf("%s", msg)}
}

// Wrap builds an *Error of the given kind wrapping err.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Is reports whether err (or anything it wraps) is a *Error of kind k.
func Is(err error, k Kind) bool {
	var e *Error
	for err != nil {
		if ee, ok := err.(*Error); ok {
			e = ee
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return e != nil && e.Kind == k
}
