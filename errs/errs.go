// Package errs defines the structured error kinds propagated to the CLI
// boundary. No error-kind framework (e.g. pkg/errors) appears anywhere in
// the example corpus, so this follows plain Go idiom: a small Kind enum
// wrapping an underlying cause, inspected with errors.As.
package errs

import "fmt"

// Kind classifies a pipeline failure.
type Kind int

const (
	// MalformedInput means the parser could not interpret the Tarantula file.
	MalformedInput Kind = iota
	// NonManifoldMesh means a face has more than two live incident tets.
	NonManifoldMesh
	// DegenerateGeometry means a tet of exactly zero volume was encountered.
	DegenerateGeometry
	// InvertedTet means a negative-volume tet was encountered.
	InvertedTet
	// EmptyResult means no tet survived the two-pass flood fill.
	EmptyResult
	// IOError means an I/O failure occurred at parse or write time.
	IOError
)

func (k Kind) String() string {
	switch k {
	case MalformedInput:
		return "MalformedInput"
	case NonManifoldMesh:
		return "NonManifoldMesh"
	case DegenerateGeometry:
		return "DegenerateGeometry"
	case InvertedTet:
		return "InvertedTet"
	case EmptyResult:
		return "EmptyResult"
	case IOError:
		return "IOError"
	default:
		return "Unknown"
	}
}

// Error is a structured pipeline error: a Kind plus a message and an
// optional wrapped cause.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an *Error of the given kind.
func New(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: cause}
}
