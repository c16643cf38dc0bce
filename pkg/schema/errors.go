package schema

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this module's schema and edit
// operations matches exactly one of these with errors.Is.
var (
	// ErrInvalidSchema reports a malformed or inconsistent schema document.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrPathNotFound reports a path that does not resolve to a node.
	ErrPathNotFound = errors.New("path not found")

	// ErrInvalidTarget reports an edit that cannot apply to the node it resolved to.
	ErrInvalidTarget = errors.New("invalid edit target")

	// ErrDuplicateKey reports an edit that would give an object two fields with one key.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Error carries the kind of failure and where it happened.
type Error struct {
	// Kind is one of ErrInvalidSchema, ErrPathNotFound, ErrInvalidTarget, ErrDuplicateKey.
	Kind error

	// Path locates the failure. Schema documents use JSON pointers
	// ("/fields/2/length"); tree edits use index paths ("/0/2").
	Path string

	Message string

	// Err is an optional underlying cause.
	Err error
}

// Errorf builds an *Error of the given kind.
func Errorf(kind error, path string, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
