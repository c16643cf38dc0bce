package validation

import (
	"fmt"
	"strings"
)

// Error codes for machine-readable identification.
const (
	ErrCodeSchema  = "schema"
	ErrCodeEncode  = "encode"
	ErrCodeCompile = "compile"
)

// FieldError is one place where a generated value does not match its schema.
type FieldError struct {
	// Field is the dotted location of the value, empty for the root.
	Field string `json:"field,omitempty"`

	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Result is the outcome of a conformance check.
type Result struct {
	Valid  bool          `json:"valid"`
	Errors []*FieldError `json:"errors,omitempty"`
}

// AddError records a failure and marks the result invalid.
func (r *Result) AddError(err *FieldError) {
	r.Valid = false
	r.Errors = append(r.Errors, err)
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	if !other.Valid {
		r.Valid = false
	}
	r.Errors = append(r.Errors, other.Errors...)
}

// Err returns nil for a valid result, or one error listing every failure.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Errorf("value does not match schema: %s", strings.Join(msgs, "; "))
}

// fieldFromPointer turns a JSON pointer into dotted notation.
func fieldFromPointer(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.TrimPrefix(ptr, "/"), "/", ".")
}
