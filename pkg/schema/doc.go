// Package schema defines the mock shape model: a recursive tree of object,
// array and primitive nodes that describes a JSON value to generate.
//
// Trees are immutable. Constructors validate their input and every
// modification returns a new node, so a tree may be shared freely between
// goroutines and edited without copying the parts that did not change.
//
// # JSON Form
//
// Schemas cross process boundaries as JSON:
//
//	{"type": "object", "fields": [
//	    {"key": "id", "type": "uuid"},
//	    {"key": "tags", "type": "array", "length": 3, "fields": [
//	        {"key": "value", "type": "string"}
//	    ]}
//	]}
//
// An array's fields describe its item. A single field keyed "value" is the
// item itself; any other fields make the item an object. Parse checks the
// document against MetaSchema before decoding it.
//
// # Errors
//
// Failures are reported as *Error values that match one of ErrInvalidSchema,
// ErrPathNotFound, ErrInvalidTarget or ErrDuplicateKey with errors.Is.
package schema
