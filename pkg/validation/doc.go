// Package validation checks generated values against the schema they were
// generated from.
//
// Each field type has a format validator (ValidateFormat). OutputSchema
// renders a schema tree as a JSON Schema describing every value it can
// generate, and Validator checks values against that JSON Schema with
// format assertions enabled:
//
//	v := validation.NewValidator(node)
//	if res := v.Validate(value); !res.Valid {
//	    return res.Err()
//	}
//
// DetectFormat goes the other way and guesses a field type from a sample
// string; it is used when inferring schemas from example documents.
package validation
