package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/getmockd/mockshape/pkg/schema"
)

// Validator checks values against the output schema of one schema tree.
// The JSON Schema is compiled on first use; a Validator is safe for
// concurrent use.
type Validator struct {
	node        schema.Node
	compiled    *jsonschema.Schema
	compileErr  error
	compileOnce sync.Once
}

// NewValidator creates a Validator for values generated from n.
func NewValidator(n schema.Node) *Validator {
	return &Validator{node: n}
}

// Validate checks v. Any value that marshals to JSON is accepted, including
// the ordered objects the synthesizer produces.
func (v *Validator) Validate(value any) *Result {
	result := &Result{Valid: true}

	v.compileOnce.Do(func() {
		v.compiled, v.compileErr = compileOutputSchema(v.node)
	})
	if v.compileErr != nil {
		result.AddError(&FieldError{
			Code:    ErrCodeCompile,
			Message: fmt.Sprintf("schema compilation error: %v", v.compileErr),
		})
		return result
	}

	doc, err := toJSONValue(value)
	if err != nil {
		result.AddError(&FieldError{Code: ErrCodeEncode, Message: err.Error()})
		return result
	}

	if err := v.compiled.Validate(doc); err != nil {
		if verr, ok := err.(*jsonschema.ValidationError); ok {
			parseSchemaErrors(verr, result)
		} else {
			result.AddError(&FieldError{Code: ErrCodeSchema, Message: err.Error()})
		}
	}
	return result
}

// Conforms checks a single value against the output schema of n.
func Conforms(n schema.Node, value any) *Result {
	return NewValidator(n).Validate(value)
}

func compileOutputSchema(n schema.Node) (*jsonschema.Schema, error) {
	data, err := json.Marshal(OutputSchema(n))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true
	if err := compiler.AddResource("output.json", bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile("output.json")
}

// toJSONValue round-trips value through JSON so the validator sees plain
// maps, slices and json.Number.
func toJSONValue(value any) (any, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode value: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode value: %w", err)
	}
	return doc, nil
}

func parseSchemaErrors(err *jsonschema.ValidationError, result *Result) {
	if len(err.Causes) == 0 {
		result.AddError(&FieldError{
			Field:   fieldFromPointer(err.InstanceLocation),
			Code:    ErrCodeSchema,
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		parseSchemaErrors(cause, result)
	}
}
