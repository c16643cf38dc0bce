package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const metaSchemaURL = "mockshape-schema.json"

var (
	metaOnce   sync.Once
	metaSchema *jsonschema.Schema
	metaErr    error
)

// MetaSchema returns the JSON Schema (Draft 2020-12) every schema document
// must satisfy. The primitive type enumerations are built from FieldTypes.
func MetaSchema() map[string]any {
	primitiveTypes := make([]any, 0, len(fieldTypes))
	fieldKinds := []any{string(KindObject), string(KindArray)}
	for _, t := range fieldTypes {
		primitiveTypes = append(primitiveTypes, string(t))
		fieldKinds = append(fieldKinds, string(t))
	}

	length := map[string]any{"type": "integer", "minimum": 0, "maximum": MaxArrayLength}
	literal := map[string]any{"type": []any{"string", "number", "boolean"}}
	arrayNeedsLength := map[string]any{
		"if":   map[string]any{"properties": map[string]any{"type": map[string]any{"const": string(KindArray)}}, "required": []any{"type"}},
		"then": map[string]any{"required": []any{"length"}},
	}

	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$defs": map[string]any{
			"literal": literal,
			"length":  length,
			"fields": map[string]any{
				"type":  "array",
				"items": map[string]any{"$ref": "#/$defs/field"},
			},
			"field": map[string]any{
				"type":     "object",
				"required": []any{"key", "type"},
				"properties": map[string]any{
					"key":       map[string]any{"type": "string"},
					"type":      map[string]any{"enum": fieldKinds},
					"value":     map[string]any{"$ref": "#/$defs/literal"},
					"fields":    map[string]any{"$ref": "#/$defs/fields"},
					"length":    map[string]any{"$ref": "#/$defs/length"},
					"itemShape": map[string]any{"enum": []any{string(KindObject)}},
				},
				"allOf": []any{arrayNeedsLength},
			},
		},
		"type":     "object",
		"required": []any{"type"},
		"properties": map[string]any{
			"type":           map[string]any{"enum": []any{string(KindObject), string(KindArray), string(KindPrimitive)}},
			"fields":         map[string]any{"$ref": "#/$defs/fields"},
			"length":         map[string]any{"$ref": "#/$defs/length"},
			"itemShape":      map[string]any{"enum": []any{string(KindObject)}},
			"primitiveType":  map[string]any{"enum": primitiveTypes},
			"primitiveValue": map[string]any{"$ref": "#/$defs/literal"},
		},
		"allOf": []any{
			arrayNeedsLength,
			map[string]any{
				"if":   map[string]any{"properties": map[string]any{"type": map[string]any{"const": string(KindPrimitive)}}, "required": []any{"type"}},
				"then": map[string]any{"required": []any{"primitiveType"}},
			},
		},
	}
}

// compiledMetaSchema compiles MetaSchema once per process.
func compiledMetaSchema() (*jsonschema.Schema, error) {
	metaOnce.Do(func() {
		data, err := json.Marshal(MetaSchema())
		if err != nil {
			metaErr = fmt.Errorf("failed to marshal meta-schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(metaSchemaURL, bytes.NewReader(data)); err != nil {
			metaErr = fmt.Errorf("failed to add meta-schema resource: %w", err)
			return
		}
		metaSchema, metaErr = compiler.Compile(metaSchemaURL)
	})
	return metaSchema, metaErr
}

// checkShape validates a decoded document against the meta-schema and turns
// the failures into a single ErrInvalidSchema error.
func checkShape(doc any) error {
	meta, err := compiledMetaSchema()
	if err != nil {
		return &Error{Kind: ErrInvalidSchema, Message: "meta-schema unavailable", Err: err}
	}
	err = meta.Validate(doc)
	if err == nil {
		return nil
	}
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &Error{Kind: ErrInvalidSchema, Err: err}
	}

	leaves := map[string]string{}
	collectLeaves(verr, leaves)
	locations := make([]string, 0, len(leaves))
	for loc := range leaves {
		locations = append(locations, loc)
	}
	sort.Strings(locations)

	msgs := make([]string, len(locations))
	for i, loc := range locations {
		msgs[i] = leaves[loc]
		if loc != "" {
			msgs[i] = loc + ": " + msgs[i]
		}
	}
	path := "/"
	if len(locations) > 0 && locations[0] != "" {
		path = locations[0]
	}
	return &Error{Kind: ErrInvalidSchema, Path: path, Message: strings.Join(msgs, "; ")}
}

// collectLeaves keeps the first leaf message for every instance location.
func collectLeaves(err *jsonschema.ValidationError, out map[string]string) {
	if len(err.Causes) == 0 {
		if _, seen := out[err.InstanceLocation]; !seen {
			out[err.InstanceLocation] = err.Message
		}
		return
	}
	for _, cause := range err.Causes {
		collectLeaves(cause, out)
	}
}
