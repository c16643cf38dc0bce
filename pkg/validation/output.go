package validation

import (
	"github.com/getmockd/mockshape/pkg/schema"
)

// jsonSchemaFormats maps field types to JSON Schema format keywords.
var jsonSchemaFormats = map[schema.FieldType]string{
	schema.TypeEmail: "email",
	schema.TypeURL:   "uri",
	schema.TypeDate:  "date",
	schema.TypeUUID:  "uuid",
}

// OutputSchema renders the JSON Schema (Draft 2020-12) every value generated
// from n satisfies: objects list all keys as required and allow nothing
// else, arrays have exactly their length, literals are constants.
func OutputSchema(n schema.Node) map[string]any {
	out := nodeSchema(n)
	out["$schema"] = "https://json-schema.org/draft/2020-12/schema"
	return out
}

func nodeSchema(n schema.Node) map[string]any {
	switch x := n.(type) {
	case *schema.Object:
		props := make(map[string]any, x.Len())
		required := make([]any, 0, x.Len())
		for _, f := range x.All() {
			props[f.Key] = nodeSchema(f.Node)
			required = append(required, f.Key)
		}
		return map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		}
	case *schema.Array:
		return map[string]any{
			"type":     "array",
			"items":    nodeSchema(x.Item()),
			"minItems": x.Length(),
			"maxItems": x.Length(),
		}
	case *schema.Primitive:
		return primitiveSchema(x)
	default:
		return map[string]any{}
	}
}

func primitiveSchema(p *schema.Primitive) map[string]any {
	if lit, ok := p.Literal(); ok {
		return map[string]any{"const": lit}
	}
	t := p.Type()
	out := map[string]any{"type": t.JSONType()}
	if format, ok := jsonSchemaFormats[t]; ok {
		out["format"] = format
	}
	if t == schema.TypePhoneNumber {
		out["pattern"] = PhonePattern
	}
	return out
}
