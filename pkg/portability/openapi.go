package portability

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/getmockd/mockshape/pkg/detect"
	"github.com/getmockd/mockshape/pkg/schema"
)

// DefaultArrayLength is the length given to imported arrays whose
// constraints do not pin one down.
const DefaultArrayLength = 3

// ErrComponentNotFound is returned when the requested component schema does
// not exist in the document.
var ErrComponentNotFound = errors.New("component schema not found")

// openAPIFormats maps OpenAPI string formats onto field types.
var openAPIFormats = map[string]schema.FieldType{
	"email":         schema.TypeEmail,
	"idn-email":     schema.TypeEmail,
	"uri":           schema.TypeURL,
	"url":           schema.TypeURL,
	"iri":           schema.TypeURL,
	"uri-reference": schema.TypeURL,
	"date":          schema.TypeDate,
	"date-time":     schema.TypeDate,
	"uuid":          schema.TypeUUID,
	"phone":         schema.TypePhoneNumber,
	"tel":           schema.TypePhoneNumber,
}

// LoadOpenAPI reads an OpenAPI 3 document from disk and imports one of its
// component schemas.
func LoadOpenAPI(path, component string) (schema.Node, error) {
	loader := openapi3.NewLoader()
	loader.IsExternalRefsAllowed = true

	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document %s: %w", path, err)
	}
	return FromOpenAPI(doc, component)
}

// FromOpenAPI converts the named component schema of doc into a schema tree.
//
// Properties are imported in key order. String formats select field types;
// a scalar example, or else the first enum value, becomes the literal.
// Arrays get DefaultArrayLength, raised to minItems and lowered to maxItems.
// A reference back to a schema already being imported becomes an empty
// object.
func FromOpenAPI(doc *openapi3.T, component string) (schema.Node, error) {
	if doc == nil || doc.Components == nil {
		return nil, fmt.Errorf("%w: %q (document has no components)", ErrComponentNotFound, component)
	}
	ref, ok := doc.Components.Schemas[component]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("%w: %q", ErrComponentNotFound, component)
	}
	c := &converter{stack: make(map[*openapi3.Schema]bool)}
	return c.node(ref.Value, component)
}

type converter struct {
	stack map[*openapi3.Schema]bool
}

func (c *converter) node(s *openapi3.Schema, name string) (schema.Node, error) {
	if s == nil {
		return schema.NewPrimitive(detect.Type(name, nil)), nil
	}
	if c.stack[s] {
		return schema.MustObject(), nil
	}
	c.stack[s] = true
	defer delete(c.stack, s)

	switch {
	case len(s.AllOf) > 0:
		return c.allOf(s, name)
	case len(s.OneOf) > 0:
		return c.ref(s.OneOf[0], name)
	case len(s.AnyOf) > 0:
		return c.ref(s.AnyOf[0], name)
	case hasType(s, openapi3.TypeObject), len(s.Properties) > 0:
		return c.object(s.Properties)
	case hasType(s, openapi3.TypeArray):
		return c.array(s, name)
	default:
		return c.primitive(s, name), nil
	}
}

func (c *converter) ref(r *openapi3.SchemaRef, name string) (schema.Node, error) {
	if r == nil {
		return c.node(nil, name)
	}
	return c.node(r.Value, name)
}

func (c *converter) object(props openapi3.Schemas) (*schema.Object, error) {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	fields := make([]schema.Field, 0, len(keys))
	for _, k := range keys {
		n, err := c.ref(props[k], k)
		if err != nil {
			return nil, err
		}
		fields = append(fields, schema.Field{Key: k, Node: n})
	}
	return schema.NewObject(fields...)
}

// allOf merges the properties of every member; the first member that is
// not an object decides the shape when there are no properties at all.
func (c *converter) allOf(s *openapi3.Schema, name string) (schema.Node, error) {
	merged := make(openapi3.Schemas)
	for k, v := range s.Properties {
		merged[k] = v
	}
	for _, member := range s.AllOf {
		if member == nil || member.Value == nil {
			continue
		}
		for k, v := range member.Value.Properties {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return c.ref(s.AllOf[0], name)
	}
	return c.object(merged)
}

func (c *converter) array(s *openapi3.Schema, name string) (*schema.Array, error) {
	length := DefaultArrayLength
	if n := int(s.MinItems); n > length {
		length = n
	}
	if s.MaxItems != nil && int(*s.MaxItems) < length {
		length = int(*s.MaxItems)
	}
	item, err := c.ref(s.Items, name)
	if err != nil {
		return nil, err
	}
	return schema.NewArray(length, item), nil
}

func (c *converter) primitive(s *openapi3.Schema, name string) *schema.Primitive {
	var t schema.FieldType
	switch {
	case hasType(s, openapi3.TypeInteger), hasType(s, openapi3.TypeNumber):
		t = schema.TypeNumber
	case hasType(s, openapi3.TypeBoolean):
		t = schema.TypeBoolean
	default:
		t = stringType(s.Format, name)
	}

	p := schema.NewPrimitive(t)
	for _, candidate := range literalCandidates(s) {
		if lit, err := p.WithLiteral(candidate); err == nil {
			return lit
		}
	}
	return p
}

// stringType picks the field type of a string schema: its format when that
// is known, otherwise whatever the property name suggests among the string
// formats.
func stringType(format, name string) schema.FieldType {
	if t, ok := openAPIFormats[strings.ToLower(format)]; ok {
		return t
	}
	switch t := detect.Type(name, nil); t {
	case schema.TypeNumber, schema.TypeBoolean:
		return schema.TypeString
	default:
		return t
	}
}

func literalCandidates(s *openapi3.Schema) []any {
	var out []any
	if s.Example != nil {
		out = append(out, s.Example)
	}
	if len(s.Enum) > 0 && s.Enum[0] != nil {
		out = append(out, s.Enum[0])
	}
	return out
}

func hasType(s *openapi3.Schema, t string) bool {
	return s.Type != nil && slices.Contains(*s.Type, t)
}
