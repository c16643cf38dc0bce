package schema

import (
	"encoding/json"
	"fmt"
	"iter"
	"math"

	"github.com/getmockd/mockshape/internal/pseq"
)

// MaxArrayLength is the largest number of elements an array node generates.
const MaxArrayLength = 100

// Kind identifies the variant of a Node.
type Kind string

// Node kinds.
const (
	KindObject    Kind = "object"
	KindArray     Kind = "array"
	KindPrimitive Kind = "primitive"
)

// Node is one node of a schema tree: *Object, *Array or *Primitive.
//
// Nodes are immutable. Every change produces a new node, and unchanged
// children are shared between the old and new trees, so a tree can be read
// from any number of goroutines.
type Node interface {
	Kind() Kind
	sealed()
}

// Field is a keyed child of an object.
type Field struct {
	Key  string
	Node Node
}

// =============================================================================
// Object
// =============================================================================

// Object is an ordered set of uniquely keyed fields.
type Object struct {
	fields pseq.Seq[Field]
	keys   pseq.Set[string]
}

// NewObject builds an object from fields in order. A nil field node becomes
// a string primitive. Repeated keys are rejected with ErrInvalidSchema.
func NewObject(fields ...Field) (*Object, error) {
	var keys pseq.Set[string]
	normalized := make([]Field, len(fields))
	for i, f := range fields {
		var added bool
		keys, added = keys.Add(f.Key)
		if !added {
			return nil, Errorf(ErrInvalidSchema, fmt.Sprintf("/fields/%d/key", i), "duplicate key %q", f.Key)
		}
		if f.Node == nil {
			f.Node = NewPrimitive(TypeString)
		}
		normalized[i] = f
	}
	return &Object{fields: pseq.Of(normalized...), keys: keys}, nil
}

// MustObject is NewObject that panics on duplicate keys. Intended for
// fixtures and package-level defaults.
func MustObject(fields ...Field) *Object {
	o, err := NewObject(fields...)
	if err != nil {
		panic(err)
	}
	return o
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) sealed()    {}

// Len returns the number of fields.
func (o *Object) Len() int { return o.fields.Len() }

// Field returns the field at index i. It panics when i is out of range.
func (o *Object) Field(i int) Field { return o.fields.At(i) }

// Fields copies the fields into a slice.
func (o *Object) Fields() []Field { return o.fields.Values() }

// All iterates over the fields in order.
func (o *Object) All() iter.Seq2[int, Field] { return o.fields.All() }

// Has reports whether a field named key exists.
func (o *Object) Has(key string) bool { return o.keys.Has(key) }

// Index returns the position of key, or -1.
func (o *Object) Index(key string) int {
	if !o.keys.Has(key) {
		return -1
	}
	for i, f := range o.fields.All() {
		if f.Key == key {
			return i
		}
	}
	return -1
}

// Lookup returns the node stored under key.
func (o *Object) Lookup(key string) (Node, bool) {
	i := o.Index(key)
	if i < 0 {
		return nil, false
	}
	return o.fields.At(i).Node, true
}

// WithNode returns a copy of o whose field i holds n. The key is unchanged.
func (o *Object) WithNode(i int, n Node) *Object {
	f := o.fields.At(i)
	f.Node = n
	return &Object{fields: o.fields.Set(i, f), keys: o.keys}
}

// Append returns a copy of o with f added last. A nil node becomes a string
// primitive.
func (o *Object) Append(f Field) (*Object, error) {
	keys, added := o.keys.Add(f.Key)
	if !added {
		return nil, Errorf(ErrDuplicateKey, "", "object already has a field %q", f.Key)
	}
	if f.Node == nil {
		f.Node = NewPrimitive(TypeString)
	}
	return &Object{fields: o.fields.Append(f), keys: keys}, nil
}

// Remove returns a copy of o without field i.
func (o *Object) Remove(i int) *Object {
	f := o.fields.At(i)
	keys, _ := o.keys.Remove(f.Key)
	return &Object{fields: o.fields.Delete(i), keys: keys}
}

// Rename returns a copy of o whose field i is called key.
func (o *Object) Rename(i int, key string) (*Object, error) {
	f := o.fields.At(i)
	if f.Key == key {
		return o, nil
	}
	keys, added := o.keys.Add(key)
	if !added {
		return nil, Errorf(ErrDuplicateKey, "", "object already has a field %q", key)
	}
	keys, _ = keys.Remove(f.Key)
	f.Key = key
	return &Object{fields: o.fields.Set(i, f), keys: keys}, nil
}

// =============================================================================
// Array
// =============================================================================

// Array generates length independent values from one item template.
type Array struct {
	length int
	item   Node
}

// ClampLength forces n into [0, MaxArrayLength].
func ClampLength(n int) int {
	return min(max(n, 0), MaxArrayLength)
}

// NewArray builds an array node. The length is clamped to
// [0, MaxArrayLength] and a nil item becomes a string primitive.
func NewArray(length int, item Node) *Array {
	if item == nil {
		item = NewPrimitive(TypeString)
	}
	return &Array{length: ClampLength(length), item: item}
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) sealed()    {}

// Length returns the number of elements generated.
func (a *Array) Length() int { return a.length }

// Item returns the template each element is generated from.
func (a *Array) Item() Node { return a.item }

// WithLength returns a copy of a with a clamped length.
func (a *Array) WithLength(n int) *Array { return NewArray(n, a.item) }

// WithItem returns a copy of a with a new item template.
func (a *Array) WithItem(item Node) *Array { return NewArray(a.length, item) }

// =============================================================================
// Primitive
// =============================================================================

// Primitive is a leaf value. With a literal it always generates that
// literal; otherwise a value is generated from its type.
type Primitive struct {
	typ        FieldType
	literal    any
	hasLiteral bool
}

// NewPrimitive builds a primitive without a literal.
func NewPrimitive(t FieldType) *Primitive {
	return &Primitive{typ: t}
}

// NewLiteral builds a primitive that always generates v. v must be a string,
// a bool or a number. The literal is not checked against t.
func NewLiteral(t FieldType, v any) (*Primitive, error) {
	lit, err := normalizeLiteral(v)
	if err != nil {
		return nil, err
	}
	return &Primitive{typ: t, literal: lit, hasLiteral: true}, nil
}

func (*Primitive) Kind() Kind { return KindPrimitive }
func (*Primitive) sealed()    {}

// Type returns the semantic type.
func (p *Primitive) Type() FieldType { return p.typ }

// Literal returns the fixed value, if any.
func (p *Primitive) Literal() (any, bool) { return p.literal, p.hasLiteral }

// HasLiteral reports whether the primitive has a fixed value.
func (p *Primitive) HasLiteral() bool { return p.hasLiteral }

// WithType returns a copy of p with type t. Any literal is kept.
func (p *Primitive) WithType(t FieldType) *Primitive {
	return &Primitive{typ: t, literal: p.literal, hasLiteral: p.hasLiteral}
}

// WithLiteral returns a copy of p fixed to v.
func (p *Primitive) WithLiteral(v any) (*Primitive, error) {
	return NewLiteral(p.typ, v)
}

// WithoutLiteral returns a copy of p that generates values again.
func (p *Primitive) WithoutLiteral() *Primitive {
	return NewPrimitive(p.typ)
}

// finite rejects the float values JSON cannot encode.
func finite(f float64) (any, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, Errorf(ErrInvalidSchema, "", "literal %v is not a finite number", f)
	}
	return f, nil
}

// normalizeLiteral maps the numeric types callers commonly hold onto
// float64, the type JSON decoding produces.
func normalizeLiteral(v any) (any, error) {
	switch x := v.(type) {
	case string, bool:
		return x, nil
	case float64:
		return finite(x)
	case float32:
		return finite(float64(x))
	case int:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, Errorf(ErrInvalidSchema, "", "literal %q is not a number", x.String())
		}
		return f, nil
	default:
		return nil, Errorf(ErrInvalidSchema, "", "literal must be a string, number or boolean, got %T", v)
	}
}
