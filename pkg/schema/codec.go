package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ItemFieldKey is the key of the single field that stands for a non-object
// array item in the JSON shape.
const ItemFieldKey = "value"

// wireDoc is the top-level JSON shape of a schema.
type wireDoc struct {
	Type           string          `json:"type"`
	Fields         []wireField     `json:"fields,omitzero"`
	Length         *int            `json:"length,omitempty"`
	ItemShape      string          `json:"itemShape,omitempty"`
	PrimitiveType  string          `json:"primitiveType,omitempty"`
	PrimitiveValue json.RawMessage `json:"primitiveValue,omitempty"`
}

// wireField is one keyed entry of a fields list.
type wireField struct {
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Value     json.RawMessage `json:"value,omitempty"`
	Fields    []wireField     `json:"fields,omitzero"`
	Length    *int            `json:"length,omitempty"`
	ItemShape string          `json:"itemShape,omitempty"`
}

// Parse decodes a schema document. The document is checked against
// MetaSchema first; every failure is an *Error of kind ErrInvalidSchema
// whose Path is a JSON pointer into the document.
func Parse(data []byte) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &Error{Kind: ErrInvalidSchema, Path: "/", Message: "not a JSON document", Err: err}
	}
	if dec.More() {
		return nil, Errorf(ErrInvalidSchema, "/", "trailing data after schema document")
	}
	if err := checkShape(doc); err != nil {
		return nil, err
	}

	var w wireDoc
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, &Error{Kind: ErrInvalidSchema, Path: "/", Err: err}
	}
	return w.node()
}

// MustParse is Parse that panics on error. Intended for tests and fixtures.
func MustParse(data string) Node {
	n, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return n
}

// Marshal encodes a schema tree in the JSON shape Parse accepts.
func Marshal(n Node) ([]byte, error) {
	w, err := encodeDoc(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func (o *Object) MarshalJSON() ([]byte, error)    { return Marshal(o) }
func (a *Array) MarshalJSON() ([]byte, error)     { return Marshal(a) }
func (p *Primitive) MarshalJSON() ([]byte, error) { return Marshal(p) }

// =============================================================================
// Decoding
// =============================================================================

func (w *wireDoc) node() (Node, error) {
	switch Kind(w.Type) {
	case KindObject:
		if len(w.PrimitiveValue) > 0 {
			return nil, Errorf(ErrInvalidSchema, "/primitiveValue", "object schema cannot carry a value")
		}
		if w.Length != nil {
			return nil, Errorf(ErrInvalidSchema, "/length", "only arrays have a length")
		}
		return decodeObject("", w.Fields)
	case KindArray:
		if len(w.PrimitiveValue) > 0 {
			return nil, Errorf(ErrInvalidSchema, "/primitiveValue", "array schema cannot carry a value")
		}
		return decodeArray("", w.Fields, w.Length, w.ItemShape)
	case KindPrimitive:
		if w.Fields != nil {
			return nil, Errorf(ErrInvalidSchema, "/fields", "primitive schema cannot have fields")
		}
		if w.Length != nil {
			return nil, Errorf(ErrInvalidSchema, "/length", "only arrays have a length")
		}
		t, err := ParseFieldType(w.PrimitiveType)
		if err != nil {
			return nil, &Error{Kind: ErrInvalidSchema, Path: "/primitiveType", Err: err}
		}
		return decodePrimitive("/primitiveValue", t, w.PrimitiveValue)
	default:
		return nil, Errorf(ErrInvalidSchema, "/type", "unknown schema type %q", w.Type)
	}
}

func decodeField(loc string, f wireField) (Field, error) {
	var (
		n   Node
		err error
	)
	switch f.Type {
	case string(KindObject):
		if err := rejectObjectExtras(loc, f.Value, f.Length); err != nil {
			return Field{}, err
		}
		n, err = decodeObject(loc, f.Fields)
	case string(KindArray):
		if len(f.Value) > 0 {
			return Field{}, Errorf(ErrInvalidSchema, loc+"/value", "array field cannot carry a value")
		}
		n, err = decodeArray(loc, f.Fields, f.Length, f.ItemShape)
	default:
		t, perr := ParseFieldType(f.Type)
		if perr != nil {
			return Field{}, &Error{Kind: ErrInvalidSchema, Path: loc + "/type", Err: perr}
		}
		if f.Fields != nil {
			return Field{}, Errorf(ErrInvalidSchema, loc+"/fields", "%s field cannot have fields", t)
		}
		if f.Length != nil {
			return Field{}, Errorf(ErrInvalidSchema, loc+"/length", "only arrays have a length")
		}
		n, err = decodePrimitive(loc+"/value", t, f.Value)
	}
	if err != nil {
		return Field{}, err
	}
	return Field{Key: f.Key, Node: n}, nil
}

func decodeObject(loc string, fields []wireField) (*Object, error) {
	out := make([]Field, len(fields))
	for i, wf := range fields {
		f, err := decodeField(fmt.Sprintf("%s/fields/%d", loc, i), wf)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	obj, err := NewObject(out...)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			serr.Path = loc + serr.Path
		}
		return nil, err
	}
	return obj, nil
}

// decodeArray reads an item template from fields. A single field keyed
// ItemFieldKey is the item itself unless itemShape forces an object.
func decodeArray(loc string, fields []wireField, length *int, itemShape string) (*Array, error) {
	if length == nil {
		return nil, Errorf(ErrInvalidSchema, loc+"/length", "array requires a length")
	}
	if *length < 0 || *length > MaxArrayLength {
		return nil, Errorf(ErrInvalidSchema, loc+"/length", "length %d outside [0, %d]", *length, MaxArrayLength)
	}
	if len(fields) == 1 && fields[0].Key == ItemFieldKey && itemShape != string(KindObject) {
		f, err := decodeField(loc+"/fields/0", fields[0])
		if err != nil {
			return nil, err
		}
		return NewArray(*length, f.Node), nil
	}
	item, err := decodeObject(loc, fields)
	if err != nil {
		return nil, err
	}
	return NewArray(*length, item), nil
}

func decodePrimitive(loc string, t FieldType, raw json.RawMessage) (*Primitive, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return NewPrimitive(t), nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &Error{Kind: ErrInvalidSchema, Path: loc, Err: err}
	}
	p, err := NewLiteral(t, v)
	if err != nil {
		var serr *Error
		if errors.As(err, &serr) {
			serr.Path = loc
		}
		return nil, err
	}
	return p, nil
}

func rejectObjectExtras(loc string, value json.RawMessage, length *int) error {
	switch {
	case len(value) > 0:
		return Errorf(ErrInvalidSchema, loc+"/value", "object cannot carry a value")
	case length != nil:
		return Errorf(ErrInvalidSchema, loc+"/length", "only arrays have a length")
	}
	return nil
}

// =============================================================================
// Encoding
// =============================================================================

func encodeDoc(n Node) (wireDoc, error) {
	switch x := n.(type) {
	case *Object:
		fields, err := encodeFields(x)
		if err != nil {
			return wireDoc{}, err
		}
		return wireDoc{Type: string(KindObject), Fields: fields}, nil
	case *Array:
		fields, shape, err := encodeItem(x.item)
		if err != nil {
			return wireDoc{}, err
		}
		length := x.length
		return wireDoc{Type: string(KindArray), Fields: fields, Length: &length, ItemShape: shape}, nil
	case *Primitive:
		raw, err := encodeLiteral(x)
		if err != nil {
			return wireDoc{}, err
		}
		return wireDoc{Type: string(KindPrimitive), PrimitiveType: string(x.typ), PrimitiveValue: raw}, nil
	default:
		return wireDoc{}, Errorf(ErrInvalidSchema, "/", "cannot encode %T", n)
	}
}

func encodeFields(o *Object) ([]wireField, error) {
	out := make([]wireField, 0, o.Len())
	for _, f := range o.All() {
		wf, err := encodeField(f)
		if err != nil {
			return nil, err
		}
		out = append(out, wf)
	}
	return out, nil
}

func encodeField(f Field) (wireField, error) {
	switch x := f.Node.(type) {
	case *Object:
		fields, err := encodeFields(x)
		if err != nil {
			return wireField{}, err
		}
		return wireField{Key: f.Key, Type: string(KindObject), Fields: fields}, nil
	case *Array:
		fields, shape, err := encodeItem(x.item)
		if err != nil {
			return wireField{}, err
		}
		length := x.length
		return wireField{Key: f.Key, Type: string(KindArray), Fields: fields, Length: &length, ItemShape: shape}, nil
	case *Primitive:
		raw, err := encodeLiteral(x)
		if err != nil {
			return wireField{}, err
		}
		return wireField{Key: f.Key, Type: string(x.typ), Value: raw}, nil
	default:
		return wireField{}, Errorf(ErrInvalidSchema, "", "cannot encode %T under %q", f.Node, f.Key)
	}
}

// encodeItem renders an array item as a fields list. itemShape is set only
// when an object item would otherwise read back as an unwrapped item.
func encodeItem(item Node) ([]wireField, string, error) {
	if obj, ok := item.(*Object); ok {
		fields, err := encodeFields(obj)
		if err != nil {
			return nil, "", err
		}
		shape := ""
		if len(fields) == 1 && fields[0].Key == ItemFieldKey {
			shape = string(KindObject)
		}
		return fields, shape, nil
	}
	wf, err := encodeField(Field{Key: ItemFieldKey, Node: item})
	if err != nil {
		return nil, "", err
	}
	return []wireField{wf}, "", nil
}

func encodeLiteral(p *Primitive) (json.RawMessage, error) {
	if !p.hasLiteral {
		return nil, nil
	}
	return json.Marshal(p.literal)
}
