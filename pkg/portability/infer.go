package portability

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/getmockd/mockshape/pkg/detect"
	"github.com/getmockd/mockshape/pkg/schema"
	"github.com/getmockd/mockshape/pkg/validation"
)

// InferJSON builds a schema from a sample JSON document.
//
// Object keys keep their document order. String values are typed by their
// content, and a plain string under a telling key ("email", "homepage") takes
// the key's type. Arrays use their first element as the item template and
// their sample size as the length. Inferred schemas carry no literals.
func InferJSON(data []byte) (schema.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, syntaxError("/", err)
	}
	n, err := infer(dec, tok, "", "")
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, schema.Errorf(schema.ErrInvalidSchema, "/", "unexpected data after the sample document")
	}
	return n, nil
}

func infer(dec *json.Decoder, tok json.Token, key, loc string) (schema.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return inferObject(dec, loc)
		case '[':
			return inferArray(dec, key, loc)
		default:
			return nil, schema.Errorf(schema.ErrInvalidSchema, pointer(loc), "unexpected %q", v.String())
		}
	case string:
		return schema.NewPrimitive(inferString(v, key)), nil
	case json.Number:
		return schema.NewPrimitive(schema.TypeNumber), nil
	case bool:
		return schema.NewPrimitive(schema.TypeBoolean), nil
	default:
		// null says nothing about the value; fall back to the key.
		return schema.NewPrimitive(detect.Type(key, nil)), nil
	}
}

func inferObject(dec *json.Decoder, loc string) (schema.Node, error) {
	var fields []schema.Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(pointer(loc), err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, schema.Errorf(schema.ErrInvalidSchema, pointer(loc), "object key is not a string")
		}
		childLoc := loc + "/" + escapePointer(key)
		valueTok, err := dec.Token()
		if err != nil {
			return nil, syntaxError(pointer(childLoc), err)
		}
		n, err := infer(dec, valueTok, key, childLoc)
		if err != nil {
			return nil, err
		}
		fields = append(fields, schema.Field{Key: key, Node: n})
	}
	if _, err := dec.Token(); err != nil {
		return nil, syntaxError(pointer(loc), err)
	}
	obj, err := schema.NewObject(fields...)
	if err != nil {
		var se *schema.Error
		if errors.As(err, &se) {
			return nil, schema.Errorf(schema.ErrInvalidSchema, pointer(loc), "%s", se.Message)
		}
		return nil, err
	}
	return obj, nil
}

func inferArray(dec *json.Decoder, key, loc string) (schema.Node, error) {
	var (
		item  schema.Node
		count int
	)
	for dec.More() {
		if count == 0 {
			tok, err := dec.Token()
			if err != nil {
				return nil, syntaxError(pointer(loc+"/0"), err)
			}
			if item, err = infer(dec, tok, key, loc+"/0"); err != nil {
				return nil, err
			}
		} else {
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return nil, syntaxError(pointer(fmt.Sprintf("%s/%d", loc, count)), err)
			}
		}
		count++
	}
	if _, err := dec.Token(); err != nil {
		return nil, syntaxError(pointer(loc), err)
	}
	if item == nil {
		item = schema.NewPrimitive(detect.Type(key, nil))
	}
	return schema.NewArray(count, item), nil
}

// inferString types a string by its content, then by its key when the
// content is not a recognised format.
func inferString(value, key string) schema.FieldType {
	if t := validation.DetectFormat(value); t != schema.TypeString {
		return t
	}
	return stringType("", key)
}

func syntaxError(path string, err error) error {
	return &schema.Error{Kind: schema.ErrInvalidSchema, Path: path, Message: "malformed sample document", Err: err}
}

func pointer(loc string) string {
	if loc == "" {
		return "/"
	}
	return loc
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(s string) string { return pointerEscaper.Replace(s) }
