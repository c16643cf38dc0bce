package edit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getmockd/mockshape/pkg/schema"
)

// Op names an edit command.
type Op string

// Edit operations.
const (
	OpSetType      Op = "setType"
	OpSetLength    Op = "setLength"
	OpSetLiteral   Op = "setLiteral"
	OpClearLiteral Op = "clearLiteral"
	OpRename       Op = "rename"
	OpInsert       Op = "insert"
	OpRemove       Op = "remove"
)

// DefaultArrayLength is the length of arrays created by setType and insert.
const DefaultArrayLength = 3

// ErrUnknownOp reports a command whose Op is not one of the edit operations.
var ErrUnknownOp = errors.New("unknown edit operation")

// Command is one serializable edit. Path addresses the target in the
// "/0/2" form. The other fields are read by the operations that need them:
//
//	setType       Type ("object", "array" or a field type)
//	setLength     Length
//	setLiteral    Value
//	clearLiteral  -
//	rename        Key
//	insert        Key, optional Type (guessed from Key when empty)
//	remove        -
type Command struct {
	Op     Op     `json:"op" yaml:"op"`
	Path   string `json:"path,omitempty" yaml:"path,omitempty"`
	Key    string `json:"key,omitempty" yaml:"key,omitempty"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Length *int   `json:"length,omitempty" yaml:"length,omitempty"`
	Value  any    `json:"value,omitempty" yaml:"value,omitempty"`
}

// Apply runs one command against root and returns the new tree.
func Apply(root schema.Node, cmd Command) (schema.Node, error) {
	path, err := schema.ParsePath(cmd.Path)
	if err != nil {
		return nil, &schema.Error{Kind: schema.ErrPathNotFound, Path: cmd.Path, Err: err}
	}

	switch cmd.Op {
	case OpSetType:
		if cmd.Type == "" {
			return nil, schema.Errorf(schema.ErrInvalidTarget, path.String(), "setType needs a type")
		}
		return UpdateAt(root, path, func(n schema.Node) (schema.Node, error) {
			retyped, err := retype(n, cmd.Type)
			if err != nil {
				return nil, &schema.Error{Kind: schema.ErrInvalidTarget, Err: err}
			}
			return retyped, nil
		})

	case OpSetLength:
		if cmd.Length == nil {
			return nil, schema.Errorf(schema.ErrInvalidTarget, path.String(), "setLength needs a length")
		}
		return UpdateAt(root, path, func(n schema.Node) (schema.Node, error) {
			arr, ok := n.(*schema.Array)
			if !ok {
				return nil, schema.Errorf(schema.ErrInvalidTarget, "", "only arrays have a length, found %s", n.Kind())
			}
			return arr.WithLength(*cmd.Length), nil
		})

	case OpSetLiteral:
		return UpdateAt(root, path, func(n schema.Node) (schema.Node, error) {
			p, ok := n.(*schema.Primitive)
			if !ok {
				return nil, schema.Errorf(schema.ErrInvalidTarget, "", "only primitives hold a value, found %s", n.Kind())
			}
			lit, err := p.WithLiteral(cmd.Value)
			if err != nil {
				return nil, &schema.Error{Kind: schema.ErrInvalidTarget, Message: "unusable literal", Err: err}
			}
			return lit, nil
		})

	case OpClearLiteral:
		return UpdateAt(root, path, func(n schema.Node) (schema.Node, error) {
			p, ok := n.(*schema.Primitive)
			if !ok {
				return nil, schema.Errorf(schema.ErrInvalidTarget, "", "only primitives hold a value, found %s", n.Kind())
			}
			return p.WithoutLiteral(), nil
		})

	case OpRename:
		return RenameAt(root, path, cmd.Key)

	case OpInsert:
		field := DefaultField(cmd.Key)
		if cmd.Type != "" {
			n, err := newNode(cmd.Type)
			if err != nil {
				return nil, &schema.Error{Kind: schema.ErrInvalidTarget, Path: path.String(), Err: err}
			}
			field.Node = n
		}
		return InsertChild(root, path, field)

	case OpRemove:
		return RemoveAt(root, path)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, cmd.Op)
	}
}

// ApplyAll runs cmds in order. The first failure stops the run; root is
// left untouched either way.
func ApplyAll(root schema.Node, cmds []Command) (schema.Node, error) {
	n := root
	for i, cmd := range cmds {
		next, err := Apply(n, cmd)
		if err != nil {
			return nil, fmt.Errorf("command %d (%s): %w", i, cmd.Op, err)
		}
		n = next
	}
	return n, nil
}

// ParseScript decodes a JSON array of commands.
func ParseScript(data []byte) ([]Command, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var cmds []Command
	if err := dec.Decode(&cmds); err != nil {
		return nil, fmt.Errorf("failed to parse edit script: %w", err)
	}
	return cmds, nil
}

// retype changes the kind or field type of n. Converting to the kind n
// already has keeps it as is; a new primitive type drops any literal.
func retype(n schema.Node, typ string) (schema.Node, error) {
	switch schema.Kind(typ) {
	case schema.KindObject:
		if n.Kind() == schema.KindObject {
			return n, nil
		}
	case schema.KindArray:
		if n.Kind() == schema.KindArray {
			return n, nil
		}
	}
	return newNode(typ)
}

// newNode builds a fresh node for a type name: an empty object, a string
// array of DefaultArrayLength, or a primitive of a field type.
func newNode(typ string) (schema.Node, error) {
	switch schema.Kind(typ) {
	case schema.KindObject:
		return schema.MustObject(), nil
	case schema.KindArray:
		return schema.NewArray(DefaultArrayLength, nil), nil
	}
	ft, err := schema.ParseFieldType(typ)
	if err != nil {
		return nil, err
	}
	return schema.NewPrimitive(ft), nil
}
