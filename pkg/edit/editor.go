package edit

import (
	"github.com/getmockd/mockshape/pkg/detect"
	"github.com/getmockd/mockshape/pkg/schema"
)

// Updater replaces the node an edit is aimed at. It receives the current
// node, which is immutable, and returns its replacement.
type Updater func(schema.Node) (schema.Node, error)

// Get returns the node at path.
func Get(root schema.Node, path schema.Path) (schema.Node, error) {
	n := root
	for depth, i := range path {
		child, err := childAt(n, i, path[:depth+1])
		if err != nil {
			return nil, err
		}
		n = child
	}
	return n, nil
}

// UpdateAt returns a new tree in which the node at path is replaced by fn's
// result. Every node from the root down to the target is rebuilt; everything
// else is shared with root. root is never modified.
//
// An index outside its parent fails with ErrPathNotFound. An Updater
// returning a nil node fails with ErrInvalidTarget. Errors from fn are
// returned with the path filled in.
func UpdateAt(root schema.Node, path schema.Path, fn Updater) (schema.Node, error) {
	if root == nil {
		return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "empty tree")
	}
	return updateAt(root, path, 0, fn)
}

func updateAt(n schema.Node, path schema.Path, depth int, fn Updater) (schema.Node, error) {
	if depth == len(path) {
		replacement, err := fn(n)
		if err != nil {
			return nil, withPath(err, path)
		}
		if replacement == nil {
			return nil, schema.Errorf(schema.ErrInvalidTarget, path.String(), "updater returned no node")
		}
		return replacement, nil
	}

	i := path[depth]
	child, err := childAt(n, i, path[:depth+1])
	if err != nil {
		return nil, err
	}
	updated, err := updateAt(child, path, depth+1, fn)
	if err != nil {
		return nil, err
	}

	switch x := n.(type) {
	case *schema.Object:
		return x.WithNode(i, updated), nil
	case *schema.Array:
		return x.WithItem(updated), nil
	default:
		// childAt already rejected primitives.
		return nil, schema.Errorf(schema.ErrPathNotFound, path[:depth+1].String(), "%s has no children", n.Kind())
	}
}

// childAt resolves one path step. at is the path up to and including i.
func childAt(n schema.Node, i int, at schema.Path) (schema.Node, error) {
	switch x := n.(type) {
	case *schema.Object:
		if i < 0 || i >= x.Len() {
			return nil, schema.Errorf(schema.ErrPathNotFound, at.String(), "index %d out of range for object with %d fields", i, x.Len())
		}
		return x.Field(i).Node, nil
	case *schema.Array:
		if i != 0 {
			return nil, schema.Errorf(schema.ErrPathNotFound, at.String(), "array has a single item slot at index 0, got %d", i)
		}
		return x.Item(), nil
	default:
		return nil, schema.Errorf(schema.ErrPathNotFound, at.String(), "%s has no children", n.Kind())
	}
}

// InsertChild appends field to the object at path. When path addresses an
// array, the field is added to the array's item: an object item gains the
// field; any other item is first wrapped in an object under the key
// "value". A field without a node becomes a string primitive.
//
// Primitives cannot gain children (ErrInvalidTarget) and keys must stay
// unique (ErrDuplicateKey).
func InsertChild(root schema.Node, path schema.Path, field schema.Field) (schema.Node, error) {
	return UpdateAt(root, path, func(n schema.Node) (schema.Node, error) {
		switch x := n.(type) {
		case *schema.Object:
			return x.Append(field)
		case *schema.Array:
			if obj, ok := x.Item().(*schema.Object); ok {
				item, err := obj.Append(field)
				if err != nil {
					return nil, err
				}
				return x.WithItem(item), nil
			}
			if field.Key == schema.ItemFieldKey {
				return nil, schema.Errorf(schema.ErrDuplicateKey, "", "array item already uses the key %q", schema.ItemFieldKey)
			}
			item, err := schema.NewObject(schema.Field{Key: schema.ItemFieldKey, Node: x.Item()}, field)
			if err != nil {
				return nil, err
			}
			return x.WithItem(item), nil
		default:
			return nil, schema.Errorf(schema.ErrInvalidTarget, "", "%s cannot have children", n.Kind())
		}
	})
}

// RemoveAt deletes the field path addresses from its parent object. The
// root cannot be removed and neither can an array's item slot; both fail
// with ErrInvalidTarget.
func RemoveAt(root schema.Node, path schema.Path) (schema.Node, error) {
	parent, last, ok := path.Parent()
	if !ok {
		return nil, schema.Errorf(schema.ErrInvalidTarget, "/", "cannot remove the root")
	}
	if root == nil {
		return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "empty tree")
	}
	return updateAt(root, parent, 0, func(n schema.Node) (schema.Node, error) {
		switch x := n.(type) {
		case *schema.Object:
			if last < 0 || last >= x.Len() {
				return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "index %d out of range for object with %d fields", last, x.Len())
			}
			return x.Remove(last), nil
		case *schema.Array:
			if last == 0 {
				return nil, schema.Errorf(schema.ErrInvalidTarget, path.String(), "array item slot cannot be removed")
			}
			return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "array has a single item slot at index 0, got %d", last)
		default:
			return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "%s has no children", n.Kind())
		}
	})
}

// RenameAt changes the key of the field path addresses. The new key must not
// be used by a sibling.
func RenameAt(root schema.Node, path schema.Path, key string) (schema.Node, error) {
	parent, last, ok := path.Parent()
	if !ok {
		return nil, schema.Errorf(schema.ErrInvalidTarget, "/", "the root has no key")
	}
	if root == nil {
		return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "empty tree")
	}
	return updateAt(root, parent, 0, func(n schema.Node) (schema.Node, error) {
		switch x := n.(type) {
		case *schema.Object:
			if last < 0 || last >= x.Len() {
				return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "index %d out of range for object with %d fields", last, x.Len())
			}
			renamed, err := x.Rename(last, key)
			if err != nil {
				return nil, withPath(err, path)
			}
			return renamed, nil
		case *schema.Array:
			return nil, schema.Errorf(schema.ErrInvalidTarget, path.String(), "array items have no key")
		default:
			return nil, schema.Errorf(schema.ErrPathNotFound, path.String(), "%s has no children", n.Kind())
		}
	})
}

// DefaultField returns a field for key whose primitive type is guessed from
// the key.
func DefaultField(key string) schema.Field {
	return schema.Field{Key: key, Node: schema.NewPrimitive(detect.Type(key, nil))}
}

// withPath sets the location of a schema error that has none.
func withPath(err error, path schema.Path) error {
	serr, ok := err.(*schema.Error)
	if !ok || serr.Path != "" {
		return err
	}
	located := *serr
	located.Path = path.String()
	return &located
}
