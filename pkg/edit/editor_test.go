package edit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockshape/pkg/schema"
)

// sample is:
//
//	/0 id      uuid
//	/1 profile object
//	/1/0 name    string
//	/1/1 email   email
//	/2 tags    array(3) of string
//	/3 orders  array(2) of object
//	/3/0/0 total   number
func sample() schema.Node {
	return schema.MustObject(
		schema.Field{Key: "id", Node: schema.NewPrimitive(schema.TypeUUID)},
		schema.Field{Key: "profile", Node: schema.MustObject(
			schema.Field{Key: "name", Node: schema.NewPrimitive(schema.TypeString)},
			schema.Field{Key: "email", Node: schema.NewPrimitive(schema.TypeEmail)},
		)},
		schema.Field{Key: "tags", Node: schema.NewArray(3, nil)},
		schema.Field{Key: "orders", Node: schema.NewArray(2, schema.MustObject(
			schema.Field{Key: "total", Node: schema.NewPrimitive(schema.TypeNumber)},
		))},
	)
}

func snapshot(t *testing.T, n schema.Node) string {
	t.Helper()
	data, err := schema.Marshal(n)
	require.NoError(t, err)
	return string(data)
}

func field(t *testing.T, n schema.Node, i int) schema.Field {
	t.Helper()
	obj, ok := n.(*schema.Object)
	require.True(t, ok, "expected object, got %s", n.Kind())
	return obj.Field(i)
}

func toDate(n schema.Node) (schema.Node, error) {
	return schema.NewPrimitive(schema.TypeDate), nil
}

func TestGet(t *testing.T) {
	root := sample()

	n, err := Get(root, schema.Path{1, 1})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeEmail, n.(*schema.Primitive).Type())

	n, err = Get(root, schema.Path{3, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, schema.TypeNumber, n.(*schema.Primitive).Type())

	n, err = Get(root, schema.Path{})
	require.NoError(t, err)
	assert.Same(t, root, n)

	for _, p := range []schema.Path{{4}, {2, 1}, {0, 0}, {-1}} {
		_, err := Get(root, p)
		assert.ErrorIs(t, err, schema.ErrPathNotFound, "path %s", p)
	}
}

func TestUpdateAt_SharesSiblings(t *testing.T) {
	root := sample()
	before := snapshot(t, root)

	out, err := UpdateAt(root, schema.Path{1, 0}, toDate)
	require.NoError(t, err)

	// Unchanged subtrees are the very same nodes.
	assert.Same(t, field(t, root, 0).Node, field(t, out, 0).Node)
	assert.Same(t, field(t, root, 2).Node, field(t, out, 2).Node)
	assert.Same(t, field(t, root, 3).Node, field(t, out, 3).Node)
	profileBefore := field(t, root, 1).Node
	profileAfter := field(t, out, 1).Node
	assert.Same(t, field(t, profileBefore, 1).Node, field(t, profileAfter, 1).Node)

	// The spine is new.
	assert.NotSame(t, root, out)
	assert.NotSame(t, profileBefore, profileAfter)
	assert.Equal(t, schema.TypeDate, field(t, profileAfter, 0).Node.(*schema.Primitive).Type())

	assert.Equal(t, before, snapshot(t, root))
}

func TestUpdateAt_ThroughArray(t *testing.T) {
	root := sample()
	out, err := UpdateAt(root, schema.Path{3, 0, 0}, toDate)
	require.NoError(t, err)

	orders := field(t, out, 3).Node.(*schema.Array)
	assert.Equal(t, 2, orders.Length())
	assert.Equal(t, schema.TypeDate, field(t, orders.Item(), 0).Node.(*schema.Primitive).Type())
	assert.Same(t, field(t, root, 1).Node, field(t, out, 1).Node)
}

func TestUpdateAt_Root(t *testing.T) {
	root := sample()
	out, err := UpdateAt(root, schema.Path{}, func(n schema.Node) (schema.Node, error) {
		return schema.NewArray(250, n), nil
	})
	require.NoError(t, err)
	arr := out.(*schema.Array)
	assert.Equal(t, 100, arr.Length())
	assert.Same(t, root, arr.Item())
}

func TestUpdateAt_Errors(t *testing.T) {
	root := sample()
	before := snapshot(t, root)

	tests := []struct {
		name     string
		path     schema.Path
		fn       Updater
		wantKind error
		wantPath string
	}{
		{"index past end", schema.Path{9}, toDate, schema.ErrPathNotFound, "/9"},
		{"nested index past end", schema.Path{1, 5}, toDate, schema.ErrPathNotFound, "/1/5"},
		{"array slot other than 0", schema.Path{2, 1}, toDate, schema.ErrPathNotFound, "/2/1"},
		{"below a primitive", schema.Path{0, 0}, toDate, schema.ErrPathNotFound, "/0/0"},
		{"nil replacement", schema.Path{0}, func(schema.Node) (schema.Node, error) { return nil, nil }, schema.ErrInvalidTarget, "/0"},
		{"updater error", schema.Path{1, 1}, func(schema.Node) (schema.Node, error) {
			return nil, schema.Errorf(schema.ErrInvalidTarget, "", "nope")
		}, schema.ErrInvalidTarget, "/1/1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := UpdateAt(root, tt.path, tt.fn)
			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantKind)

			var serr *schema.Error
			require.ErrorAs(t, err, &serr)
			assert.Equal(t, tt.wantPath, serr.Path)
		})
	}
	assert.Equal(t, before, snapshot(t, root))
}

func TestInsertChild(t *testing.T) {
	root := sample()
	before := snapshot(t, root)

	t.Run("object appends", func(t *testing.T) {
		out, err := InsertChild(root, schema.Path{1}, schema.Field{Key: "age"})
		require.NoError(t, err)
		profile := field(t, out, 1).Node.(*schema.Object)
		require.Equal(t, 3, profile.Len())
		added := profile.Field(2)
		assert.Equal(t, "age", added.Key)
		assert.Equal(t, schema.TypeString, added.Node.(*schema.Primitive).Type(), "missing node defaults to string")
	})

	t.Run("root object", func(t *testing.T) {
		out, err := InsertChild(root, schema.Path{}, DefaultField("createdAt"))
		require.NoError(t, err)
		added := field(t, out, 4)
		assert.Equal(t, schema.TypeDate, added.Node.(*schema.Primitive).Type())
		assert.Same(t, field(t, root, 1).Node, field(t, out, 1).Node)
	})

	t.Run("object item of array", func(t *testing.T) {
		out, err := InsertChild(root, schema.Path{3}, schema.Field{Key: "sku"})
		require.NoError(t, err)
		item := field(t, out, 3).Node.(*schema.Array).Item().(*schema.Object)
		assert.Equal(t, 2, item.Len())
		assert.True(t, item.Has("sku"))
	})

	t.Run("primitive item is wrapped", func(t *testing.T) {
		out, err := InsertChild(root, schema.Path{2}, schema.Field{Key: "weight", Node: schema.NewPrimitive(schema.TypeNumber)})
		require.NoError(t, err)
		tags := field(t, out, 2).Node.(*schema.Array)
		assert.Equal(t, 3, tags.Length())
		item := tags.Item().(*schema.Object)
		require.Equal(t, 2, item.Len())
		assert.Equal(t, schema.ItemFieldKey, item.Field(0).Key)
		assert.Same(t, field(t, root, 2).Node.(*schema.Array).Item(), item.Field(0).Node)
		assert.Equal(t, "weight", item.Field(1).Key)
	})

	t.Run("wrapped key clash", func(t *testing.T) {
		_, err := InsertChild(root, schema.Path{2}, schema.Field{Key: schema.ItemFieldKey})
		assert.ErrorIs(t, err, schema.ErrDuplicateKey)
	})

	t.Run("duplicate key", func(t *testing.T) {
		_, err := InsertChild(root, schema.Path{1}, schema.Field{Key: "email"})
		require.ErrorIs(t, err, schema.ErrDuplicateKey)
		var serr *schema.Error
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "/1", serr.Path)
	})

	t.Run("primitive target", func(t *testing.T) {
		_, err := InsertChild(root, schema.Path{0}, schema.Field{Key: "x"})
		assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := InsertChild(root, schema.Path{7}, schema.Field{Key: "x"})
		assert.ErrorIs(t, err, schema.ErrPathNotFound)
	})

	assert.Equal(t, before, snapshot(t, root))
}

func TestRemoveAt_FirstOfTwo(t *testing.T) {
	root := schema.MustObject(
		schema.Field{Key: "a", Node: schema.NewPrimitive(schema.TypeString)},
		schema.Field{Key: "b", Node: schema.MustObject(schema.Field{Key: "c"})},
	)
	before := snapshot(t, root)

	out, err := RemoveAt(root, schema.Path{0})
	require.NoError(t, err)

	obj := out.(*schema.Object)
	require.Equal(t, 1, obj.Len())
	assert.Equal(t, "b", obj.Field(0).Key)
	assert.Same(t, root.Field(1).Node, obj.Field(0).Node)
	assert.False(t, obj.Has("a"))

	assert.Equal(t, before, snapshot(t, root))
	assert.Equal(t, 2, root.Len())
}

func TestRemoveAt(t *testing.T) {
	root := sample()
	before := snapshot(t, root)

	out, err := RemoveAt(root, schema.Path{3, 0, 0})
	require.NoError(t, err)
	item := field(t, out, 3).Node.(*schema.Array).Item().(*schema.Object)
	assert.Equal(t, 0, item.Len())

	out, err = RemoveAt(root, schema.Path{1, 0})
	require.NoError(t, err)
	profile := field(t, out, 1).Node.(*schema.Object)
	assert.Equal(t, []string{"email"}, keys(profile))

	tests := []struct {
		name     string
		path     schema.Path
		wantKind error
	}{
		{"root", schema.Path{}, schema.ErrInvalidTarget},
		{"array item slot", schema.Path{2, 0}, schema.ErrInvalidTarget},
		{"missing index", schema.Path{4}, schema.ErrPathNotFound},
		{"missing parent", schema.Path{8, 0}, schema.ErrPathNotFound},
		{"array slot other than 0", schema.Path{2, 3}, schema.ErrPathNotFound},
		{"below a primitive", schema.Path{0, 0}, schema.ErrPathNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := RemoveAt(root, tt.path)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantKind)
		})
	}

	assert.Equal(t, before, snapshot(t, root))
}

func TestRenameAt(t *testing.T) {
	root := sample()

	out, err := RenameAt(root, schema.Path{1, 0}, "fullName")
	require.NoError(t, err)
	assert.Equal(t, []string{"fullName", "email"}, keys(field(t, out, 1).Node.(*schema.Object)))
	assert.Same(t, field(t, field(t, root, 1).Node, 0).Node, field(t, field(t, out, 1).Node, 0).Node)

	_, err = RenameAt(root, schema.Path{1, 0}, "email")
	require.ErrorIs(t, err, schema.ErrDuplicateKey)
	var serr *schema.Error
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "/1/0", serr.Path)

	_, err = RenameAt(root, schema.Path{}, "x")
	assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	_, err = RenameAt(root, schema.Path{2, 0}, "x")
	assert.ErrorIs(t, err, schema.ErrInvalidTarget)
	_, err = RenameAt(root, schema.Path{1, 9}, "x")
	assert.ErrorIs(t, err, schema.ErrPathNotFound)
}

func TestDefaultField(t *testing.T) {
	assert.Equal(t, schema.TypeEmail, DefaultField("workEmail").Node.(*schema.Primitive).Type())
	assert.Equal(t, schema.TypeString, DefaultField("nickname").Node.(*schema.Primitive).Type())
}

func keys(o *schema.Object) []string {
	out := make([]string, 0, o.Len())
	for _, f := range o.All() {
		out = append(out, f.Key)
	}
	return out
}

// wide builds an object of width fields whose middle field is an object of
// width fields.
func wide(width int) (schema.Node, schema.Path) {
	inner := make([]schema.Field, width)
	outer := make([]schema.Field, width)
	for i := range width {
		inner[i] = schema.Field{Key: fmt.Sprintf("in%05d", i)}
		outer[i] = schema.Field{Key: fmt.Sprintf("out%05d", i)}
	}
	mid := width / 2
	outer[mid].Node = schema.MustObject(inner...)
	return schema.MustObject(outer...), schema.Path{mid, mid}
}

func TestEditCost_IndependentOfWidth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation measurements in short mode")
	}

	measure := func(width int) (update, insert, remove float64) {
		root, path := wide(width)
		parent, _, _ := path.Parent()
		leaf := schema.NewPrimitive(schema.TypeNumber)
		update = testing.AllocsPerRun(50, func() {
			_, _ = UpdateAt(root, path, func(schema.Node) (schema.Node, error) { return leaf, nil })
		})
		insert = testing.AllocsPerRun(50, func() {
			_, _ = InsertChild(root, parent, schema.Field{Key: "added", Node: leaf})
		})
		remove = testing.AllocsPerRun(50, func() {
			_, _ = RemoveAt(root, path)
		})
		return update, insert, remove
	}

	u10k, i10k, r10k := measure(10_000)
	u100, i100, r100 := measure(100)

	// Copying either level would cost at least 10k allocations.
	assert.Less(t, u10k, 80.0)
	assert.Less(t, i10k, 150.0)
	assert.Less(t, r10k, 150.0)

	// Growing 100x wider adds a handful of tree levels, not 100x the work.
	assert.Less(t, u10k, 2*u100+20)
	assert.Less(t, i10k, 2*i100+40)
	assert.Less(t, r10k, 2*r100+40)
}
