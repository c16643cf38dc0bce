package portability

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockshape/pkg/schema"
	"github.com/getmockd/mockshape/pkg/synth"
	"github.com/getmockd/mockshape/pkg/validation"
)

func obj(fields ...schema.Field) *schema.Object { return schema.MustObject(fields...) }

func f(key string, n schema.Node) schema.Field { return schema.Field{Key: key, Node: n} }

func prim(t schema.FieldType) *schema.Primitive { return schema.NewPrimitive(t) }

func lit(ft schema.FieldType, v any) *schema.Primitive {
	p, err := schema.NewLiteral(ft, v)
	if err != nil {
		panic(err)
	}
	return p
}

func assertTree(t *testing.T, want, got schema.Node) {
	t.Helper()
	if !schema.Equal(want, got) {
		wantJSON, _ := schema.Marshal(want)
		gotJSON, _ := schema.Marshal(got)
		assert.JSONEq(t, string(wantJSON), string(gotJSON))
		t.Fatalf("trees differ")
	}
}

func TestLoadOpenAPI(t *testing.T) {
	t.Run("Pet", func(t *testing.T) {
		got, err := LoadOpenAPI("testdata/petstore.yaml", "Pet")
		require.NoError(t, err)

		want := obj(
			f("age", prim(schema.TypeNumber)),
			f("contact", prim(schema.TypeEmail)),
			f("homepage", prim(schema.TypeURL)),
			f("id", prim(schema.TypeUUID)),
			f("name", lit(schema.TypeString, "Rex")),
			f("owner", obj(
				f("name", prim(schema.TypeString)),
				f("pets", schema.NewArray(DefaultArrayLength, obj())),
			)),
			f("photos", schema.NewArray(1, prim(schema.TypeURL))),
			f("status", lit(schema.TypeString, "available")),
			f("tags", schema.NewArray(5, prim(schema.TypeString))),
			f("vaccinated", prim(schema.TypeBoolean)),
		)
		assertTree(t, want, got)
	})

	t.Run("allOf merges properties", func(t *testing.T) {
		got, err := LoadOpenAPI("testdata/petstore.yaml", "Named")
		require.NoError(t, err)
		assertTree(t, obj(
			f("createdAt", prim(schema.TypeDate)),
			f("label", prim(schema.TypeString)),
		), got)
	})

	t.Run("primitive component", func(t *testing.T) {
		got, err := LoadOpenAPI("testdata/petstore.yaml", "Code")
		require.NoError(t, err)
		assertTree(t, lit(schema.TypeString, "A1"), got)
	})

	t.Run("missing component", func(t *testing.T) {
		_, err := LoadOpenAPI("testdata/petstore.yaml", "Order")
		assert.ErrorIs(t, err, ErrComponentNotFound)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadOpenAPI("testdata/nope.yaml", "Pet")
		assert.Error(t, err)
	})
}

func TestFromOpenAPI(t *testing.T) {
	maxTwo := uint64(2)
	tests := []struct {
		name   string
		schema *openapi3.Schema
		want   schema.Node
	}{
		{
			name:   "phone format",
			schema: openapi3.NewStringSchema().WithFormat("tel"),
			want:   prim(schema.TypePhoneNumber),
		},
		{
			name:   "unknown format falls back to the name",
			schema: openapi3.NewStringSchema().WithFormat("byte"),
			want:   prim(schema.TypeString),
		},
		{
			name:   "numeric example",
			schema: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeNumber}, Example: 9.5},
			want:   lit(schema.TypeNumber, 9.5),
		},
		{
			name:   "non-scalar example is ignored",
			schema: &openapi3.Schema{Type: &openapi3.Types{openapi3.TypeString}, Example: []any{"a"}},
			want:   prim(schema.TypeString),
		},
		{
			name: "maxItems below the default",
			schema: &openapi3.Schema{
				Type:     &openapi3.Types{openapi3.TypeArray},
				MaxItems: &maxTwo,
				Items:    openapi3.NewSchemaRef("", openapi3.NewBoolSchema()),
			},
			want: schema.NewArray(2, prim(schema.TypeBoolean)),
		},
		{
			name: "minItems above the limit is clamped",
			schema: &openapi3.Schema{
				Type:     &openapi3.Types{openapi3.TypeArray},
				MinItems: 500,
			},
			want: schema.NewArray(schema.MaxArrayLength, prim(schema.TypeString)),
		},
		{
			name: "oneOf takes the first variant",
			schema: &openapi3.Schema{OneOf: openapi3.SchemaRefs{
				openapi3.NewSchemaRef("", openapi3.NewIntegerSchema()),
				openapi3.NewSchemaRef("", openapi3.NewStringSchema()),
			}},
			want: prim(schema.TypeNumber),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &openapi3.T{Components: &openapi3.Components{Schemas: openapi3.Schemas{
				"Thing": openapi3.NewSchemaRef("", tt.schema),
			}}}
			got, err := FromOpenAPI(doc, "Thing")
			require.NoError(t, err)
			assertTree(t, tt.want, got)
		})
	}
}

func TestFromOpenAPI_NoComponents(t *testing.T) {
	_, err := FromOpenAPI(&openapi3.T{}, "Pet")
	assert.ErrorIs(t, err, ErrComponentNotFound)

	_, err = FromOpenAPI(nil, "Pet")
	assert.ErrorIs(t, err, ErrComponentNotFound)
}

func TestLoadOpenAPI_GeneratesConformingData(t *testing.T) {
	n, err := LoadOpenAPI("testdata/petstore.yaml", "Pet")
	require.NoError(t, err)

	g := synth.New(synth.WithSeed(7))
	for i := 0; i < 20; i++ {
		res := validation.Conforms(n, g.Synthesize(n))
		require.True(t, res.Valid, "%v", res.Errors)
	}
}
