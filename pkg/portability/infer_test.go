package portability

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockshape/pkg/schema"
	"github.com/getmockd/mockshape/pkg/synth"
	"github.com/getmockd/mockshape/pkg/validation"
)

const userSample = `{
	"id": "3f8e2c9a-1b7d-4c6e-9a2f-5d8b7e1c0a4b",
	"name": "Ada",
	"email": "ada@example.com",
	"website": "see profile",
	"age": 36,
	"active": true,
	"joined": "2024-01-15",
	"tags": ["a", "b", "c", "d"],
	"address": {"city": "Paris", "phone": "+1-555-123-4567"},
	"orders": [{"total": 12.5}, {"total": 3, "note": "gift"}],
	"notes": null,
	"aliases": []
}`

func TestInferJSON(t *testing.T) {
	got, err := InferJSON([]byte(userSample))
	require.NoError(t, err)

	want := obj(
		f("id", prim(schema.TypeUUID)),
		f("name", prim(schema.TypeString)),
		f("email", prim(schema.TypeEmail)),
		f("website", prim(schema.TypeURL)),
		f("age", prim(schema.TypeNumber)),
		f("active", prim(schema.TypeBoolean)),
		f("joined", prim(schema.TypeDate)),
		f("tags", schema.NewArray(4, prim(schema.TypeString))),
		f("address", obj(
			f("city", prim(schema.TypeString)),
			f("phone", prim(schema.TypePhoneNumber)),
		)),
		f("orders", schema.NewArray(2, obj(f("total", prim(schema.TypeNumber))))),
		f("notes", prim(schema.TypeString)),
		f("aliases", schema.NewArray(0, prim(schema.TypeString))),
	)
	assertTree(t, want, got)
}

func TestInferJSON_Roots(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want schema.Node
	}{
		{"string", `"ada@example.com"`, prim(schema.TypeEmail)},
		{"number", `42`, prim(schema.TypeNumber)},
		{"array", `[true, false]`, schema.NewArray(2, prim(schema.TypeBoolean))},
		{"empty object", `{}`, obj()},
		{"nested arrays", `[[1, 2, 3]]`, schema.NewArray(1, schema.NewArray(3, prim(schema.TypeNumber)))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InferJSON([]byte(tt.in))
			require.NoError(t, err)
			assertTree(t, tt.want, got)
		})
	}
}

func TestInferJSON_LongArrayIsClamped(t *testing.T) {
	items := make([]string, 250)
	for i := range items {
		items[i] = fmt.Sprint(i)
	}
	got, err := InferJSON([]byte("[" + strings.Join(items, ",") + "]"))
	require.NoError(t, err)
	assert.Equal(t, schema.MaxArrayLength, got.(*schema.Array).Length())
}

func TestInferJSON_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		path string
	}{
		{"empty", ``, "/"},
		{"truncated", `{"a": [1, 2`, "/a"},
		{"trailing data", `{"a": 1} {}`, "/"},
		{"duplicate key", `{"a": 1, "b": {"c": 1, "c": 2}}`, "/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := InferJSON([]byte(tt.in))
			require.ErrorIs(t, err, schema.ErrInvalidSchema)
			var se *schema.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.path, se.Path)
		})
	}
}

func TestInferJSON_SampleConforms(t *testing.T) {
	n, err := InferJSON([]byte(userSample))
	require.NoError(t, err)

	g := synth.New(synth.WithSeed(11))
	for i := 0; i < 20; i++ {
		res := validation.Conforms(n, g.Synthesize(n))
		require.True(t, res.Valid, "%v", res.Errors)
	}
}
