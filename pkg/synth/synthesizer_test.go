package synth

import (
	"bytes"
	"encoding/json"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getmockd/mockshape/pkg/schema"
	"github.com/getmockd/mockshape/pkg/validation"
)

var fixedNow = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func mustLiteral(t *testing.T, ft schema.FieldType, v any) *schema.Primitive {
	t.Helper()
	p, err := schema.NewLiteral(ft, v)
	require.NoError(t, err)
	return p
}

// everyType has one field per field type plus nesting.
func everyType(t *testing.T) schema.Node {
	t.Helper()
	fields := make([]schema.Field, 0, len(schema.FieldTypes())+3)
	for _, ft := range schema.FieldTypes() {
		fields = append(fields, schema.Field{Key: "f_" + string(ft), Node: schema.NewPrimitive(ft)})
	}
	fields = append(fields,
		schema.Field{Key: "fixed", Node: mustLiteral(t, schema.TypeNumber, 12)},
		schema.Field{Key: "rows", Node: schema.NewArray(4, schema.MustObject(
			schema.Field{Key: "when", Node: schema.NewPrimitive(schema.TypeDate)},
			schema.Field{Key: "grid", Node: schema.NewArray(2, schema.NewArray(3, schema.NewPrimitive(schema.TypeBoolean)))},
		))},
		schema.Field{Key: "none", Node: schema.NewArray(0, nil)},
	)
	return schema.MustObject(fields...)
}

func TestSynthesize_TagsScenario(t *testing.T) {
	n := schema.MustParse(`{"type":"object","fields":[
		{"key":"id","type":"uuid"},
		{"key":"tags","type":"array","length":3,"fields":[{"key":"value","type":"string"}]}
	]}`)

	out, ok := Synthesize(n).(Object)
	require.True(t, ok)
	assert.Equal(t, []string{"id", "tags"}, out.Keys())

	id, _ := out.Get("id")
	assert.True(t, validation.ValidateFormat(schema.TypeUUID, id), "id %v", id)

	tagsValue, _ := out.Get("tags")
	tags, ok := tagsValue.([]any)
	require.True(t, ok)
	require.Len(t, tags, 3)
	for _, tag := range tags {
		assert.IsType(t, "", tag)
	}
}

func TestSynthesize_ShapeFidelity(t *testing.T) {
	n := everyType(t)
	v := validation.NewValidator(n)
	g := New()
	for range 200 {
		res := v.Validate(g.Synthesize(n))
		require.True(t, res.Valid, "%v", res.Errors)
	}
}

func TestSynthesize_EveryStrategyMatchesItsFormat(t *testing.T) {
	g := New()
	for _, ft := range schema.FieldTypes() {
		t.Run(string(ft), func(t *testing.T) {
			for range 100 {
				v := g.Synthesize(schema.NewPrimitive(ft))
				assert.True(t, validation.ValidateFormat(ft, v), "%s produced %v", ft, v)
			}
		})
	}
}

func TestSynthesize_ArrayItemsIndependent(t *testing.T) {
	g := New()
	n := schema.NewArray(10, schema.NewPrimitive(schema.TypeNumber))

	distinct := map[float64]bool{}
	for range 20 {
		items := g.Synthesize(n).([]any)
		require.Len(t, items, 10)
		for _, item := range items {
			distinct[item.(float64)] = true
		}
	}
	assert.Greater(t, len(distinct), 20)

	uuids := g.Synthesize(schema.NewArray(5, schema.NewPrimitive(schema.TypeUUID))).([]any)
	seen := map[any]bool{}
	for _, u := range uuids {
		seen[u] = true
	}
	assert.Len(t, seen, 5)
}

func TestSynthesize_LiteralOverride(t *testing.T) {
	// The literal wins even when it does not fit the type.
	n := schema.MustObject(
		schema.Field{Key: "email", Node: mustLiteral(t, schema.TypeEmail, "not an email")},
		schema.Field{Key: "count", Node: mustLiteral(t, schema.TypeNumber, "seven")},
		schema.Field{Key: "on", Node: mustLiteral(t, schema.TypeBoolean, false)},
	)
	g := New()
	for range 50 {
		out := g.Synthesize(n).(Object)
		assert.Equal(t, Object{
			{Key: "email", Value: "not an email"},
			{Key: "count", Value: "seven"},
			{Key: "on", Value: false},
		}, out)
	}
}

func TestSynthesize_Seeded(t *testing.T) {
	n := everyType(t)
	encode := func(g *Synthesizer) string {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, g.SynthesizeN(n, 3), 0))
		return buf.String()
	}

	a := encode(New(WithSeed(42), WithClock(fixedClock)))
	b := encode(New(WithSeed(42), WithClock(fixedClock)))
	c := encode(New(WithSeed(43), WithClock(fixedClock)))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestSynthesize_DatesWithinTwoYears(t *testing.T) {
	g := New(WithClock(fixedClock))
	earliest := fixedNow.AddDate(-2, 0, 0)
	for range 300 {
		s := g.Synthesize(schema.NewPrimitive(schema.TypeDate)).(string)
		d, err := time.Parse(time.DateOnly, s)
		require.NoError(t, err)
		assert.False(t, d.After(fixedNow), s)
		assert.False(t, d.Before(earliest), s)
	}
}

func TestSynthesize_Examples(t *testing.T) {
	g := New(WithExamples())
	n := schema.MustObject(
		schema.Field{Key: "id", Node: schema.NewPrimitive(schema.TypeUUID)},
		schema.Field{Key: "n", Node: schema.NewPrimitive(schema.TypeNumber)},
		schema.Field{Key: "lit", Node: mustLiteral(t, schema.TypeString, "kept")},
	)
	out := g.Synthesize(n).(Object)
	assert.Equal(t, Object{
		{Key: "id", Value: schema.TypeUUID.Example()},
		{Key: "n", Value: float64(42)},
		{Key: "lit", Value: "kept"},
	}, out)
}

func TestSynthesize_StringsFollowFieldNames(t *testing.T) {
	g := New()
	str := schema.NewPrimitive(schema.TypeString)
	n := schema.MustObject(
		schema.Field{Key: "website", Node: str},
		schema.Field{Key: "contactEmail", Node: str},
		schema.Field{Key: "userId", Node: str},
		schema.Field{Key: "city", Node: str},
		schema.Field{Key: "firstName", Node: str},
		schema.Field{Key: "currency", Node: str},
	)
	for range 20 {
		out := g.Synthesize(n).(Object)
		website, _ := out.Get("website")
		assert.True(t, validation.ValidateFormat(schema.TypeURL, website), "%v", website)
		email, _ := out.Get("contactEmail")
		assert.True(t, validation.ValidateFormat(schema.TypeEmail, email), "%v", email)
		id, _ := out.Get("userId")
		assert.True(t, validation.ValidateFormat(schema.TypeUUID, id), "%v", id)
		city, _ := out.Get("city")
		assert.Contains(t, cities, city)
		first, _ := out.Get("firstName")
		assert.Contains(t, firstNames, first)
		currency, _ := out.Get("currency")
		assert.Contains(t, currencyCodes, currency)
	}
}

func TestSynthesize_Numbers(t *testing.T) {
	g := New()
	num := schema.NewPrimitive(schema.TypeNumber)
	n := schema.MustObject(
		schema.Field{Key: "count", Node: num},
		schema.Field{Key: "unitPrice", Node: num},
	)
	for range 200 {
		out := g.Synthesize(n).(Object)
		count, _ := out.Get("count")
		c := count.(float64)
		assert.Equal(t, math.Trunc(c), c)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.Less(t, c, 1000.0)

		price, _ := out.Get("unitPrice")
		p := price.(float64)
		assert.GreaterOrEqual(t, p, 1.0)
		assert.LessOrEqual(t, p, 1000.0)
		assert.InDelta(t, math.Round(p*100), p*100, 1e-6)
	}
}

func TestSynthesize_Roots(t *testing.T) {
	assert.Equal(t, "x@y.io", Synthesize(mustLiteral(t, schema.TypeEmail, "x@y.io")))

	items := Synthesize(schema.NewArray(250, nil)).([]any)
	assert.Len(t, items, 100)

	empty := Synthesize(schema.NewArray(-5, nil)).([]any)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	assert.Equal(t, Object{}, Synthesize(schema.MustObject()))
	assert.Empty(t, New().SynthesizeN(schema.MustObject(), -1))
}

func TestSynthesize_Concurrent(t *testing.T) {
	n := everyType(t)
	v := validation.NewValidator(n)
	for _, g := range []*Synthesizer{New(), New(WithSeed(1))} {
		var wg sync.WaitGroup
		for range 8 {
			wg.Go(func() {
				for range 25 {
					assert.True(t, v.Validate(g.Synthesize(n)).Valid)
				}
			})
		}
		wg.Wait()
	}
}

func TestObject_JSONOrderAndPlain(t *testing.T) {
	out := Object{
		{Key: "zeta", Value: 1.0},
		{Key: "alpha", Value: Object{{Key: "b", Value: true}, {Key: "a", Value: "x-y"}}},
		{Key: "list", Value: []any{Object{{Key: "k", Value: nil}}}},
	}

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":{"b":true,"a":"x-y"},"list":[{"k":null}]}`, string(data))

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, out, 2))
	text := buf.String()
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.Less(t, strings.Index(text, "zeta"), strings.Index(text, "alpha"))
	assert.Contains(t, text, "\n  \"zeta\": 1,")
	assert.Contains(t, text, "x-y")

	plain := Plain(out)
	assert.Equal(t, map[string]any{
		"zeta":  1.0,
		"alpha": map[string]any{"b": true, "a": "x-y"},
		"list":  []any{map[string]any{"k": nil}},
	}, plain)

	assert.True(t, slices.Equal([]string{"zeta", "alpha", "list"}, out.Keys()))
}
