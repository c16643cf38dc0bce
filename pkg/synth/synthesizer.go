package synth

import (
	"time"

	"github.com/getmockd/mockshape/pkg/schema"
)

// Synthesizer turns schema trees into example values. A Synthesizer is safe
// for concurrent use; every call draws fresh values.
type Synthesizer struct {
	src      *source
	clock    func() time.Time
	examples bool
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSeed makes generation reproducible: two synthesizers with the same
// seed and clock produce the same sequence of values.
func WithSeed(seed uint64) Option {
	return func(g *Synthesizer) {
		g.src = newSeededSource(seed)
	}
}

// WithClock sets the time dates are generated relative to.
func WithClock(now func() time.Time) Option {
	return func(g *Synthesizer) {
		if now != nil {
			g.clock = now
		}
	}
}

// WithExamples makes every primitive without a literal produce its type's
// fixed example value instead of a random one.
func WithExamples() Option {
	return func(g *Synthesizer) {
		g.examples = true
	}
}

// New creates a Synthesizer. Without options it draws from the global
// math/rand/v2 source and uses the wall clock.
func New(opts ...Option) *Synthesizer {
	g := &Synthesizer{
		src:   &source{},
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

var defaultSynthesizer = New()

// Synthesize generates one value from n with the default synthesizer.
func Synthesize(n schema.Node) any {
	return defaultSynthesizer.Synthesize(n)
}

// Synthesize generates one value from n:
//   - an Object becomes an Object with the same keys in the same order,
//   - an Array becomes a []any of exactly Length independently generated items,
//   - a Primitive with a literal becomes that literal,
//   - any other Primitive becomes a value drawn for its type.
func (g *Synthesizer) Synthesize(n schema.Node) any {
	return g.synth(n, "")
}

// SynthesizeN generates count independent values from n.
func (g *Synthesizer) SynthesizeN(n schema.Node, count int) []any {
	out := make([]any, max(count, 0))
	for i := range out {
		out[i] = g.synth(n, "")
	}
	return out
}

func (g *Synthesizer) synth(n schema.Node, key string) any {
	switch x := n.(type) {
	case *schema.Object:
		obj := make(Object, 0, x.Len())
		for _, f := range x.All() {
			obj = append(obj, Member{Key: f.Key, Value: g.synth(f.Node, f.Key)})
		}
		return obj
	case *schema.Array:
		items := make([]any, x.Length())
		for i := range items {
			items[i] = g.synth(x.Item(), key)
		}
		return items
	case *schema.Primitive:
		if lit, ok := x.Literal(); ok {
			return lit
		}
		if g.examples {
			return x.Type().Example()
		}
		if gen, ok := strategies[x.Type()]; ok {
			return gen(g, key)
		}
		return genString(g, key)
	default:
		return nil
	}
}
