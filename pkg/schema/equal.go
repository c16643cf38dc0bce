package schema

// Equal reports whether two trees describe the same schema: same kinds,
// same keys in the same order, same lengths, types and literals.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	switch x := a.(type) {
	case *Object:
		y, ok := b.(*Object)
		if !ok || x.Len() != y.Len() {
			return false
		}
		for i, f := range x.All() {
			g := y.Field(i)
			if f.Key != g.Key || !Equal(f.Node, g.Node) {
				return false
			}
		}
		return true
	case *Array:
		y, ok := b.(*Array)
		return ok && x.length == y.length && Equal(x.item, y.item)
	case *Primitive:
		y, ok := b.(*Primitive)
		return ok && x.typ == y.typ && x.hasLiteral == y.hasLiteral && x.literal == y.literal
	default:
		return false
	}
}

// Count returns the number of nodes in the tree.
func Count(n Node) int {
	switch x := n.(type) {
	case *Object:
		total := 1
		for _, f := range x.All() {
			total += Count(f.Node)
		}
		return total
	case *Array:
		return 1 + Count(x.item)
	case *Primitive:
		return 1
	default:
		return 0
	}
}

// Depth returns the number of levels in the tree; a lone primitive is 1.
func Depth(n Node) int {
	switch x := n.(type) {
	case *Object:
		d := 0
		for _, f := range x.All() {
			d = max(d, Depth(f.Node))
		}
		return d + 1
	case *Array:
		return Depth(x.item) + 1
	case *Primitive:
		return 1
	default:
		return 0
	}
}
