// Package pseq provides persistent (immutable) sequences and ordered sets.
//
// Both structures are size-augmented AVL trees. Every update returns a new
// value that shares all untouched nodes with its input, so an update costs
// O(log n) allocations regardless of how many elements the structure holds.
// Values are safe to share between goroutines because nothing is ever
// modified after construction.
package pseq

// node is an immutable AVL node. size counts the nodes in the subtree.
type node[T any] struct {
	left, right *node[T]
	val         T
	size        int
	height      int
}

func sizeOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.size
}

func heightOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

// mk allocates a node over two subtrees whose heights differ by at most one.
func mk[T any](l *node[T], v T, r *node[T]) *node[T] {
	return &node[T]{
		left:   l,
		right:  r,
		val:    v,
		size:   sizeOf(l) + sizeOf(r) + 1,
		height: max(heightOf(l), heightOf(r)) + 1,
	}
}

// balance joins l, v and r, rotating when the subtree heights differ by two.
// A single insertion or removal never produces a larger difference.
func balance[T any](l *node[T], v T, r *node[T]) *node[T] {
	hl, hr := heightOf(l), heightOf(r)
	switch {
	case hl > hr+1:
		if heightOf(l.left) >= heightOf(l.right) {
			return mk(l.left, l.val, mk(l.right, v, r))
		}
		return mk(mk(l.left, l.val, l.right.left), l.right.val, mk(l.right.right, v, r))
	case hr > hl+1:
		if heightOf(r.right) >= heightOf(r.left) {
			return mk(mk(l, v, r.left), r.val, r.right)
		}
		return mk(mk(l, v, r.left.left), r.left.val, mk(r.left.right, r.val, r.right))
	default:
		return mk(l, v, r)
	}
}

// removeMin returns the leftmost value and the tree without it.
func removeMin[T any](n *node[T]) (T, *node[T]) {
	if n.left == nil {
		return n.val, n.right
	}
	v, l := removeMin(n.left)
	return v, balance(l, n.val, n.right)
}

// merge joins two sibling subtrees after their parent was removed.
func merge[T any](l, r *node[T]) *node[T] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	v, rest := removeMin(r)
	return balance(l, v, rest)
}

// build creates a perfectly balanced tree from vals in O(n).
func build[T any](vals []T) *node[T] {
	if len(vals) == 0 {
		return nil
	}
	mid := len(vals) / 2
	return mk(build(vals[:mid]), vals[mid], build(vals[mid+1:]))
}

// walk visits values in order and stops early when yield returns false.
func walk[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.left, yield) && yield(n.val) && walk(n.right, yield)
}
