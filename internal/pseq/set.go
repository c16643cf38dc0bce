package pseq

import (
	"cmp"
	"iter"
)

// Set is a persistent ordered set. The zero value is an empty set.
type Set[K cmp.Ordered] struct {
	root *node[K]
}

// Len returns the number of members.
func (s Set[K]) Len() int { return sizeOf(s.root) }

// Has reports whether k is a member.
func (s Set[K]) Has(k K) bool {
	n := s.root
	for n != nil {
		switch c := cmp.Compare(k, n.val); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Add returns a set containing k. The boolean is false when k was already
// present, in which case the returned set is s itself.
func (s Set[K]) Add(k K) (Set[K], bool) {
	root, added := add(s.root, k)
	if !added {
		return s, false
	}
	return Set[K]{root: root}, true
}

// Remove returns a set without k. The boolean is false when k was absent.
func (s Set[K]) Remove(k K) (Set[K], bool) {
	root, removed := remove(s.root, k)
	if !removed {
		return s, false
	}
	return Set[K]{root: root}, true
}

// All iterates over members in ascending order.
func (s Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(s.root, yield)
	}
}

func add[K cmp.Ordered](n *node[K], k K) (*node[K], bool) {
	if n == nil {
		return mk[K](nil, k, nil), true
	}
	switch c := cmp.Compare(k, n.val); {
	case c < 0:
		l, ok := add(n.left, k)
		if !ok {
			return n, false
		}
		return balance(l, n.val, n.right), true
	case c > 0:
		r, ok := add(n.right, k)
		if !ok {
			return n, false
		}
		return balance(n.left, n.val, r), true
	default:
		return n, false
	}
}

func remove[K cmp.Ordered](n *node[K], k K) (*node[K], bool) {
	if n == nil {
		return nil, false
	}
	switch c := cmp.Compare(k, n.val); {
	case c < 0:
		l, ok := remove(n.left, k)
		if !ok {
			return n, false
		}
		return balance(l, n.val, n.right), true
	case c > 0:
		r, ok := remove(n.right, k)
		if !ok {
			return n, false
		}
		return balance(n.left, n.val, r), true
	default:
		return merge(n.left, n.right), true
	}
}
