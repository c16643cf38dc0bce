package pseq

import (
	"fmt"
	"iter"
)

// Seq is a persistent positional sequence. The zero value is an empty
// sequence ready to use.
type Seq[T any] struct {
	root *node[T]
}

// Of builds a sequence holding vals in order.
func Of[T any](vals ...T) Seq[T] {
	return Seq[T]{root: build(vals)}
}

// Len returns the number of elements.
func (s Seq[T]) Len() int { return sizeOf(s.root) }

// At returns the element at index i. It panics when i is out of range,
// like a slice index.
func (s Seq[T]) At(i int) T {
	s.check(i, s.Len())
	n := s.root
	for {
		ls := sizeOf(n.left)
		switch {
		case i < ls:
			n = n.left
		case i > ls:
			i -= ls + 1
			n = n.right
		default:
			return n.val
		}
	}
}

// Set returns a sequence with element i replaced by v.
func (s Seq[T]) Set(i int, v T) Seq[T] {
	s.check(i, s.Len())
	return Seq[T]{root: setAt(s.root, i, v)}
}

// Insert returns a sequence with v inserted before index i.
// i may equal Len, which appends.
func (s Seq[T]) Insert(i int, v T) Seq[T] {
	s.check(i, s.Len()+1)
	return Seq[T]{root: insertAt(s.root, i, v)}
}

// Append returns a sequence with v added at the end.
func (s Seq[T]) Append(v T) Seq[T] {
	return Seq[T]{root: insertAt(s.root, s.Len(), v)}
}

// Delete returns a sequence without element i.
func (s Seq[T]) Delete(i int) Seq[T] {
	s.check(i, s.Len())
	return Seq[T]{root: deleteAt(s.root, i)}
}

// All iterates over index/value pairs in order.
func (s Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		walk(s.root, func(v T) bool {
			ok := yield(i, v)
			i++
			return ok
		})
	}
}

// Values copies the sequence into a new slice.
func (s Seq[T]) Values() []T {
	out := make([]T, 0, s.Len())
	walk(s.root, func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func (s Seq[T]) check(i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Sprintf("pseq: index %d out of range [0:%d]", i, limit))
	}
}

func setAt[T any](n *node[T], i int, v T) *node[T] {
	ls := sizeOf(n.left)
	switch {
	case i < ls:
		return mk(setAt(n.left, i, v), n.val, n.right)
	case i > ls:
		return mk(n.left, n.val, setAt(n.right, i-ls-1, v))
	default:
		return mk(n.left, v, n.right)
	}
}

func insertAt[T any](n *node[T], i int, v T) *node[T] {
	if n == nil {
		return mk[T](nil, v, nil)
	}
	ls := sizeOf(n.left)
	if i <= ls {
		return balance(insertAt(n.left, i, v), n.val, n.right)
	}
	return balance(n.left, n.val, insertAt(n.right, i-ls-1, v))
}

func deleteAt[T any](n *node[T], i int) *node[T] {
	ls := sizeOf(n.left)
	switch {
	case i < ls:
		return balance(deleteAt(n.left, i), n.val, n.right)
	case i > ls:
		return balance(n.left, n.val, deleteAt(n.right, i-ls-1))
	default:
		return merge(n.left, n.right)
	}
}
