// Package generics shows type parameters on containers, constrained
// functions and tag-keyed dispatch tables.
package generics

import (
	"cmp"
	"fmt"
	"slices"
)

// Box holds exactly one value of any type.
type Box[T any] struct {
	value T
}

func NewBox[T any](v T) Box[T] { return Box[T]{value: v} }

func (b Box[T]) Get() T { return b.value }

func (b Box[T]) String() string { return fmt.Sprintf("Box(%v)", b.value) }

// MapBox transforms the content, possibly into another type. Methods cannot
// introduce type parameters, so this is a function.
func MapBox[T, U any](b Box[T], f func(T) U) Box[U] {
	return NewBox(f(b.value))
}

type Pair[A, B any] struct {
	First  A
	Second B
}

func NewPair[A, B any](a A, b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} }

func (p Pair[A, B]) Swap() Pair[B, A] { return Pair[B, A]{First: p.Second, Second: p.First} }

func (p Pair[A, B]) String() string { return fmt.Sprintf("(%v, %v)", p.First, p.Second) }

// Stack is a LIFO stack. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(items ...T) { s.items = append(s.items, items...) }

// Pop removes the top item. It reports false on an empty stack.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// TreeNode is an unbalanced binary search tree. Duplicates are ignored.
type TreeNode[T cmp.Ordered] struct {
	Value       T
	Left, Right *TreeNode[T]
}

// Insert adds v and returns the (possibly new) root.
func (n *TreeNode[T]) Insert(v T) *TreeNode[T] {
	if n == nil {
		return &TreeNode[T]{Value: v}
	}
	switch {
	case v < n.Value:
		n.Left = n.Left.Insert(v)
	case v > n.Value:
		n.Right = n.Right.Insert(v)
	}
	return n
}

func (n *TreeNode[T]) Contains(v T) bool {
	for n != nil {
		switch {
		case v < n.Value:
			n = n.Left
		case v > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

func (n *TreeNode[T]) InOrder() []T {
	if n == nil {
		return nil
	}
	out := n.Left.InOrder()
	out = append(out, n.Value)
	return append(out, n.Right.InOrder()...)
}

// Max returns the largest argument. It panics without arguments, like the
// builtin max.
func Max[T cmp.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v > m {
			m = v
		}
	}
	return m
}

func Min[T cmp.Ordered](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v < m {
			m = v
		}
	}
	return m
}

// SortedCopy returns a sorted copy of items.
func SortedCopy[T cmp.Ordered](items []T) []T {
	out := slices.Clone(items)
	slices.Sort(out)
	return out
}
