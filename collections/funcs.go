package collections

import (
	"golang.org/x/exp/constraints"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

// This file contains package-level generic functions over *Array[T].
//
// Go methods cannot introduce their own type parameters, so operations that
// change the element type, or that need a tighter constraint than any, are
// stand-alone functions:
//
//	lengths := collections.Map(words, func(s string, _ int) int { return len(s) })
//	collections.Sort(lengths)

// Map applies fn to every element and returns a new ordered Array[U].
//
//	labels := collections.Map(collections.With(1, 2, 3),
//	    func(n, _ int) string { return strconv.Itoa(n) })
func Map[T, U any](a *Array[T], fn func(T, int) U) *Array[U] {
	out := &Array[U]{items: make([]U, a.size), size: a.size, ordered: true}
	for i := 0; i < a.size; i++ {
		out.items[i] = fn(a.items[i], i)
	}
	return out
}

// Reduce folds the elements of a into a single value of type U.
//
//	sum := collections.Reduce(a, func(acc, n, _ int) int { return acc + n }, 0)
func Reduce[T, U any](a *Array[T], fn func(U, T, int) U, initial U) U {
	result := initial
	for i := 0; i < a.size; i++ {
		result = fn(result, a.items[i], i)
	}
	return result
}

// GroupBy groups elements by the comparable key K extracted by fn. Each group
// is an ordered Array preserving the original element order.
func GroupBy[T any, K comparable](a *Array[T], fn func(T) K) map[K]*Array[T] {
	groups := make(map[K]*Array[T])
	for i := 0; i < a.size; i++ {
		item := a.items[i]
		k := fn(item)
		g, ok := groups[k]
		if !ok {
			g = NewArray[T]()
			groups[k] = g
		}
		g.Add(item)
	}
	return groups
}

// KeyBy builds a map[K]T keyed by the value extracted by fn.
// When multiple elements share a key, the last one wins.
func KeyBy[T any, K comparable](a *Array[T], fn func(T) K) map[K]T {
	out := make(map[K]T, a.size)
	for i := 0; i < a.size; i++ {
		out[fn(a.items[i])] = a.items[i]
	}
	return out
}

// Zip combines two arrays element-by-element into Pairs, stopping at the
// shorter of the two.
func Zip[A, B any](a *Array[A], b *Array[B]) *Array[Pair[A, B]] {
	n := min(a.size, b.size)
	out := &Array[Pair[A, B]]{items: make([]Pair[A, B], n), size: n, ordered: true}
	for i := 0; i < n; i++ {
		out.items[i] = Pair[A, B]{First: a.items[i], Second: b.items[i]}
	}
	return out
}

// Sort stably sorts a in ascending natural order.
func Sort[T constraints.Ordered](a *Array[T]) {
	arr.Sort(a.items[:a.size])
}

// ─────────────────────────────────────────────────────────────────────────────
// Numeric helpers
// ─────────────────────────────────────────────────────────────────────────────

// Number is the set of element types supported by the numeric helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Incr adds value to the element at index.
// Returns [ErrIndexOutOfRange] when index is invalid.
func Incr[T Number](a *Array[T], index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.items[index] += value
	return nil
}

// Mul multiplies the element at index by value.
// Returns [ErrIndexOutOfRange] when index is invalid.
func Mul[T Number](a *Array[T], index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.items[index] *= value
	return nil
}

// Sum returns the sum of all elements, or 0 for an empty array.
func Sum[T Number](a *Array[T]) T {
	var total T
	for i := 0; i < a.size; i++ {
		total += a.items[i]
	}
	return total
}
