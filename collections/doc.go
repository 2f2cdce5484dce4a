// Package collections provides a generic, growable, mutable array together
// with pooled and filtering iterators and order-statistic queries.
//
// # Overview
//
// The central type is [Array][T], a resizable sequence backed by a slice
// whose capacity grows by a factor of 1.75 (minimum 8) when full:
//
//	a := collections.NewArray[int]()
//	a.AddAll(5, 3, 8, 1)
//	a.Sort(cmp.Compare[int])              // stable
//	median, _ := a.SelectRanked(cmp.Compare[int], 2)
//
// Operations that violate a calling contract (bad index, empty array, rank
// out of range) return one of the sentinel errors in this package; test for
// them with [errors.Is].
//
// # Ordered and unordered arrays
//
// An ordered array (the default) preserves element order on Insert and
// RemoveIndex at O(n) cost. An unordered array, created with
// Options{Ordered: false}, does both in O(1) by moving at most one other
// element:
//
//	a, _ := collections.NewArrayWithOptions[string](collections.Options{Capacity: 4})
//	a.AddAll("a", "b", "c", "d")
//	a.RemoveIndex(1)                       // → [a, d, c]
//
// Unordered arrays are never equal to another array (see [Array.Equal]).
//
// # Iteration
//
// Three styles are available:
//
//   - [Array.All], [Array.Values], [Array.Backward] and [Array.Matching]
//     return range-over-func sequences. They are independent per call and
//     may be nested.
//   - [Array.Iterator] returns one of two pooled [ArrayIterator] values that
//     support Remove. A newer call invalidates the older iterator, which
//     then fails with [ErrNestedIteration].
//   - [Array.Select] and [NewPredicateIterator] wrap an [Iterator] and yield
//     only the elements that satisfy a predicate.
//
//	it := a.Select(func(n int) bool { return n%2 == 0 })
//	for it.HasNext() {
//	    n, _ := it.Next()
//	    if n > 10 {
//	        _ = it.Remove()
//	    }
//	}
//
// # Concurrency
//
// Nothing in this package is safe for concurrent use. Sorting and selection
// delegate to package arr, whose package-level functions keep no shared
// state.
package collections
