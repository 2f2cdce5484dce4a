package collections

import "iter"

// All returns an iterator over index/element pairs in order.
//
// Each call produces an independent traversal, so All may be nested and used
// alongside [Array.Iterator]. Modifying the array's structure inside the loop
// is not supported.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over index/element pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := a.size - 1; i >= 0; i-- {
			if !yield(i, a.items[i]) {
				return
			}
		}
	}
}

// Matching returns an iterator over the elements that satisfy predicate.
func (a *Array[T]) Matching(predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.size; i++ {
			if v := a.items[i]; predicate(v) && !yield(v) {
				return
			}
		}
	}
}

// Collect builds an ordered Array from the values of seq.
func Collect[T any](seq iter.Seq[T]) *Array[T] {
	a := NewArray[T]()
	for v := range seq {
		a.Add(v)
	}
	return a
}
