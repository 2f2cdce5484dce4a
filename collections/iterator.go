package collections

import "fmt"

// Iterator is a forward cursor over a sequence with optional removal of the
// element most recently returned by Next.
type Iterator[T any] interface {
	// HasNext reports whether Next will return another element.
	HasNext() bool

	// Next returns the next element.
	Next() (T, error)

	// Remove removes the element most recently returned by Next.
	Remove() error
}

// ─────────────────────────────────────────────────────────────────────────────
// ArrayIterator
// ─────────────────────────────────────────────────────────────────────────────

// ArrayIterator walks an [Array] from index 0 upwards.
//
// Iterators created with [NewArrayIterator] are owned by the caller and may
// be nested freely. Iterators handed out by [Array.Iterator] are pooled; see
// [ArrayIterable] for the rules that apply to them.
type ArrayIterator[T any] struct {
	array       *Array[T]
	allowRemove bool
	index       int
	valid       bool
	removable   bool
	err         error
}

// NewArrayIterator returns an iterator over a positioned at its first
// element. Remove is permitted only when allowRemove is true.
func NewArrayIterator[T any](a *Array[T], allowRemove bool) *ArrayIterator[T] {
	return &ArrayIterator[T]{array: a, allowRemove: allowRemove, valid: true}
}

// HasNext reports whether another element remains. It returns false once the
// iterator has been invalidated; [ArrayIterator.Err] then reports why.
func (it *ArrayIterator[T]) HasNext() bool {
	if !it.valid {
		it.err = ErrNestedIteration
		return false
	}
	return it.index < it.array.size
}

// Next returns the next element.
//
// Returns [ErrNestedIteration] when the iterator has been invalidated by a
// newer call to [Array.Iterator], and [ErrIndexOutOfRange] when the end has
// been reached.
func (it *ArrayIterator[T]) Next() (T, error) {
	var zero T
	if !it.valid {
		it.err = ErrNestedIteration
		return zero, it.err
	}
	if it.index >= it.array.size {
		return zero, fmt.Errorf("%w: iterator at %d with size %d", ErrIndexOutOfRange, it.index, it.array.size)
	}
	v := it.array.items[it.index]
	it.index++
	it.removable = true
	return v, nil
}

// Remove removes the element returned by the last call to Next and steps the
// cursor back so the following element is not skipped.
//
// Returns [ErrRemoveNotAllowed] when the iterator was built without removal
// permission and [ErrIllegalState] when Next has not returned an element
// since the last Remove.
func (it *ArrayIterator[T]) Remove() error {
	if !it.allowRemove {
		return ErrRemoveNotAllowed
	}
	if !it.valid {
		it.err = ErrNestedIteration
		return it.err
	}
	if !it.removable {
		return fmt.Errorf("%w: no element to remove at %d", ErrIllegalState, it.index)
	}
	it.removable = false
	it.index--
	_, err := it.array.RemoveIndex(it.index)
	return err
}

// Reset moves the cursor back to the first element.
func (it *ArrayIterator[T]) Reset() {
	it.index = 0
	it.removable = false
}

// Err returns the error that ended iteration early, if any.
func (it *ArrayIterator[T]) Err() error {
	return it.err
}

func (it *ArrayIterator[T]) acquire() *ArrayIterator[T] {
	it.index = 0
	it.valid = true
	it.removable = false
	it.err = nil
	return it
}

// ─────────────────────────────────────────────────────────────────────────────
// ArrayIterable
// ─────────────────────────────────────────────────────────────────────────────

// ArrayIterable hands out iterators over one [Array] from a pool of two.
//
// Exactly one pooled iterator is valid at any time. Each call to
// [ArrayIterable.Iterator] resets and returns an iterator and invalidates
// the other one, so a traversal abandoned half way never blocks the next.
// Starting a second traversal while the first is still running therefore
// invalidates the first, whose next HasNext returns false and whose next
// Next fails with [ErrNestedIteration].
//
// For genuinely nested or concurrent traversals use [NewArrayIterator] or
// the range-over-func sequences ([Array.All], [Array.Values]).
//
// An ArrayIterable is not safe for concurrent use.
type ArrayIterable[T any] struct {
	array                *Array[T]
	allowRemove          bool
	iterator1, iterator2 *ArrayIterator[T]
}

// NewArrayIterable returns an iterable over a. Iterators it returns permit
// Remove only when allowRemove is true.
func NewArrayIterable[T any](a *Array[T], allowRemove bool) *ArrayIterable[T] {
	return &ArrayIterable[T]{array: a, allowRemove: allowRemove}
}

// Iterator returns a pooled iterator positioned at the first element.
func (ai *ArrayIterable[T]) Iterator() *ArrayIterator[T] {
	if ai.iterator1 == nil {
		ai.iterator1 = NewArrayIterator(ai.array, ai.allowRemove)
		ai.iterator2 = NewArrayIterator(ai.array, ai.allowRemove)
		ai.iterator1.valid = false
		ai.iterator2.valid = false
	}
	if !ai.iterator1.valid {
		ai.iterator2.valid = false
		return ai.iterator1.acquire()
	}
	ai.iterator1.valid = false
	return ai.iterator2.acquire()
}

// Iterator returns a pooled iterator over a that supports Remove.
//
// The same two iterator objects are recycled on every call, so Iterator must
// not be used for nested traversals of the same array: the inner call
// invalidates the outer iterator (see [ArrayIterable]).
func (a *Array[T]) Iterator() *ArrayIterator[T] {
	if a.iterable == nil {
		a.iterable = NewArrayIterable(a, true)
	}
	return a.iterable.Iterator()
}
