package collections

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

// Array is a resizable, mutable, randomly indexable sequence of T.
//
// Every method on Array modifies the receiver in place. Appending is
// amortised O(1): when the backing buffer is full it grows to
// max(8, floor(size*1.75)).
//
// # Ordered and unordered arrays
//
// An ordered array keeps the relative order of its elements on every
// insertion and removal by shifting the tail. An unordered array trades that
// guarantee for O(1) removal (the last element fills the gap) and O(1)
// insertion (the displaced element moves to the end).
//
// # Concurrency
//
// Array is not safe for concurrent use. Structurally modifying an array
// (Add, Insert, RemoveIndex, ...) while an iterator obtained from it is in
// use leaves that iterator in an undefined position; use the iterator's own
// Remove instead.
type Array[T any] struct {
	items   []T
	size    int
	ordered bool

	iterable *ArrayIterable[T]
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewArray creates an empty ordered Array with a capacity of 16.
func NewArray[T any]() *Array[T] {
	a, _ := NewArrayWithOptions[T](DefaultOptions())
	return a
}

// NewArrayWithOptions creates an empty Array configured by opts.
// Returns [ErrInvalidCapacity] when opts.Capacity is negative.
func NewArrayWithOptions[T any](opts Options) (*Array[T], error) {
	if opts.Capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, opts.Capacity)
	}
	return &Array[T]{
		items:   make([]T, opts.Capacity),
		ordered: opts.Ordered,
	}, nil
}

// With creates an ordered Array holding a copy of items. The capacity equals
// the number of items.
func With[T any](items ...T) *Array[T] {
	a := &Array[T]{items: make([]T, len(items)), size: len(items), ordered: true}
	copy(a.items, items)
	return a
}

// FromArray creates a copy of src with the same ordering policy. The
// capacity equals src.Len().
func FromArray[T any](src *Array[T]) *Array[T] {
	a := &Array[T]{items: make([]T, src.size), size: src.size, ordered: src.ordered}
	copy(a.items, src.items[:src.size])
	return a
}

// FromSlice creates an Array holding a copy of items[start:start+count].
// Returns [ErrIndexOutOfRange] when the window does not fit items.
func FromSlice[T any](ordered bool, items []T, start, count int) (*Array[T], error) {
	if start < 0 || count < 0 || start+count > len(items) {
		return nil, fmt.Errorf("%w: start %d + count %d with length %d", ErrIndexOutOfRange, start, count, len(items))
	}
	a := &Array[T]{items: make([]T, count), size: count, ordered: ordered}
	copy(a.items, items[start:start+count])
	return a, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.size }

// Cap returns the length of the backing buffer.
func (a *Array[T]) Cap() int { return len(a.items) }

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool { return a.size == 0 }

// IsNotEmpty reports whether the array holds at least one element.
func (a *Array[T]) IsNotEmpty() bool { return a.size > 0 }

// Ordered reports whether removals and inserts preserve element order.
func (a *Array[T]) Ordered() bool { return a.ordered }

// Items returns the live elements as a slice that aliases the backing
// buffer. Writes through it are visible in the array; it is invalidated by
// the next call that grows or shrinks the buffer.
func (a *Array[T]) Items() []T { return a.items[:a.size:a.size] }

// ToSlice returns a copy of the live elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.size)
	copy(out, a.items[:a.size])
	return out
}

// Get returns the element at index.
// Returns [ErrIndexOutOfRange] when index is outside [0, Len()-1].
func (a *Array[T]) Get(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	return a.items[index], nil
}

// Set replaces the element at index.
// Returns [ErrIndexOutOfRange] when index is outside [0, Len()-1].
func (a *Array[T]) Set(index int, value T) error {
	if err := a.checkIndex(index); err != nil {
		return err
	}
	a.items[index] = value
	return nil
}

// First returns the first element, or [ErrEmptyCollection].
func (a *Array[T]) First() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return a.items[0], nil
}

// Peek returns the last element without removing it, or [ErrEmptyCollection].
func (a *Array[T]) Peek() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return a.items[a.size-1], nil
}

// Random returns a uniformly chosen element. Returns the zero value and
// false when the array is empty.
func (a *Array[T]) Random() (T, bool) {
	if a.size == 0 {
		var zero T
		return zero, false
	}
	return a.items[arr.RandomIndex(a.size)], true
}

func (a *Array[T]) checkIndex(index int) error {
	if index < 0 || index >= a.size {
		return fmt.Errorf("%w: index %d with size %d", ErrIndexOutOfRange, index, a.size)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Insert
// ─────────────────────────────────────────────────────────────────────────────

// Add appends value, growing the backing buffer when it is full.
func (a *Array[T]) Add(value T) {
	if a.size == len(a.items) {
		a.resize(max(8, int(float64(a.size)*1.75)))
	}
	a.items[a.size] = value
	a.size++
}

// AddAll appends every value in order, growing the buffer at most once.
func (a *Array[T]) AddAll(values ...T) {
	a.addSlice(values)
}

// AddArray appends src.Items()[start:start+count].
// Returns [ErrIndexOutOfRange] when the window does not fit src.
func (a *Array[T]) AddArray(src *Array[T], start, count int) error {
	if start < 0 || count < 0 || start+count > src.size {
		return fmt.Errorf("%w: start %d + count %d must be <= size %d", ErrIndexOutOfRange, start, count, src.size)
	}
	a.addSlice(src.items[start : start+count])
	return nil
}

func (a *Array[T]) addSlice(values []T) {
	needed := a.size + len(values)
	if needed > len(a.items) {
		a.resize(max(8, int(float64(needed)*1.75)))
	}
	copy(a.items[a.size:needed], values)
	a.size = needed
}

// Insert places value at index, which may equal Len() to append.
//
// An ordered array shifts the tail right by one. An unordered array moves
// the element previously at index to the end instead.
// Returns [ErrIndexOutOfRange] when index is outside [0, Len()].
func (a *Array[T]) Insert(index int, value T) error {
	if index < 0 || index > a.size {
		return fmt.Errorf("%w: insert index %d with size %d", ErrIndexOutOfRange, index, a.size)
	}
	if a.size == len(a.items) {
		a.resize(max(8, int(float64(a.size)*1.75)))
	}
	if a.ordered {
		copy(a.items[index+1:a.size+1], a.items[index:a.size])
	} else {
		a.items[a.size] = a.items[index]
	}
	a.size++
	a.items[index] = value
	return nil
}

// Swap exchanges the elements at first and second.
// Returns [ErrIndexOutOfRange] when either index is invalid.
func (a *Array[T]) Swap(first, second int) error {
	if err := a.checkIndex(first); err != nil {
		return err
	}
	if err := a.checkIndex(second); err != nil {
		return err
	}
	arr.Swap(a.items, first, second)
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether value is present. When identity is true elements
// are compared by identity, otherwise by value (see [Array.IndexOf]).
func (a *Array[T]) Contains(value T, identity bool) bool {
	eq := equality[T](identity)
	for i := a.size - 1; i >= 0; i-- {
		if eq(a.items[i], value) {
			return true
		}
	}
	return false
}

// IndexOf returns the index of the first element equal to value, or -1.
//
// With identity set, two values are equal when they are the same object:
// == for comparable values, and the same underlying pointer for slices,
// maps, functions and channels. Otherwise values are compared with their
// Equal(T) bool method when T has one, falling back to reflect.DeepEqual.
func (a *Array[T]) IndexOf(value T, identity bool) int {
	eq := equality[T](identity)
	for i := 0; i < a.size; i++ {
		if eq(a.items[i], value) {
			return i
		}
	}
	return -1
}

// LastIndexOf returns the index of the last element equal to value, or -1.
func (a *Array[T]) LastIndexOf(value T, identity bool) int {
	eq := equality[T](identity)
	for i := a.size - 1; i >= 0; i-- {
		if eq(a.items[i], value) {
			return i
		}
	}
	return -1
}

// ─────────────────────────────────────────────────────────────────────────────
// Remove
// ─────────────────────────────────────────────────────────────────────────────

// RemoveIndex removes and returns the element at index.
//
// An ordered array shifts the tail left; an unordered array moves the last
// element into the gap. The vacated slot is zeroed.
// Returns [ErrIndexOutOfRange] when index is outside [0, Len()-1].
func (a *Array[T]) RemoveIndex(index int) (T, error) {
	if err := a.checkIndex(index); err != nil {
		var zero T
		return zero, err
	}
	value := a.items[index]
	a.size--
	if a.ordered {
		copy(a.items[index:a.size], a.items[index+1:a.size+1])
	} else {
		a.items[index] = a.items[a.size]
	}
	var zero T
	a.items[a.size] = zero
	return value, nil
}

// RemoveRange removes the elements between start and end, inclusive.
// Returns [ErrIndexOutOfRange] when end >= Len(), start < 0 or start > end.
func (a *Array[T]) RemoveRange(start, end int) error {
	n := a.size
	if end >= n {
		return fmt.Errorf("%w: end %d must be < size %d", ErrIndexOutOfRange, end, n)
	}
	if start < 0 || start > end {
		return fmt.Errorf("%w: start %d must be in [0, end %d]", ErrIndexOutOfRange, start, end)
	}
	count := end - start + 1
	lastIndex := n - count
	if a.ordered {
		copy(a.items[start:lastIndex], a.items[start+count:n])
	} else {
		i := max(lastIndex, end+1)
		copy(a.items[start:start+n-i], a.items[i:n])
	}
	clear(a.items[lastIndex:n])
	a.size = lastIndex
	return nil
}

// RemoveValue removes the first element equal to value and reports whether
// one was found. See [Array.IndexOf] for the meaning of identity.
func (a *Array[T]) RemoveValue(value T, identity bool) bool {
	i := a.IndexOf(value, identity)
	if i < 0 {
		return false
	}
	_, _ = a.RemoveIndex(i)
	return true
}

// RemoveAll removes, for every element of other, the first matching element
// of a. Reports whether a was modified.
func (a *Array[T]) RemoveAll(other *Array[T], identity bool) bool {
	start := a.size
	eq := equality[T](identity)
	for _, item := range other.items[:other.size] {
		for i := 0; i < a.size; i++ {
			if eq(item, a.items[i]) {
				_, _ = a.RemoveIndex(i)
				break
			}
		}
	}
	return a.size != start
}

// Pop removes and returns the last element, or [ErrEmptyCollection].
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmptyCollection
	}
	a.size--
	item := a.items[a.size]
	a.items[a.size] = zero
	return item, nil
}

// Clear removes every element. Capacity is kept.
func (a *Array[T]) Clear() {
	clear(a.items[:a.size])
	a.size = 0
}

// Truncate reduces the array to newSize elements. It does nothing when the
// array already holds newSize elements or fewer.
func (a *Array[T]) Truncate(newSize int) {
	if a.size <= newSize {
		return
	}
	newSize = max(newSize, 0)
	clear(a.items[newSize:a.size])
	a.size = newSize
}

// ─────────────────────────────────────────────────────────────────────────────
// Capacity
// ─────────────────────────────────────────────────────────────────────────────

// Shrink reallocates the backing buffer to exactly Len() elements, releasing
// memory after many removals. Returns the live elements.
func (a *Array[T]) Shrink() []T {
	if len(a.items) != a.size {
		a.resize(a.size)
	}
	return a.items
}

// EnsureCapacity grows the backing buffer so that additional more elements
// fit without further growth. Len() is unchanged. Returns the backing buffer
// sliced to its full capacity.
func (a *Array[T]) EnsureCapacity(additional int) []T {
	needed := a.size + additional
	if needed > len(a.items) {
		a.resize(max(8, needed))
	}
	return a.items
}

func (a *Array[T]) resize(newSize int) {
	items := make([]T, newSize)
	copy(items, a.items[:min(a.size, newSize)])
	a.items = items
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Sort stably sorts the array using compare. See [arr.SortFunc].
func (a *Array[T]) Sort(compare func(x, y T) int) {
	arr.SortFunc(a.items[:a.size], compare)
}

// SelectRanked returns the kth-lowest element according to compare. k is an
// ordinal: 1 is the minimum and Len() the maximum. The array may be partially
// reordered.
//
// Errors: [ErrInvalidRank] when k < 1, [ErrEmptyCollection] when the array
// is empty, [ErrRankOutOfRange] when k > Len().
func (a *Array[T]) SelectRanked(compare func(x, y T) int, k int) (T, error) {
	idx, err := a.SelectRankedIndex(compare, k)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.items[idx], nil
}

// SelectRankedIndex is like [Array.SelectRanked] but returns the index of the
// selected element.
func (a *Array[T]) SelectRankedIndex(compare func(x, y T) int, k int) (int, error) {
	if k < 1 {
		return -1, fmt.Errorf("%w: k=%d", ErrInvalidRank, k)
	}
	idx, err := arr.SelectIndex(a.items[:a.size], compare, k)
	if errors.Is(err, arr.ErrEmptyInput) {
		return -1, fmt.Errorf("%w: %w", ErrEmptyCollection, err)
	}
	return idx, err
}

// Reverse reverses the order of the elements in place.
func (a *Array[T]) Reverse() {
	arr.Reverse(a.items[:a.size])
}

// Shuffle permutes the elements uniformly at random in place.
func (a *Array[T]) Shuffle() {
	arr.Shuffle(a.items[:a.size])
}

// ─────────────────────────────────────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────────────────────────────────────

// String renders the array as "[a, b, c]". It implements [fmt.Stringer].
func (a *Array[T]) String() string {
	return "[" + a.Join(", ") + "]"
}

// Join renders the elements with fmt's %v verb, separated by sep.
func (a *Array[T]) Join(sep string) string {
	var b strings.Builder
	for i := 0; i < a.size; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, a.items[i])
	}
	return b.String()
}

// MarshalJSON encodes the live elements as a JSON array.
func (a *Array[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.items[:a.size])
}
