package collections

import "fmt"

type filterState uint8

const (
	notPeeked filterState = iota
	peeked
	exhausted
)

// PredicateIterator lazily yields the elements of a source [Iterator] that
// satisfy a predicate.
//
// HasNext looks ahead in the source and caches the next match; Next consumes
// it. Remove deletes the last element returned by Next from the source and
// is rejected between a HasNext and its paired Next, because by then the
// source has already moved past that element.
//
// A PredicateIterator is not safe for concurrent use.
type PredicateIterator[T any] struct {
	source    Iterator[T]
	predicate func(T) bool
	state     filterState
	next      T
	err       error
}

// NewPredicateIterator returns an iterator over the elements of source for
// which predicate returns true.
func NewPredicateIterator[T any](source Iterator[T], predicate func(T) bool) *PredicateIterator[T] {
	p := &PredicateIterator[T]{}
	p.Reset(source, predicate)
	return p
}

// Reset rebinds the iterator to a new source and predicate, discarding any
// cached lookahead.
func (p *PredicateIterator[T]) Reset(source Iterator[T], predicate func(T) bool) {
	var zero T
	p.source = source
	p.predicate = predicate
	p.state = notPeeked
	p.next = zero
	p.err = nil
}

// HasNext reports whether another matching element remains, advancing the
// source as far as the next match.
func (p *PredicateIterator[T]) HasNext() bool {
	switch p.state {
	case exhausted:
		return false
	case peeked:
		return true
	}
	for p.source.HasNext() {
		v, err := p.source.Next()
		if err != nil {
			p.err = err
			break
		}
		if p.predicate(v) {
			p.next = v
			p.state = peeked
			return true
		}
	}
	if p.err == nil {
		if es, ok := p.source.(interface{ Err() error }); ok {
			p.err = es.Err()
		}
	}
	p.state = exhausted
	return false
}

// Next returns the next matching element. Once the source is exhausted it
// returns the zero value of T and a nil error; check HasNext to tell the two
// apart. A non-nil error is only returned when the source failed.
func (p *PredicateIterator[T]) Next() (T, error) {
	var zero T
	if p.state != peeked && !p.HasNext() {
		return zero, p.err
	}
	v := p.next
	p.next = zero
	p.state = notPeeked
	return v, nil
}

// Remove removes the element most recently returned by Next from the
// source. Returns [ErrIllegalState] when called after HasNext and before the
// matching Next.
func (p *PredicateIterator[T]) Remove() error {
	if p.state != notPeeked {
		return fmt.Errorf("%w: cannot remove between HasNext and Next", ErrIllegalState)
	}
	return p.source.Remove()
}

// Err returns the error reported by the source, if any.
func (p *PredicateIterator[T]) Err() error {
	return p.err
}

// Select returns a filtering iterator over the elements of a that satisfy
// predicate. Remove is supported, but not between HasNext and Next.
//
// The underlying traversal uses the pooled [Array.Iterator], so the same
// nesting restriction applies.
func (a *Array[T]) Select(predicate func(T) bool) *PredicateIterator[T] {
	return NewPredicateIterator[T](a.Iterator(), predicate)
}
