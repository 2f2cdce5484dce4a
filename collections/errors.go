package collections

import (
	"errors"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

// Sentinel errors returned by Array and iterator operations.
//
// All of them report a broken calling contract rather than a transient
// condition, and none leaves the container partially modified.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the array is empty.
	ErrEmptyCollection = errors.New("collections: operation on empty collection")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1]
	// (or [0, Len()] for Insert).
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrInvalidCapacity is returned when a negative capacity is requested.
	ErrInvalidCapacity = errors.New("collections: capacity must not be negative")

	// ErrInvalidRank is returned by SelectRanked / SelectRankedIndex when
	// k < 1. It is the same value as [arr.ErrInvalidRank].
	ErrInvalidRank = arr.ErrInvalidRank

	// ErrRankOutOfRange is returned when k > Len(). It is the same value as
	// [arr.ErrRankOutOfRange].
	ErrRankOutOfRange = arr.ErrRankOutOfRange

	// ErrRemoveNotAllowed is returned by an iterator's Remove when it was
	// created without removal permission.
	ErrRemoveNotAllowed = errors.New("collections: remove not allowed")

	// ErrIllegalState is returned when Remove is called at a point where
	// there is no element to remove, e.g. between HasNext and Next on a
	// [PredicateIterator] or before the first Next.
	ErrIllegalState = errors.New("collections: illegal iterator state")

	// ErrNestedIteration is returned by an iterator obtained from
	// [Array.Iterator] after a newer call to Iterator on the same array has
	// invalidated it.
	ErrNestedIteration = errors.New("collections: Array.Iterator cannot be used nested")
)
