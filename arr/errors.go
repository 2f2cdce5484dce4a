package arr

import "errors"

// Sentinel errors returned by the selection and sorting helpers.
//
// Use [errors.Is] for comparisons:
//
//	idx, err := arr.SelectIndex(items, cmp.Compare[int], k)
//	if errors.Is(err, arr.ErrRankOutOfRange) {
//	    // k was larger than len(items)
//	}
var (
	// ErrInvalidRank is returned when a rank below 1 is requested.
	// Ranks are ordinal: 1 is the minimum, len(items) the maximum.
	ErrInvalidRank = errors.New("arr: rank must be greater than 0 (1 = lowest)")

	// ErrEmptyInput is returned when selecting from an empty slice.
	ErrEmptyInput = errors.New("arr: cannot select from an empty slice")

	// ErrRankOutOfRange is returned when the requested rank exceeds the number
	// of elements.
	ErrRankOutOfRange = errors.New("arr: rank is larger than size")

	// ErrInvalidRange is returned when a [from, to) range does not fit the
	// slice or from > to.
	ErrInvalidRange = errors.New("arr: invalid index range")

	// ErrComparatorContract is the value carried by the panic raised when a
	// comparator is found to violate its total-order contract while merging.
	ErrComparatorContract = errors.New("arr: comparison method violates its general contract")
)
