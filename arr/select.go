package arr

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Order statistics
// ─────────────────────────────────────────────────────────────────────────────

// Select returns the k-th lowest element of items according to compare.
// See [SelectIndex] for the meaning of k and the errors returned.
func Select[T any](items []T, compare func(a, b T) int, k int) (T, error) {
	idx, err := SelectIndex(items, compare, k)
	if err != nil {
		var zero T
		return zero, err
	}
	return items[idx], nil
}

// SelectIndex returns the index of the k-th lowest element of items
// according to compare. k is an ordinal rank: 1 selects the minimum and
// len(items) the maximum.
//
// The two extreme ranks are answered with a single linear scan; interior
// ranks use [QuickSelect], which partially reorders items.
//
// Errors: [ErrInvalidRank] when k < 1, [ErrEmptyInput] when items is empty,
// [ErrRankOutOfRange] when k > len(items).
func SelectIndex[T any](items []T, compare func(a, b T) int, k int) (int, error) {
	size := len(items)
	switch {
	case k < 1:
		return -1, fmt.Errorf("%w: k=%d", ErrInvalidRank, k)
	case size < 1:
		return -1, ErrEmptyInput
	case k > size:
		return -1, fmt.Errorf("%w: k=%d, size=%d", ErrRankOutOfRange, k, size)
	}

	switch k {
	case 1:
		return minIndex(items, compare), nil
	case size:
		return maxIndex(items, compare), nil
	default:
		return QuickSelect(items, compare, k), nil
	}
}

// minIndex returns the index of the first minimal element.
func minIndex[T any](items []T, compare func(a, b T) int) int {
	lowest := 0
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[lowest]) < 0 {
			lowest = i
		}
	}
	return lowest
}

// maxIndex returns the index of the first maximal element.
func maxIndex[T any](items []T, compare func(a, b T) int) int {
	highest := 0
	for i := 1; i < len(items); i++ {
		if compare(items[i], items[highest]) > 0 {
			highest = i
		}
	}
	return highest
}
