package arr

// QuickSelect partially reorders items so that the k-th lowest element
// (1-based) ends up at the returned index, with every element before it
// comparing less than or equal and every element after it greater than or
// equal.
//
// The caller must guarantee 1 <= k <= len(items); use [SelectIndex] for a
// checked entry point. Expected time is O(n), worst case O(n²).
func QuickSelect[T any](items []T, compare func(a, b T) int, k int) int {
	left, right := 0, len(items)-1
	for left != right {
		pivot := partition(items, compare, left, right, medianOfThree(items, compare, left, right))
		rank := pivot - left + 1
		switch {
		case rank == k:
			return pivot
		case k < rank:
			right = pivot - 1
		default:
			left = pivot + 1
			k -= rank
		}
	}
	return left
}

// partition moves the pivot to the right end, sweeps every element that
// compares less than it to the left of a growing boundary, then places the
// pivot at the boundary and returns its index.
func partition[T any](items []T, compare func(a, b T) int, left, right, pivot int) int {
	pivotValue := items[pivot]
	items[right], items[pivot] = items[pivot], items[right]
	store := left
	for i := left; i < right; i++ {
		if compare(items[i], pivotValue) < 0 {
			items[store], items[i] = items[i], items[store]
			store++
		}
	}
	items[right], items[store] = items[store], items[right]
	return store
}

// medianOfThree returns whichever of left, middle and right holds the median
// value, using at most three comparisons.
func medianOfThree[T any](items []T, compare func(a, b T) int, left, right int) int {
	mid := int(uint(left+right) >> 1)
	l, m, r := items[left], items[mid], items[right]

	if compare(l, m) > 0 {
		switch {
		case compare(m, r) > 0:
			return mid
		case compare(l, r) > 0:
			return right
		default:
			return left
		}
	}
	switch {
	case compare(l, r) > 0:
		return left
	case compare(m, r) > 0:
		return right
	default:
		return mid
	}
}
