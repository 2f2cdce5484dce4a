// Package arr provides standalone, framework-agnostic algorithms that work
// directly on Go slices: a stable adaptive merge sort, order-statistic
// selection, and in-place reordering helpers.
//
// # Sorting
//
// [Sort] and [SortFunc] implement a run-based stable merge sort. Natural runs
// (ascending, or strictly descending and then reversed) are detected and
// extended to a minimum length with binary insertion sort, then merged with
// galloping. Sorted or nearly sorted input is handled in linear time:
//
//	arr.Sort(ids)
//	arr.SortFunc(users, func(a, b User) int { return cmp.Compare(a.Age, b.Age) })
//
// Package-level functions allocate scratch space per call. Use a [Sorter] to
// reuse it; a Sorter must not be shared between goroutines.
//
// # Selection
//
// [SelectIndex] and [Select] find the k-th lowest element (k is 1-based). The
// minimum and maximum are found with one linear scan; interior ranks use
// [QuickSelect] with a median-of-three pivot:
//
//	median, err := arr.Select(scores, cmp.Compare[int], (len(scores)+1)/2)
//
// Selection reorders the input slice. Copy it first if the order matters.
//
// # Randomisation
//
// [Shuffle] performs an in-place Fisher–Yates shuffle. [RandomIndex] and
// [RandomBetween] draw from the process-wide math/rand/v2 generator.
package arr
