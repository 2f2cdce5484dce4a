package arr

import (
	"cmp"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

const (
	// Slices shorter than this are sorted with a single binary insertion
	// sort; longer ones are split into runs of at least minRunLength(n).
	minMerge = 32

	// Initial threshold for entering galloping mode while merging.
	minGallop = 7

	initialTmpLength = 256
)

// ─────────────────────────────────────────────────────────────────────────────
// Package-level entry points
// ─────────────────────────────────────────────────────────────────────────────

// Sort sorts items in ascending natural order. The sort is stable.
func Sort[T constraints.Ordered](items []T) {
	SortFunc(items, cmp.Compare[T])
}

// SortFunc sorts items using compare, which must return a negative number
// when a < b, zero when a == b and a positive number when a > b.
//
// The sort is stable: elements that compare equal keep their original
// relative order. Already sorted and reverse-sorted input is handled in
// linear time; the worst case is O(n log n).
//
// SortFunc allocates its own scratch space on every call and is therefore
// safe to call from multiple goroutines on distinct slices. Use a [Sorter]
// to reuse scratch space across calls.
func SortFunc[T any](items []T, compare func(a, b T) int) {
	var s Sorter[T]
	s.sort(items, compare, 0, len(items))
}

// SortRange sorts items[from:to] using compare, leaving the rest of the
// slice untouched. Returns [ErrInvalidRange] when the range does not fit.
func SortRange[T any](items []T, compare func(a, b T) int, from, to int) error {
	if err := checkRange(len(items), from, to); err != nil {
		return err
	}
	var s Sorter[T]
	s.sort(items, compare, from, to)
	return nil
}

func checkRange(n, from, to int) error {
	if from < 0 || to > n || from > to {
		return fmt.Errorf("%w: [%d, %d) with length %d", ErrInvalidRange, from, to, n)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorter
// ─────────────────────────────────────────────────────────────────────────────

// Sorter is a reusable stable sorter that keeps its merge buffer between
// calls. The zero value is ready to use.
//
// A Sorter is not safe for concurrent use by multiple goroutines; give each
// goroutine its own instance. The buffer is cleared after every sort so no
// element references are retained.
type Sorter[T any] struct {
	tmp []T
}

// NewSorter returns an empty [Sorter].
func NewSorter[T any]() *Sorter[T] {
	return &Sorter[T]{}
}

// Sort stably sorts items[from:to] using compare.
// Returns [ErrInvalidRange] when the range does not fit.
func (s *Sorter[T]) Sort(items []T, compare func(a, b T) int, from, to int) error {
	if err := checkRange(len(items), from, to); err != nil {
		return err
	}
	s.sort(items, compare, from, to)
	return nil
}

func (s *Sorter[T]) sort(a []T, compare func(a, b T) int, lo, hi int) {
	n := hi - lo
	if n < 2 {
		return
	}

	// Small slices: one run extended by binary insertion, no merging.
	if n < minMerge {
		initRunLen := countRunAndMakeAscending(a, compare, lo, hi)
		binarySort(a, compare, lo, hi, lo+initRunLen)
		return
	}

	ts := &timSort[T]{
		a:         a,
		compare:   compare,
		minGallop: minGallop,
		tmp:       s.tmp,
	}
	defer func() {
		clear(ts.tmp)
		s.tmp = ts.tmp
	}()

	minRun := minRunLength(n)
	for n > 0 {
		runLen := countRunAndMakeAscending(a, compare, lo, hi)

		if runLen < minRun {
			force := min(n, minRun)
			binarySort(a, compare, lo, lo+force, lo+runLen)
			runLen = force
		}

		ts.runs = append(ts.runs, run{base: lo, len: runLen})
		ts.mergeCollapse()

		lo += runLen
		n -= runLen
	}
	ts.mergeForceCollapse()
}

// ─────────────────────────────────────────────────────────────────────────────
// Run detection and insertion sort
// ─────────────────────────────────────────────────────────────────────────────

// binarySort sorts a[lo:hi] given that a[lo:start] is already sorted, by
// inserting each remaining element at the position found with binary
// search. Equal elements are inserted after existing ones, which keeps the
// sort stable.
func binarySort[T any](a []T, compare func(a, b T) int, lo, hi, start int) {
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := a[start]

		left, right := lo, start
		for left < right {
			mid := int(uint(left+right) >> 1)
			if compare(pivot, a[mid]) < 0 {
				right = mid
			} else {
				left = mid + 1
			}
		}

		copy(a[left+1:start+1], a[left:start])
		a[left] = pivot
	}
}

// countRunAndMakeAscending returns the length of the run beginning at lo and
// reverses it in place when it is strictly descending. A run is either
// non-descending (a0 <= a1 <= ...) or strictly descending (a0 > a1 > ...);
// the strictness keeps reversal stable.
func countRunAndMakeAscending[T any](a []T, compare func(a, b T) int, lo, hi int) int {
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if compare(a[runHi], a[lo]) < 0 {
		runHi++
		for runHi < hi && compare(a[runHi], a[runHi-1]) < 0 {
			runHi++
		}
		Reverse(a[lo:runHi])
	} else {
		runHi++
		for runHi < hi && compare(a[runHi], a[runHi-1]) >= 0 {
			runHi++
		}
	}
	return runHi - lo
}

// minRunLength returns k with minMerge/2 <= k <= minMerge such that n/k is
// close to, but no more than, a power of two.
func minRunLength(n int) int {
	r := 0
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

// ─────────────────────────────────────────────────────────────────────────────
// Merging
// ─────────────────────────────────────────────────────────────────────────────

type run struct {
	base, len int
}

type timSort[T any] struct {
	a         []T
	compare   func(a, b T) int
	minGallop int
	tmp       []T
	runs      []run
}

// mergeCollapse merges runs until the stack satisfies, for the top runs
// X, Y, Z (Z on top):
//
//	len(X) > len(Y) + len(Z)
//	len(Y) > len(Z)
//
// The check looks one level deeper than the classical formulation so the
// invariant also holds for the runs below the top three.
func (ts *timSort[T]) mergeCollapse() {
	for len(ts.runs) > 1 {
		r := ts.runs
		n := len(r) - 2
		if (n > 0 && r[n-1].len <= r[n].len+r[n+1].len) ||
			(n > 1 && r[n-2].len <= r[n].len+r[n-1].len) {
			if r[n-1].len < r[n+1].len {
				n--
			}
		} else if r[n].len > r[n+1].len {
			break
		}
		ts.mergeAt(n)
	}
}

// mergeForceCollapse merges every pending run into one.
func (ts *timSort[T]) mergeForceCollapse() {
	for len(ts.runs) > 1 {
		n := len(ts.runs) - 2
		if n > 0 && ts.runs[n-1].len < ts.runs[n+1].len {
			n--
		}
		ts.mergeAt(n)
	}
}

// mergeAt merges runs i and i+1, which must be adjacent and the second or
// third from the top of the stack.
func (ts *timSort[T]) mergeAt(i int) {
	a := ts.a
	base1, len1 := ts.runs[i].base, ts.runs[i].len
	base2, len2 := ts.runs[i+1].base, ts.runs[i+1].len

	ts.runs[i].len = len1 + len2
	if i == len(ts.runs)-3 {
		ts.runs[i+1] = ts.runs[i+2]
	}
	ts.runs = ts.runs[:len(ts.runs)-1]

	// Elements of run1 already in place before the first element of run2.
	k := gallopRight(a[base2], a, ts.compare, base1, len1, 0)
	base1 += k
	len1 -= k
	if len1 == 0 {
		return
	}

	// Elements of run2 already in place after the last element of run1.
	len2 = gallopLeft(a[base1+len1-1], a, ts.compare, base2, len2, len2-1)
	if len2 == 0 {
		return
	}

	if len1 <= len2 {
		ts.mergeLo(base1, len1, base2, len2)
	} else {
		ts.mergeHi(base1, len1, base2, len2)
	}
}

// gallopLeft returns the position in a[base:base+length] at which key
// should be inserted, to the left of any equal elements. hint is the
// starting probe, 0 <= hint < length.
func gallopLeft[T any](key T, a []T, compare func(a, b T) int, base, length, hint int) int {
	lastOfs, ofs := 0, 1
	if compare(key, a[base+hint]) > 0 {
		// a[base+hint+lastOfs] < key <= a[base+hint+ofs]
		maxOfs := length - hint
		for ofs < maxOfs && compare(key, a[base+hint+ofs]) > 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	} else {
		// a[base+hint-ofs] < key <= a[base+hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && compare(key, a[base+hint-ofs]) <= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + ((ofs - lastOfs) >> 1)
		if compare(key, a[base+m]) > 0 {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft except that it returns the position to the
// right of any elements equal to key.
func gallopRight[T any](key T, a []T, compare func(a, b T) int, base, length, hint int) int {
	lastOfs, ofs := 0, 1
	if compare(key, a[base+hint]) < 0 {
		// a[base+hint-ofs] <= key < a[base+hint-lastOfs]
		maxOfs := hint + 1
		for ofs < maxOfs && compare(key, a[base+hint-ofs]) < 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// a[base+hint+lastOfs] <= key < a[base+hint+ofs]
		maxOfs := length - hint
		for ofs < maxOfs && compare(key, a[base+hint+ofs]) >= 0 {
			lastOfs = ofs
			ofs = (ofs << 1) + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	}

	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + ((ofs - lastOfs) >> 1)
		if compare(key, a[base+m]) < 0 {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}

// mergeLo merges two adjacent runs in place, copying the shorter first run
// into the scratch buffer. Requires len1 <= len2, a[base1] > a[base2] and
// a[base1+len1-1] > every element of run2.
func (ts *timSort[T]) mergeLo(base1, len1, base2, len2 int) {
	a, compare := ts.a, ts.compare
	tmp := ts.ensureCapacity(len1)
	copy(tmp[:len1], a[base1:base1+len1])

	cursor1, cursor2, dest := 0, base2, base1

	a[dest] = a[cursor2]
	dest++
	cursor2++
	if len2--; len2 == 0 {
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
		return
	}
	if len1 == 1 {
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
		return
	}

	gallop := ts.minGallop
outer:
	for {
		count1, count2 := 0, 0

		// One element at a time until one run starts winning consistently.
		for {
			if compare(a[cursor2], tmp[cursor1]) < 0 {
				a[dest] = a[cursor2]
				dest++
				cursor2++
				count2++
				count1 = 0
				if len2--; len2 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor1]
				dest++
				cursor1++
				count1++
				count2 = 0
				if len1--; len1 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= gallop {
				break
			}
		}

		// Galloping until neither run is winning consistently.
		for {
			count1 = gallopRight(a[cursor2], tmp, compare, cursor1, len1, 0)
			if count1 != 0 {
				copy(a[dest:dest+count1], tmp[cursor1:cursor1+count1])
				dest += count1
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor2]
			dest++
			cursor2++
			if len2--; len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], a, compare, cursor2, len2, 0)
			if count2 != 0 {
				copy(a[dest:dest+count2], a[cursor2:cursor2+count2])
				dest += count2
				cursor2 += count2
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor1]
			dest++
			cursor1++
			if len1--; len1 == 1 {
				break outer
			}

			gallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if gallop < 0 {
			gallop = 0
		}
		gallop += 2
	}
	ts.minGallop = max(gallop, 1)

	switch {
	case len1 == 1:
		copy(a[dest:dest+len2], a[cursor2:cursor2+len2])
		a[dest+len2] = tmp[cursor1]
	case len1 == 0:
		panic(ErrComparatorContract)
	default:
		copy(a[dest:dest+len1], tmp[cursor1:cursor1+len1])
	}
}

// mergeHi is the mirror of mergeLo: it copies the shorter second run into
// the scratch buffer and merges from the right. Requires len1 >= len2.
func (ts *timSort[T]) mergeHi(base1, len1, base2, len2 int) {
	a, compare := ts.a, ts.compare
	tmp := ts.ensureCapacity(len2)
	copy(tmp[:len2], a[base2:base2+len2])

	cursor1 := base1 + len1 - 1
	cursor2 := len2 - 1
	dest := base2 + len2 - 1

	a[dest] = a[cursor1]
	dest--
	cursor1--
	if len1--; len1 == 0 {
		copy(a[dest-(len2-1):dest+1], tmp[:len2])
		return
	}
	if len2 == 1 {
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
		return
	}

	gallop := ts.minGallop
outer:
	for {
		count1, count2 := 0, 0

		for {
			if compare(tmp[cursor2], a[cursor1]) < 0 {
				a[dest] = a[cursor1]
				dest--
				cursor1--
				count1++
				count2 = 0
				if len1--; len1 == 0 {
					break outer
				}
			} else {
				a[dest] = tmp[cursor2]
				dest--
				cursor2--
				count2++
				count1 = 0
				if len2--; len2 == 1 {
					break outer
				}
			}
			if (count1 | count2) >= gallop {
				break
			}
		}

		for {
			count1 = len1 - gallopRight(tmp[cursor2], a, compare, base1, len1, len1-1)
			if count1 != 0 {
				dest -= count1
				cursor1 -= count1
				len1 -= count1
				copy(a[dest+1:dest+1+count1], a[cursor1+1:cursor1+1+count1])
				if len1 == 0 {
					break outer
				}
			}
			a[dest] = tmp[cursor2]
			dest--
			cursor2--
			if len2--; len2 == 1 {
				break outer
			}

			count2 = len2 - gallopLeft(a[cursor1], tmp, compare, 0, len2, len2-1)
			if count2 != 0 {
				dest -= count2
				cursor2 -= count2
				len2 -= count2
				copy(a[dest+1:dest+1+count2], tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 {
					break outer
				}
			}
			a[dest] = a[cursor1]
			dest--
			cursor1--
			if len1--; len1 == 0 {
				break outer
			}

			gallop--
			if count1 < minGallop && count2 < minGallop {
				break
			}
		}
		if gallop < 0 {
			gallop = 0
		}
		gallop += 2
	}
	ts.minGallop = max(gallop, 1)

	switch {
	case len2 == 1:
		dest -= len1
		cursor1 -= len1
		copy(a[dest+1:dest+1+len1], a[cursor1+1:cursor1+1+len1])
		a[dest] = tmp[cursor2]
	case len2 == 0:
		panic(ErrComparatorContract)
	default:
		copy(a[dest-(len2-1):dest+1], tmp[:len2])
	}
}

// ensureCapacity grows the scratch buffer to hold at least minCapacity
// elements, rounding up to a power of two but never beyond half the slice.
func (ts *timSort[T]) ensureCapacity(minCapacity int) []T {
	if len(ts.tmp) < minCapacity {
		newSize := 1 << bits.Len(uint(minCapacity))
		newSize = max(min(newSize, len(ts.a)>>1), minCapacity, min(initialTmpLength, len(ts.a)>>1))
		ts.tmp = make([]T, newSize)
	}
	return ts.tmp
}
