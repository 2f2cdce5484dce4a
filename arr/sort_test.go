package arr_test

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func assertSorted(t *testing.T, items []int) {
	t.Helper()
	for i := 1; i < len(items); i++ {
		if items[i-1] > items[i] {
			t.Fatalf("not sorted at %d: %d > %d", i, items[i-1], items[i])
		}
	}
}

func randomInts(r *rand.Rand, n, limit int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = r.IntN(limit)
	}
	return out
}

// tagged carries a sort key plus its original position so stability can be
// observed.
type tagged struct {
	key, tag int
}

func byKey(a, b tagged) int { return cmp.Compare(a.key, b.key) }

// ─────────────────────────────────────────────────────────────────────────────
// Sort
// ─────────────────────────────────────────────────────────────────────────────

func TestSortSmall(t *testing.T) {
	items := []int{3, 1, 4, 1, 5, 9, 2, 6}
	arr.Sort(items)
	assertSlice(t, items, []int{1, 1, 2, 3, 4, 5, 6, 9})
}

func TestSortShapes(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	shapes := map[string]func(n int) []int{
		"sorted": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		},
		"reversed": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = n - i
			}
			return out
		},
		"equal": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = 7
			}
			return out
		},
		"random": func(n int) []int { return randomInts(r, n, 1000) },
		"sawtooth": func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i % 37
			}
			return out
		},
	}
	for name, gen := range shapes {
		for _, n := range []int{0, 1, 2, 31, 32, 33, 1000} {
			t.Run(fmt.Sprintf("%s/%d", name, n), func(t *testing.T) {
				items := gen(n)
				want := slices.Clone(items)
				slices.Sort(want)

				arr.SortFunc(items, cmp.Compare[int])
				assertSorted(t, items)
				assertSlice(t, items, want)
			})
		}
	}
}

func TestSortLargeRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for _, n := range []int{64, 257, 5000, 40_000} {
		items := randomInts(r, n, n/3+1)
		want := slices.Clone(items)
		slices.Sort(want)
		arr.Sort(items)
		assertSlice(t, items, want)
	}
}

func TestSortStable(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for _, n := range []int{10, 31, 33, 200, 3000} {
		items := make([]tagged, n)
		for i := range items {
			items[i] = tagged{key: r.IntN(8), tag: i}
		}
		want := slices.Clone(items)
		slices.SortStableFunc(want, byKey)

		arr.SortFunc(items, byKey)
		for i := range items {
			if items[i] != want[i] {
				t.Fatalf("n=%d index %d: got %+v want %+v", n, i, items[i], want[i])
			}
		}
	}
}

func TestSortStableRuns(t *testing.T) {
	// Long descending runs of repeated keys must not be reversed as a whole.
	var items []tagged
	for k := 50; k > 0; k-- {
		for j := 0; j < 5; j++ {
			items = append(items, tagged{key: k, tag: len(items)})
		}
	}
	arr.SortFunc(items, byKey)
	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if prev.key > cur.key || (prev.key == cur.key && prev.tag > cur.tag) {
			t.Fatalf("unstable at %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestSortRange(t *testing.T) {
	items := []int{9, 8, 5, 3, 4, 1, 0}
	if err := arr.SortRange(items, cmp.Compare[int], 2, 5); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, items, []int{9, 8, 3, 4, 5, 1, 0})
}

func TestSortRangeInvalid(t *testing.T) {
	items := []int{1, 2, 3}
	for _, r := range [][2]int{{-1, 2}, {2, 1}, {0, 4}} {
		if err := arr.SortRange(items, cmp.Compare[int], r[0], r[1]); !errors.Is(err, arr.ErrInvalidRange) {
			t.Fatalf("SortRange(%d, %d) err = %v; want ErrInvalidRange", r[0], r[1], err)
		}
	}
}

func TestSorterReuse(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	s := arr.NewSorter[int]()
	for i := 0; i < 5; i++ {
		items := randomInts(r, 2000, 100)
		if err := s.Sort(items, cmp.Compare[int], 0, len(items)); err != nil {
			t.Fatal(err)
		}
		assertSorted(t, items)
	}
}

func TestSortDescendingComparator(t *testing.T) {
	items := []string{"pear", "apple", "fig", "banana"}
	arr.SortFunc(items, func(a, b string) int { return cmp.Compare(b, a) })
	assertSlice(t, items, []string{"pear", "fig", "banana", "apple"})
}

// ─────────────────────────────────────────────────────────────────────────────
// In-place helpers
// ─────────────────────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	arr.Reverse(items)
	assertSlice(t, items, []int{5, 4, 3, 2, 1})

	even := []int{1, 2}
	arr.Reverse(even)
	assertSlice(t, even, []int{2, 1})
}

func TestSwap(t *testing.T) {
	items := []string{"a", "b", "c"}
	arr.Swap(items, 0, 2)
	assertSlice(t, items, []string{"c", "b", "a"})
}

func TestShuffleIsPermutation(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i
	}
	arr.Shuffle(items)
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			t.Fatalf("Shuffle lost or duplicated elements: %v", sorted)
		}
	}
}

func TestRandomBetween(t *testing.T) {
	for i := 0; i < 200; i++ {
		v := arr.RandomBetween(3, -2)
		if v < -2 || v > 3 {
			t.Fatalf("RandomBetween(3, -2) = %d", v)
		}
	}
}
