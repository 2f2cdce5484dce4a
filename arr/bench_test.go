package arr_test

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

func benchInts(n int) []int {
	r := rand.New(rand.NewPCG(21, 22))
	return randomInts(r, n, n)
}

func BenchmarkSortRandom(b *testing.B) {
	src := benchInts(10_000)
	work := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		arr.Sort(work)
	}
}

func BenchmarkSortPresorted(b *testing.B) {
	src := benchInts(10_000)
	slices.Sort(src)
	work := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		arr.Sort(work)
	}
}

func BenchmarkSorterReuse(b *testing.B) {
	src := benchInts(10_000)
	work := make([]int, len(src))
	s := arr.NewSorter[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_ = s.Sort(work, cmp.Compare[int], 0, len(work))
	}
}

func BenchmarkSelectMedian(b *testing.B) {
	src := benchInts(10_000)
	work := make([]int, len(src))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, src)
		_, _ = arr.SelectIndex(work, cmp.Compare[int], len(work)/2)
	}
}

func BenchmarkSelectMin(b *testing.B) {
	src := benchInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arr.SelectIndex(src, cmp.Compare[int], 1)
	}
}
