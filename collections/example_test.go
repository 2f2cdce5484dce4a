package collections_test

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-cdx-utils/collections"
)

func ExampleNewArray() {
	a := collections.NewArray[int]()
	a.AddAll(5, 3, 8, 1)
	a.Sort(cmp.Compare[int])
	fmt.Println(a, a.Len())
	// Output: [1, 3, 5, 8] 4
}

func ExampleNewArrayWithOptions() {
	a, _ := collections.NewArrayWithOptions[string](collections.Options{Ordered: false, Capacity: 4})
	a.AddAll("a", "b", "c", "d")
	_, _ = a.RemoveIndex(1)
	fmt.Println(a)
	// Output: [a, d, c]
}

func ExampleArray_SelectRanked() {
	a := collections.With(9, 1, 8, 2, 7, 3)
	third, _ := a.SelectRanked(cmp.Compare[int], 3)
	fmt.Println(third)
	// Output: 3
}

func ExampleArray_Select() {
	a := collections.With(1, 2, 3, 4, 5, 6)
	it := a.Select(func(n int) bool { return n%2 == 0 })
	for it.HasNext() {
		n, _ := it.Next()
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output: 2 4 6
}

func ExampleArray_Iterator() {
	a := collections.With("keep", "drop", "keep")
	it := a.Iterator()
	for it.HasNext() {
		s, _ := it.Next()
		if s == "drop" {
			_ = it.Remove()
		}
	}
	fmt.Println(a)
	// Output: [keep, keep]
}

func ExampleArray_All() {
	for i, s := range collections.With("x", "y").All() {
		fmt.Println(i, s)
	}
	// Output:
	// 0 x
	// 1 y
}

func ExampleMap() {
	lengths := collections.Map(collections.With("go", "rust", "c"), func(s string, _ int) int { return len(s) })
	collections.Sort(lengths)
	fmt.Println(lengths)
	// Output: [1, 2, 4]
}
