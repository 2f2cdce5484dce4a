package arr_test

import (
	"cmp"
	"fmt"

	"github.com/hasbyte1/go-cdx-utils/arr"
)

func ExampleSort() {
	items := []int{5, 3, 1, 4, 2}
	arr.Sort(items)
	fmt.Println(items)
	// Output: [1 2 3 4 5]
}

func ExampleSortFunc() {
	type player struct {
		name  string
		score int
	}
	players := []player{{"ann", 3}, {"bob", 1}, {"cid", 3}, {"dee", 2}}
	arr.SortFunc(players, func(a, b player) int { return cmp.Compare(b.score, a.score) })
	for _, p := range players {
		fmt.Println(p.name, p.score)
	}
	// Output:
	// ann 3
	// cid 3
	// dee 2
	// bob 1
}

func ExampleSelect() {
	items := []int{9, 1, 8, 2, 7, 3}
	second, _ := arr.Select(items, cmp.Compare[int], 2)
	fmt.Println(second)
	// Output: 2
}

func ExampleReverse() {
	items := []string{"a", "b", "c"}
	arr.Reverse(items)
	fmt.Println(items)
	// Output: [c b a]
}
