package collections_test

import (
	"testing"

	"github.com/hasbyte1/go-cdx-utils/collections"
)

func isEven(n int) bool { return n%2 == 0 }

func TestPredicateIteratorFilters(t *testing.T) {
	a := ints(1, 2, 3, 4, 5, 6)
	assertSlice(t, drain[int](t, a.Select(isEven)), []int{2, 4, 6})
}

func TestPredicateIteratorNextWithoutHasNext(t *testing.T) {
	it := collections.NewPredicateIterator[int](collections.NewArrayIterator(ints(1, 3, 4, 5, 8), false), isEven)
	var got []int
	for i := 0; i < 2; i++ {
		v, err := it.Next()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	assertSlice(t, got, []int{4, 8})

	v, err := it.Next()
	if err != nil || v != 0 {
		t.Fatalf("Next at exhaustion = %d, %v; want zero value, nil", v, err)
	}
	if it.HasNext() {
		t.Fatal("exhausted iterator reported HasNext")
	}
}

func TestPredicateIteratorHasNextIdempotent(t *testing.T) {
	it := ints(1, 2, 3).Select(isEven)
	if !it.HasNext() || !it.HasNext() {
		t.Fatal("HasNext should stay true until Next")
	}
	if v, _ := it.Next(); v != 2 {
		t.Fatalf("Next = %d; want 2", v)
	}
	if it.HasNext() {
		t.Fatal("no further even numbers")
	}
}

func TestPredicateIteratorRemove(t *testing.T) {
	a := ints(1, 2, 3, 4, 5, 6)
	it := a.Select(isEven)
	for {
		v, _ := it.Next()
		if v == 4 {
			if err := it.Remove(); err != nil {
				t.Fatal(err)
			}
			break
		}
	}
	assertSlice(t, a.ToSlice(), []int{1, 2, 3, 5, 6})

	// The traversal continues after the removed element.
	v, _ := it.Next()
	if v != 6 {
		t.Fatalf("Next after Remove = %d; want 6", v)
	}
}

func TestPredicateIteratorRemoveTwice(t *testing.T) {
	a := ints(1, 2, 3, 4)
	it := a.Select(isEven)
	_, _ = it.Next()
	if err := it.Remove(); err != nil {
		t.Fatal(err)
	}
	assertErr(t, it.Remove(), collections.ErrIllegalState)
	assertSlice(t, a.ToSlice(), []int{1, 3, 4})
}

func TestPredicateIteratorRemoveBetweenHasNextAndNext(t *testing.T) {
	a := ints(2, 4)
	it := a.Select(isEven)
	_, _ = it.Next()
	if !it.HasNext() {
		t.Fatal("expected another element")
	}
	assertErr(t, it.Remove(), collections.ErrIllegalState)
	assertSlice(t, a.ToSlice(), []int{2, 4})
}

func TestPredicateIteratorRemoveAfterExhaustion(t *testing.T) {
	a := ints(2)
	it := a.Select(isEven)
	_, _ = it.Next()
	if it.HasNext() {
		t.Fatal("expected exhaustion")
	}
	assertErr(t, it.Remove(), collections.ErrIllegalState)
}

func TestPredicateIteratorRemoveNotAllowed(t *testing.T) {
	a := ints(2, 3)
	it := collections.NewPredicateIterator[int](collections.NewArrayIterator(a, false), isEven)
	_, _ = it.Next()
	assertErr(t, it.Remove(), collections.ErrRemoveNotAllowed)
}

func TestPredicateIteratorReset(t *testing.T) {
	a := ints(1, 2, 3)
	it := a.Select(isEven)
	_ = drain[int](t, it)
	it.Reset(collections.NewArrayIterator(a, false), func(n int) bool { return n != 2 })
	assertSlice(t, drain[int](t, it), []int{1, 3})
}

func TestPredicateIteratorSurfacesNestedMisuse(t *testing.T) {
	a := ints(2, 4, 6)
	it := a.Select(isEven)
	_, _ = it.Next()
	_ = a.Iterator() // invalidates the pooled iterator under it

	if it.HasNext() {
		t.Fatal("filter over an invalidated iterator should stop")
	}
	assertErr(t, it.Err(), collections.ErrNestedIteration)
}
