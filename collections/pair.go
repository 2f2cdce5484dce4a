package collections

import "fmt"

// Pair is one element of the array built by [Zip]: the values found at the
// same index in both inputs.
type Pair[A, B any] struct {
	First  A
	Second B
}

// String formats the pair like a tuple, e.g. "(1, a)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
