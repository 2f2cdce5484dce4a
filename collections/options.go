package collections

// Options configures a new [Array].
type Options struct {
	// Ordered selects the removal discipline. When true, removals and
	// inserts shift elements and preserve order. When false, a removed slot
	// is filled with the last element and an insert moves the displaced
	// element to the end, both in O(1).
	Ordered bool

	// Capacity is the initial size of the backing buffer. Elements added
	// beyond it cause the buffer to grow. Must not be negative.
	Capacity int
}

// DefaultOptions returns the options used by [NewArray]: ordered, with a
// capacity of 16.
func DefaultOptions() Options {
	return Options{
		Ordered:  true,
		Capacity: 16,
	}
}
