package arr

import "math/rand/v2"

// ─────────────────────────────────────────────────────────────────────────────
// In-place reordering
// ─────────────────────────────────────────────────────────────────────────────

// Swap exchanges items[i] and items[j].
func Swap[T any](items []T, i, j int) {
	items[i], items[j] = items[j], items[i]
}

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}

// Shuffle permutes items in place with a Fisher–Yates pass driven by the
// shared random source. Every permutation is equally likely.
func Shuffle[T any](items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := RandomIndex(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Shared random source
// ─────────────────────────────────────────────────────────────────────────────

// RandomIndex returns a uniformly distributed int in [0, n).
// It panics if n <= 0.
//
// The generator is the process-wide math/rand/v2 source, which is safe for
// concurrent use.
func RandomIndex(n int) int {
	return rand.IntN(n)
}

// RandomBetween returns a uniformly distributed int in [start, end].
// The bounds may be given in either order.
func RandomBetween(start, end int) int {
	if end < start {
		start, end = end, start
	}
	return start + rand.IntN(end-start+1)
}
