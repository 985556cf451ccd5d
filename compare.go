package hush

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether a and b hold equal plaintexts.
// It is equivalent to a == b.
func Equal[T comparable](a, b Secret[T]) bool {
	return a.v == b.v
}

// EqualFunc reports whether a and b hold equal plaintexts under eq.
// Use it for types without ==, such as []byte.
func EqualFunc[T any](a, b Secret[T], eq func(T, T) bool) bool {
	return eq(a.v, b.v)
}

// Compare orders a and b by their plaintexts, as cmp.Compare does.
func Compare[T cmp.Ordered](a, b Secret[T]) int {
	return cmp.Compare(a.v, b.v)
}

// Less reports whether the plaintext of a sorts before the plaintext of b.
func Less[T cmp.Ordered](a, b Secret[T]) bool {
	return cmp.Less(a.v, b.v)
}

// CompareFunc orders a and b by their plaintexts under cmp.
// Suitable for slices.SortFunc.
func CompareFunc[T any](a, b Secret[T], cmp func(T, T) int) int {
	return cmp(a.v, b.v)
}

// Hash returns the hash of the plaintext of s under seed.
// Secrets that are Equal hash equally, and Hash(seed, From(v)) equals
// maphash.Comparable(seed, v).
func Hash[T comparable](seed maphash.Seed, s Secret[T]) uint64 {
	return maphash.Comparable(seed, s.v)
}
