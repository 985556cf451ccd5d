package hush

// Placeholder is written in place of the plaintext on every redacted path.
const Placeholder = "<hidden>"

// Secret holds a sensitive value of type T.
//
// Formatting a Secret, logging it, or encoding it with any of the supported
// codecs yields Placeholder instead of the plaintext. Comparison and hashing
// pass through to T, so a Secret of a comparable type works as a map key and
// == behaves exactly as it does on the plaintext.
//
// The zero Secret wraps the zero value of T. Assigning a Secret copies the
// plaintext the same way assigning T would.
type Secret[T any] struct {
	v T
}

// From wraps v.
func From[T any](v T) Secret[T] {
	return Secret[T]{v: v}
}

// Inner returns the plaintext.
func (s Secret[T]) Inner() T {
	return s.v
}

// Ref returns a pointer to the plaintext held by s.
//
// The pointer is the one sanctioned leak surface: anything holding it can
// read, print, or copy the plaintext without redaction. It is provided so
// callers can read fields of T or update the value in place without
// unwrapping and rewrapping. Do not retain it beyond the lifetime of s.
func (s *Secret[T]) Ref() *T {
	return &s.v
}
