package hush

import (
	"fmt"
	"io"
	"log/slog"
)

var (
	_ fmt.Stringer   = Secret[int]{}
	_ fmt.GoStringer = Secret[int]{}
	_ fmt.Formatter  = Secret[int]{}
	_ slog.LogValuer = Secret[int]{}
)

// String returns Placeholder.
func (Secret[T]) String() string {
	return Placeholder
}

// GoString returns Placeholder, so %#v does not reveal the plaintext.
func (Secret[T]) GoString() string {
	return Placeholder
}

// Format writes Placeholder for every verb and flag combination.
func (Secret[T]) Format(f fmt.State, _ rune) {
	_, _ = io.WriteString(f, Placeholder)
}

// LogValue implements slog.LogValuer.
func (Secret[T]) LogValue() slog.Value {
	return slog.StringValue(Placeholder)
}
