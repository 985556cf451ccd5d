package hush

// Disclosed is a Secret whose codec encodings carry the plaintext.
//
// Encoding a Disclosed[T] with any supported codec produces output identical
// to encoding the plaintext T directly. Decoding is transparent, exactly as
// for Secret. Formatting and logging still yield Placeholder.
//
// Declare a struct field as Disclosed[T] when that field must reach its
// legitimate destination, for example a credential in an outbound request
// body. Every other Secret in the same struct stays redacted.
type Disclosed[T any] struct {
	Secret[T]
}

// Disclose marks s for disclosure on encode.
//
//	body, err := json.Marshal(hush.Disclose(token))
func Disclose[T any](s Secret[T]) Disclosed[T] {
	return Disclosed[T]{Secret: s}
}

// concealer is implemented by Secret and, through embedding, Disclosed.
type concealer interface {
	concealed()
}

// discloser is implemented only by Disclosed.
type discloser interface {
	disclosed()
}

func (Secret[T]) concealed() {}

func (Disclosed[T]) disclosed() {}
