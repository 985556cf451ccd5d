package hush

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	_ toml.Marshaler   = Secret[int]{}
	_ toml.Unmarshaler = (*Secret[int])(nil)
	_ toml.Marshaler   = Disclosed[int]{}
	_ toml.Unmarshaler = (*Disclosed[int])(nil)
)

// tomlDoc wraps a value under a single key so the toml package can encode
// or decode it on its own.
type tomlDoc[T any] struct {
	V T `toml:"v,inline"`
}

// MarshalTOML encodes Placeholder as a TOML string.
func (Secret[T]) MarshalTOML() ([]byte, error) {
	return tomlValue(Placeholder)
}

// UnmarshalTOML decodes the plaintext from data as T would be decoded.
//
// The toml package hands over an already parsed value, so it is written
// back out under a synthetic key "v" and decoded into T. A type error is
// therefore nested: the toml package wraps T's error, which names "v", in
// its own error naming the original key.
func (s *Secret[T]) UnmarshalTOML(data any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDoc[any]{V: data}); err != nil {
		return err
	}

	var doc tomlDoc[T]
	if _, err := toml.NewDecoder(&buf).Decode(&doc); err != nil {
		return err
	}
	s.v = doc.V
	return nil
}

// MarshalTOML encodes the plaintext as T would be encoded.
// Tables are written inline. A nil pointer, map or interface has no TOML
// value and fails with ErrInvalidType, where a bare nil field is omitted.
func (d Disclosed[T]) MarshalTOML() ([]byte, error) {
	return tomlValue(d.v)
}

// tomlValue encodes v as the right-hand side of a TOML key/value pair.
func tomlValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(tomlDoc[any]{V: v}); err != nil {
		return nil, err
	}

	out := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	prefix := []byte("v = ")
	if !bytes.HasPrefix(out, prefix) || bytes.ContainsRune(out, '\n') {
		return nil, fmt.Errorf("%w: toml value of type %T", ErrInvalidType, v)
	}
	return out[len(prefix):], nil
}
