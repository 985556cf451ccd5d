package hush

import (
	"bytes"
	"encoding/json"
)

var (
	_ json.Marshaler   = Secret[int]{}
	_ json.Unmarshaler = (*Secret[int])(nil)
	_ json.Marshaler   = Disclosed[int]{}
	_ json.Unmarshaler = (*Disclosed[int])(nil)
)

// MarshalJSON encodes Placeholder as a JSON string.
func (Secret[T]) MarshalJSON() ([]byte, error) {
	return jsonValue(Placeholder)
}

// UnmarshalJSON decodes the plaintext from data as T would be decoded.
// Errors from decoding T are returned unchanged.
func (s *Secret[T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &s.v)
}

// MarshalJSON encodes the plaintext as T would be encoded.
func (d Disclosed[T]) MarshalJSON() ([]byte, error) {
	return jsonValue(d.v)
}

// jsonValue encodes v without HTML escaping. The calling encoder escapes
// the result again if its own setting asks for it.
func jsonValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
