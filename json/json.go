// Package json provides a JSON codec implementation.
//
// A hush.Secret field encodes as the JSON string "<hidden>" (HTML-escaped,
// as encoding/json escapes every string) and decodes whatever JSON its
// plaintext type accepts.
package json

import (
	"encoding/json"

	"github.com/zoobzio/hush"
)

// jsonCodec implements hush.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() hush.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as JSON.
// The output is identical to json.Marshal(s.Inner()).
func Disclose[T any](s hush.Secret[T]) ([]byte, error) {
	return json.Marshal(hush.Disclose(s))
}
