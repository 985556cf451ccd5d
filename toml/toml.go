// Package toml provides a TOML codec implementation.
//
// A hush.Secret field encodes as the string "<hidden>" and decodes
// whatever value its plaintext type accepts. hush.Disclosed fields holding
// tables are written as inline tables.
package toml

import (
	"bytes"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/hush"
)

// tomlCodec implements hush.Codec for TOML.
type tomlCodec struct{}

// New returns a TOML codec.
func New() hush.Codec {
	return &tomlCodec{}
}

// ContentType returns the MIME type for TOML.
func (c *tomlCodec) ContentType() string {
	return "application/toml"
}

// Marshal encodes v as a TOML document. v must be a struct or map.
func (c *tomlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes TOML data into v.
func (c *tomlCodec) Unmarshal(data []byte, v any) error {
	return toml.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as a TOML document under key.
func Disclose[T any](key string, s hush.Secret[T]) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(map[string]hush.Disclosed[T]{key: hush.Disclose(s)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
