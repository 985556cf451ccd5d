// Package yaml provides a YAML codec implementation.
//
// A hush.Secret field encodes as the plain scalar <hidden> and decodes
// whatever node its plaintext type accepts.
package yaml

import (
	"github.com/zoobzio/hush"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements hush.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() hush.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as a YAML document.
// The output is identical to yaml.Marshal(s.Inner()).
func Disclose[T any](s hush.Secret[T]) ([]byte, error) {
	return yaml.Marshal(hush.Disclose(s))
}
