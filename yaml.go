package hush

import (
	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = Secret[int]{}
	_ yaml.Unmarshaler = (*Secret[int])(nil)
	_ yaml.Marshaler   = Disclosed[int]{}
)

// MarshalYAML encodes Placeholder as a YAML scalar.
func (Secret[T]) MarshalYAML() (any, error) {
	return Placeholder, nil
}

// UnmarshalYAML decodes the plaintext from node as T would be decoded.
func (s *Secret[T]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&s.v)
}

// MarshalYAML encodes the plaintext as T would be encoded.
func (d Disclosed[T]) MarshalYAML() (any, error) {
	return d.v, nil
}
