package hush

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

var (
	_ bson.ValueMarshaler   = Secret[int]{}
	_ bson.ValueUnmarshaler = (*Secret[int])(nil)
	_ bson.ValueMarshaler   = Disclosed[int]{}
)

// MarshalBSONValue encodes Placeholder as a BSON string.
func (Secret[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(Placeholder)
}

// UnmarshalBSONValue decodes the plaintext as T would be decoded.
func (s *Secret[T]) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	return bson.RawValue{Type: t, Value: data}.Unmarshal(&s.v)
}

// MarshalBSONValue encodes the plaintext as T would be encoded.
func (d Disclosed[T]) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.v)
}
