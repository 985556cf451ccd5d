// Package bson provides a BSON codec implementation.
//
// A hush.Secret field encodes as the BSON string "<hidden>" and decodes
// whatever value its plaintext type accepts. BSON documents must be structs
// or maps, so a Secret is only encoded as a document field.
package bson

import (
	"github.com/zoobzio/hush"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements hush.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() hush.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as a BSON value, suitable for
// building a bson.D by hand. The result is identical to
// bson.MarshalValue(s.Inner()).
func Disclose[T any](s hush.Secret[T]) (bson.RawValue, error) {
	t, data, err := hush.Disclose(s).MarshalBSONValue()
	if err != nil {
		return bson.RawValue{}, err
	}
	return bson.RawValue{Type: t, Value: data}, nil
}
