// Package msgpack provides a MessagePack codec implementation.
//
// A hush.Secret field encodes as the MessagePack str "<hidden>" and decodes
// whatever value its plaintext type accepts.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/hush"
)

// msgpackCodec implements hush.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() hush.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as MessagePack.
// The output is identical to msgpack.Marshal(s.Inner()).
func Disclose[T any](s hush.Secret[T]) ([]byte, error) {
	return msgpack.Marshal(hush.Disclose(s))
}
