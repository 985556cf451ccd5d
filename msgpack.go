package hush

import (
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Secret[int]{}
	_ msgpack.CustomDecoder = (*Secret[int])(nil)
	_ msgpack.CustomEncoder = Disclosed[int]{}
)

// EncodeMsgpack encodes Placeholder as a MessagePack string.
func (Secret[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(Placeholder)
}

// DecodeMsgpack decodes the plaintext as T would be decoded.
func (s *Secret[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	return dec.Decode(&s.v)
}

// EncodeMsgpack encodes the plaintext as T would be encoded.
func (d Disclosed[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(d.v)
}
