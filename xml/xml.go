// Package xml provides an XML codec implementation.
//
// A hush.Secret field encodes as the character data &lt;hidden&gt;, or as an
// attribute with that value, and decodes whatever its plaintext type accepts.
package xml

import (
	"bytes"
	"encoding/xml"

	"github.com/zoobzio/hush"
)

// xmlCodec implements hush.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() hush.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// Disclose encodes the plaintext of s as an XML element named name.
// The output is identical to encoding s.Inner() under the same start element.
func Disclose[T any](name string, s hush.Secret[T]) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if err := enc.EncodeElement(hush.Disclose(s), start); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
