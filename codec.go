package hush

// Codec marshals host types for one content type.
//
// A Codec needs no knowledge of Secret: Secret and Disclosed carry the
// method sets each supported encoder looks for, so any codec built on
// encoding/json, encoding/xml, yaml.v3, msgpack, or bson redacts by default.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
