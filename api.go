// Package hush keeps sensitive values out of logs and encoded output.
//
// Wrap a credential, token, or key in a Secret and it can be compared,
// hashed, sorted, and used as a map key exactly like the plaintext, while
// every default output path renders it as Placeholder:
//
//	token := hush.From("s3cr3t")
//	fmt.Println(token)            // <hidden>
//	slog.Info("auth", "t", token) // t=<hidden>
//	json.Marshal(token)           // "\u003chidden\u003e"
//
// The plaintext is one explicit call away:
//
//	raw := token.Inner()
//
// # Encoding
//
// Secret implements the marshaling interfaces of encoding/json,
// encoding/xml, gopkg.in/yaml.v3, github.com/vmihailenco/msgpack/v5,
// go.mongodb.org/mongo-driver/bson and github.com/BurntSushi/toml. Encoding writes Placeholder as a string
// regardless of T. Decoding is transparent: a Secret[T] accepts exactly the
// input T accepts and fails with T's own error.
//
// # Disclosure
//
// Revealing the plaintext on encode must be named at the point of use.
// Either declare the field as Disclosed[T]:
//
//	type LoginRequest struct {
//	    User     string                 `json:"user"`
//	    Password hush.Disclosed[string] `json:"password"`
//	}
//
// or wrap a single value when encoding it:
//
//	body, _ := json.Marshal(hush.Disclose(token))
//
// Disclosed output is byte-identical to encoding the plaintext directly.
//
// # Borrowing
//
// Ref returns a pointer to the plaintext for in-place reads and updates.
// This is the one sanctioned leak surface: code holding the pointer sees
// the plaintext.
//
// # Caveats
//
// The fmt package does not call methods on values reached through
// unexported struct fields. Printing a struct that stores a Secret in an
// unexported field with %v prints the plaintext. Keep Secret fields exported.
//
// # Boundary Processing
//
// Processor binds a host type to a Codec, inventories its Secret and
// Disclosed fields, optionally forbids disclosure, and emits capitan
// signals for every Receive and Send:
//
//	proc, _ := hush.NewProcessor[Config](yaml.New(), hush.WithoutDisclosure())
//	cfg, _ := proc.Receive(ctx, raw)
//	out, _ := proc.Send(ctx, cfg)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//   - toml - TOML encoding (application/toml)
//
// Outside the codecs, the zap subpackage provides redacting zap fields and
// the keyring subpackage loads secrets from the operating system keyring.
package hush
