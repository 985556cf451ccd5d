// Package zap provides zap field constructors for hush secrets.
//
// zap.Any already renders a hush.Secret through its String method. These
// constructors make the redaction explicit at the call site and avoid the
// reflection path entirely.
package zap

import (
	"github.com/zoobzio/hush"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a typed structured logging field.
type Field = zap.Field

// Secret constructs a field that logs s as hush.Placeholder.
func Secret[T any](key string, _ hush.Secret[T]) Field {
	return zap.String(key, hush.Placeholder)
}

// Disclosed constructs a field that logs d as hush.Placeholder.
// Disclosure applies to codecs only; logs stay redacted.
func Disclosed[T any](key string, _ hush.Disclosed[T]) Field {
	return zap.String(key, hush.Placeholder)
}

// Secrets constructs an array field with one hush.Placeholder per element,
// so the count is visible but no plaintext is.
func Secrets[T any](key string, ss []hush.Secret[T]) Field {
	return zap.Array(key, placeholders(len(ss)))
}

// placeholders marshals as an array of n hush.Placeholder strings.
type placeholders int

func (n placeholders) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for range int(n) {
		enc.AppendString(hush.Placeholder)
	}
	return nil
}
