// Package testing provides fixtures for exercising hush with real codecs.
package testing

import (
	"github.com/zoobzio/hush"
)

// Fixture plaintexts. Tests assert that none of these appear in redacted output.
const (
	TestUser     = "alice"
	TestPassword = "hunter2"
	TestAPIKey   = "sk_live_51Habc"
	TestDSN      = "postgres://app:pa55@db:5432/app"
)

// Credentials carries one redacted and one disclosed secret.
type Credentials struct {
	User     string                 `json:"user" yaml:"user" xml:"user" msgpack:"user" bson:"user" toml:"user"`
	Password hush.Secret[string]    `json:"password" yaml:"password" xml:"password" msgpack:"password" bson:"password" toml:"password"`
	APIKey   hush.Disclosed[string] `json:"api_key" yaml:"api_key" xml:"api_key" msgpack:"api_key" bson:"api_key" toml:"api_key"`
}

// PlainCredentials mirrors Credentials with bare plaintext fields.
type PlainCredentials struct {
	User     string `json:"user" yaml:"user" xml:"user" msgpack:"user" bson:"user" toml:"user"`
	Password string `json:"password" yaml:"password" xml:"password" msgpack:"password" bson:"password" toml:"password"`
	APIKey   string `json:"api_key" yaml:"api_key" xml:"api_key" msgpack:"api_key" bson:"api_key" toml:"api_key"`
}

// NewCredentials returns Credentials populated with the fixture plaintexts.
func NewCredentials() Credentials {
	return Credentials{
		User:     TestUser,
		Password: hush.From(TestPassword),
		APIKey:   hush.Disclose(hush.From(TestAPIKey)),
	}
}

// Database is a nested fixture holding a connection secret.
type Database struct {
	Host string              `json:"host" yaml:"host" xml:"host" msgpack:"host" bson:"host" toml:"host"`
	DSN  hush.Secret[string] `json:"dsn" yaml:"dsn" xml:"dsn" msgpack:"dsn" bson:"dsn" toml:"dsn"`
}

// Upstream is a nested fixture reached through a pointer.
type Upstream struct {
	URL   string              `json:"url" yaml:"url" msgpack:"url" bson:"url" toml:"url"`
	Token hush.Secret[string] `json:"token" yaml:"token" msgpack:"token" bson:"token" toml:"token"`
}

// Config exercises nested, pointer, slice, and map placements of secrets.
type Config struct {
	Name     string                         `json:"name" yaml:"name" msgpack:"name" bson:"name" toml:"name"`
	Database Database                       `json:"database" yaml:"database" msgpack:"database" bson:"database" toml:"database"`
	Upstream *Upstream                      `json:"upstream" yaml:"upstream" msgpack:"upstream" bson:"upstream" toml:"upstream"`
	Tokens   []hush.Secret[string]          `json:"tokens" yaml:"tokens" msgpack:"tokens" bson:"tokens" toml:"tokens"`
	Keys     map[string]hush.Secret[string] `json:"keys" yaml:"keys" msgpack:"keys" bson:"keys" toml:"keys"`
}

// NewConfig returns a Config populated with the fixture plaintexts.
func NewConfig() Config {
	return Config{
		Name: "svc",
		Database: Database{
			Host: "db",
			DSN:  hush.From(TestDSN),
		},
		Upstream: &Upstream{
			URL:   "https://api.example.com",
			Token: hush.From(TestAPIKey),
		},
		Tokens: []hush.Secret[string]{hush.From(TestPassword)},
		Keys:   map[string]hush.Secret[string]{"primary": hush.From(TestAPIKey)},
	}
}
