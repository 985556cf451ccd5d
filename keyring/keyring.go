// Package keyring reads and writes hush secrets through the operating
// system keyring (macOS Keychain, Secret Service, Windows Credential
// Manager).
//
// Values cross the package boundary only as hush.Secret[string], so a
// credential loaded from the keyring never sits in a plain string that a
// log call could print.
package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
	"github.com/zoobzio/hush"
)

var (
	// ErrNotFound indicates no secret is stored under the key.
	ErrNotFound = errors.New("secret not found")

	// ErrInvalidKey indicates an empty service or key name.
	ErrInvalidKey = errors.New("invalid secret key")
)

// StoreError wraps a keyring failure with the operation and key.
// It never carries the secret value.
type StoreError struct {
	Op      string
	Service string
	Key     string
	Err     error
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("keyring %s failed for %s:%s: %v", e.Op, e.Service, e.Key, e.Err)
	}
	return fmt.Sprintf("keyring %s failed for %s: %v", e.Op, e.Service, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Store holds the secrets of one keyring service.
type Store struct {
	service string
}

// New returns a Store for service.
func New(service string) *Store {
	return &Store{service: service}
}

// Service returns the keyring service name.
func (s *Store) Service() string {
	return s.service
}

// Get loads the secret stored under key.
func (s *Store) Get(key string) (hush.Secret[string], error) {
	if err := s.check("get", key); err != nil {
		return hush.Secret[string]{}, err
	}

	value, err := keyring.Get(s.service, key)
	if err != nil {
		return hush.Secret[string]{}, s.wrap("get", key, err)
	}
	return hush.From(value), nil
}

// Set stores secret under key, replacing any existing value.
func (s *Store) Set(key string, secret hush.Secret[string]) error {
	if err := s.check("set", key); err != nil {
		return err
	}

	if err := keyring.Set(s.service, key, secret.Inner()); err != nil {
		return s.wrap("set", key, err)
	}
	return nil
}

// Delete removes the secret stored under key. A missing key is not an error.
func (s *Store) Delete(key string) error {
	if err := s.check("delete", key); err != nil {
		return err
	}

	err := keyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return s.wrap("delete", key, err)
	}
	return nil
}

// Exists reports whether a secret is stored under key.
func (s *Store) Exists(key string) (bool, error) {
	_, err := s.Get(key)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) check(op, key string) error {
	if s.service == "" || key == "" {
		return &StoreError{Op: op, Service: s.service, Key: key, Err: ErrInvalidKey}
	}
	return nil
}

func (s *Store) wrap(op, key string, err error) error {
	if errors.Is(err, keyring.ErrNotFound) {
		err = ErrNotFound
	}
	return &StoreError{Op: op, Service: s.service, Key: key, Err: err}
}
