// Package kv defines the key/value repository that backs all BirthdayBook
// persistence. Collections are stored as whole JSON documents under string
// keys (clients_<userId>, messages_<userId>, users, session), mirroring a
// per-origin web storage layout.
package kv

import "context"

// Repository describes the key/value operations used by the store and the
// auth service. Implementations are typically backed by a local SQLite
// database; an in-memory implementation exists for tests.
type Repository interface {
	// Get returns the value for key, or (nil, nil) if the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all key/value pairs.
	List(ctx context.Context) (map[string][]byte, error)
}
