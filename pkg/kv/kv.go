// Package kv provides a key-value store abstraction for session storage.
// This allows swapping backends (Redis, in-memory, etc.) without changing
// the token store implementation that sits on top.
package kv

import (
	"context"
)

// Store defines a minimal key-value interface for session storage.
// Keys and values are strings; tokens are opaque strings on the wire and
// there is no reason to shuttle them around as bytes.
type Store interface {
	// Set stores a value under the given key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Get retrieves a value by key. Returns ErrNotFound if the key doesn't exist.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes a key. Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Close closes the connection to the store.
	Close() error
}
