// Package store provides the persisted key-value backends that settings
// are loaded from and saved to. Keys are opaque strings and values are
// opaque byte payloads; interpretation of both is left to the caller.
//
// Backends are selected by DSN through New. All implementations are safe
// for concurrent use, independently of the single-owner discipline the
// property layer itself follows.
package store

import "errors"

// ErrNotFound is returned by Get when a key has no entry.
var ErrNotFound = errors.New("key not found")

// Store is the abstract persisted key-value backend.
type Store interface {
	// Get retrieves the value stored under key. It returns ErrNotFound
	// when the key has no entry.
	Get(key string) ([]byte, error)

	// Set stores value under key, overwriting any previous entry.
	Set(key string, value []byte) error

	// Delete removes the entry for key. Deleting an absent key is not an
	// error.
	Delete(key string) error

	// Exists reports whether key has an entry.
	Exists(key string) (bool, error)

	// Clear removes every entry written through this store.
	Clear() error

	// Sync flushes pending writes to the durable medium. Backends whose
	// writes are immediately durable treat it as a no-op.
	Sync() error

	// Close releases resources held by the store. A closed store must not
	// be used again.
	Close() error
}
