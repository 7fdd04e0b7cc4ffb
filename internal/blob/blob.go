// Package blob provides a durable string-keyed blob store.
//
// The tracker and checklist stores persist their full state as a single
// blob under a fixed key. Two backends are available: a plain file per key
// (the default), and an embedded BadgerDB database.
package blob

// Store reads and writes blobs by key.
type Store interface {
	// Get returns the blob stored under key. The second return is false
	// when no blob exists for the key.
	Get(key string) ([]byte, bool, error)

	// Set replaces the blob stored under key.
	Set(key string, value []byte) error

	// Close releases any resources held by the store.
	Close() error
}
