package service

import "context"

// ArchiveStorage keeps an audit copy of every uploaded bulk-import CSV so a
// failed batch can be replayed or inspected after the fact.
type ArchiveStorage interface {
	// Store writes the raw upload under the given key and returns nil on success.
	Store(ctx context.Context, key string, contentType string, data []byte) error

	// Close releases the underlying bucket.
	Close() error
}
