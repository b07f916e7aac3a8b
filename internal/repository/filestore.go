package repository

import "context"

// FileStore persists uploaded binary files in an object store.
type FileStore interface {
	// Upload stores data under the given key, overwriting any previous
	// object.
	Upload(ctx context.Context, key string, data []byte, contentType string) error

	// PresignGet returns a time-limited URL from which the object can be
	// downloaded directly.
	PresignGet(ctx context.Context, key string) (string, error)
}
