package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a blob key has no stored value.
var ErrKeyNotFound = errors.New("storage: key not found")

// BlobStore is a key-value store of independently serialized blobs. Writes
// to different keys carry no atomicity between them; within a key the last
// write wins.
type BlobStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
