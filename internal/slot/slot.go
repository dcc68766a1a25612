// Package slot persists values under named keys in a local key-value store.
// Several backends are provided; BookStorage adapts any of them to the
// book.Storage contract.
package slot

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("slot not found")

// DefaultKey is the slot holding the book collection.
const DefaultKey = "booktracker:books"

// KV is the minimal key-value contract every backend implements.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}
