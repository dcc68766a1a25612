package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_storage.go -package=book

// Storage defines the contract for persisting the whole collection.
type Storage interface {
	// Load returns the persisted collection, or an empty one when nothing
	// usable is stored. Only backend faults are returned as errors.
	Load(ctx context.Context) (Collection, error)
	// Save overwrites the persisted collection.
	Save(ctx context.Context, c Collection) error
}
