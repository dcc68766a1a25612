package slot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"booktracker/internal/book"
)

// BookStorage stores the whole book collection as one JSON array in a KV slot.
type BookStorage struct {
	kv  KV
	key string
}

// NewBookStorage returns a book.Storage writing to key. An empty key selects
// DefaultKey.
func NewBookStorage(kv KV, key string) *BookStorage {
	if key == "" {
		key = DefaultKey
	}
	return &BookStorage{kv: kv, key: key}
}

// Load returns the stored collection. Absent or unparseable data yields an
// empty collection; only backend faults are returned.
func (s *BookStorage) Load(ctx context.Context) (book.Collection, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return book.Collection{}, nil
		}
		return nil, fmt.Errorf("read slot %s: %w", s.key, err)
	}

	var books book.Collection
	if err := json.Unmarshal(data, &books); err != nil {
		log.Printf("slot unreadable, starting empty: key=%s error=%v", s.key, err)
		return book.Collection{}, nil
	}
	if books == nil {
		books = book.Collection{}
	}
	return books, nil
}

// Save overwrites the slot with c.
func (s *BookStorage) Save(ctx context.Context, c book.Collection) error {
	if c == nil {
		c = book.Collection{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("write slot %s: %w", s.key, err)
	}
	return nil
}
