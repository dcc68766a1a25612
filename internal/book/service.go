package book

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Store owns the in-memory collection and writes it through Storage after
// every mutation. Operations are serialized so that mutate and persist never
// interleave.
type Store struct {
	mu      sync.Mutex
	storage Storage
	books   Collection
	newID   func() string
}

// Option customizes a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID generator used for new books.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// NewStore loads the persisted collection and returns a ready Store.
func NewStore(ctx context.Context, storage Storage, opts ...Option) (*Store, error) {
	books, err := storage.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load collection: %w", err)
	}
	if books == nil {
		books = Collection{}
	}

	s := &Store{
		storage: storage,
		books:   books,
		newID:   func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Collection returns the current collection.
func (s *Store) Collection() Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.books
}

// Add appends a new unread book. A *ValidationError is returned, and nothing
// changes, when title or author is blank.
func (s *Store) Add(ctx context.Context, title, author string) (Collection, error) {
	in := NewBook{Title: title, Author: author}
	if fields := in.Validate(); len(fields) > 0 {
		return s.Collection(), &ValidationError{Fields: fields}
	}
	in = in.Normalize()

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(Collection, len(s.books), len(s.books)+1)
	copy(next, s.books)
	next = append(next, Book{
		ID:     s.newID(),
		Title:  in.Title,
		Author: in.Author,
		IsRead: false,
	})
	return s.commit(ctx, next)
}

// ToggleRead flips the read flag of the book with the given id. Unknown ids
// are ignored.
func (s *Store) ToggleRead(ctx context.Context, id string) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	next := s.books.Clone()
	for i := range next {
		if next[i].ID == id {
			next[i].IsRead = !next[i].IsRead
			found = true
		}
	}
	if !found {
		return s.books, nil
	}
	return s.commit(ctx, next)
}

// Delete removes the book with the given id. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(Collection, 0, len(s.books))
	for _, b := range s.books {
		if b.ID != id {
			next = append(next, b)
		}
	}
	if len(next) == len(s.books) {
		return s.books, nil
	}
	return s.commit(ctx, next)
}

// commit installs next as the current collection and persists it. The
// in-memory value is kept even when the write fails. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next Collection) (Collection, error) {
	s.books = next
	if err := s.storage.Save(ctx, next); err != nil {
		return next, fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return next, nil
}
