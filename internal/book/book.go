package book

import (
	"errors"
	"strings"
)

// ErrPersist wraps failures to write the collection to storage.
var ErrPersist = errors.New("persist collection")

// Book represents a tracked book.
type Book struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	IsRead bool   `json:"isRead"`
}

// Collection is an ordered list of books. Values handed out by Store are
// never modified afterwards, so callers may keep them.
type Collection []Book

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// IDs returns the ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, len(c))
	for i, b := range c {
		ids[i] = b.ID
	}
	return ids
}

// FieldError describes one invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned by Store.Add when the input is rejected.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
