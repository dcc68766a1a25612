package book

import (
	"fmt"
	"strings"
)

// FilterMode selects which books a view includes.
type FilterMode string

const (
	FilterAll    FilterMode = "all"
	FilterRead   FilterMode = "read"
	FilterUnread FilterMode = "unread"
)

// ParseFilterMode maps user input to a FilterMode. Empty input means all.
func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterRead:
		return FilterRead, nil
	case FilterUnread:
		return FilterUnread, nil
	default:
		return "", fmt.Errorf("invalid filter: %s", s)
	}
}

// Empty-state messages.
const (
	MessageNoBooks      = "no books yet"
	MessageAllCompleted = "all books completed"
	MessageNoCompleted  = "no completed books"
	MessageAllRead      = "all books read"
	MessageNoMatches    = "no search matches"
)

// Result is a filtered view of a collection.
type Result struct {
	Items       []Book `json:"items"`
	Total       int    `json:"total"`
	ReadCount   int    `json:"readCount"`
	UnreadCount int    `json:"unreadCount"`
	Message     string `json:"message,omitempty"`
}

// View filters c by mode and a case-insensitive search on title or author.
// Counts always cover the whole collection.
func View(c Collection, mode FilterMode, term string) Result {
	needle := strings.ToLower(term)

	items := make([]Book, 0, len(c))
	readCount := 0
	for _, b := range c {
		if b.IsRead {
			readCount++
		}
		if !matchesMode(b, mode) || !matchesSearch(b, needle) {
			continue
		}
		items = append(items, b)
	}

	res := Result{
		Items:       items,
		Total:       len(c),
		ReadCount:   readCount,
		UnreadCount: len(c) - readCount,
	}
	res.Message = message(res, mode)
	return res
}

func matchesMode(b Book, mode FilterMode) bool {
	switch mode {
	case FilterRead:
		return b.IsRead
	case FilterUnread:
		return !b.IsRead
	default:
		return true
	}
}

func matchesSearch(b Book, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Title), needle) ||
		strings.Contains(strings.ToLower(b.Author), needle)
}

// message picks the empty-state text; first matching row wins.
func message(r Result, mode FilterMode) string {
	switch {
	case r.Total == 0:
		return MessageNoBooks
	case r.UnreadCount == 0:
		return MessageAllCompleted
	case len(r.Items) > 0:
		return ""
	case mode == FilterRead:
		return MessageNoCompleted
	case mode == FilterUnread:
		// Only reachable when the search hides every unread book, so the
		// text does not describe the collection.
		return MessageAllRead
	default:
		return MessageNoMatches
	}
}
