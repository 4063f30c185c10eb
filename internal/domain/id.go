package domain

import "github.com/google/uuid"

// NewID mints a new entity identifier.
func NewID() string {
	return uuid.NewString()
}

// ShortTitle truncates a title for display in reason fragments and lists.
func ShortTitle(title string, max int) string {
	if max <= 0 || len([]rune(title)) <= max {
		return title
	}
	runes := []rune(title)
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
