package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteID is a UUID-based identifier for Quote
type QuoteID string

// NewQuoteID generates a new UUID v4 QuoteID
func NewQuoteID() QuoteID {
	return QuoteID(uuid.New().String())
}

// Quote is an author-attributed motivational quote. Quotes are immutable
// after creation.
type Quote struct {
	ID        QuoteID   `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteInput is the caller-supplied portion of a new Quote.
type QuoteInput struct {
	Text     string
	Author   string
	Category string
}

// NewQuote constructs a Quote from caller input.
func NewQuote(input QuoteInput, now time.Time) *Quote {
	return &Quote{
		ID:        NewQuoteID(),
		Text:      input.Text,
		Author:    input.Author,
		Category:  input.Category,
		CreatedAt: now,
	}
}

// FieldValues implements FieldValuer for filter evaluation.
func (q *Quote) FieldValues(f Field) []any {
	switch f {
	case FieldText:
		return []any{q.Text}
	case FieldAuthor:
		return []any{q.Author}
	case FieldCategory:
		return []any{q.Category}
	default:
		return nil
	}
}
