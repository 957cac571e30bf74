package interfaces

import (
	"context"

	"github.com/rebutly/rebutly/pkg/domain/model"
)

// QuoteRepository defines the interface for Quote data persistence.
// List returns quotes ordered by CreatedAt descending.
type QuoteRepository interface {
	// Create persists a new quote
	Create(ctx context.Context, quote *model.Quote) (*model.Quote, error)

	// CreateMany persists a batch of quotes in one store operation
	CreateMany(ctx context.Context, quotes []*model.Quote) error

	// List retrieves quotes matching the query, newest first
	List(ctx context.Context, query ListQuery) ([]*model.Quote, error)

	// Count returns the number of stored quotes
	Count(ctx context.Context) (int, error)
}
