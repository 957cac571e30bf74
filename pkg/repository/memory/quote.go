package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

type quoteRepository struct {
	mu     sync.RWMutex
	quotes map[model.QuoteID]*model.Quote
}

func newQuoteRepository() *quoteRepository {
	return &quoteRepository{
		quotes: make(map[model.QuoteID]*model.Quote),
	}
}

func copyQuote(q *model.Quote) *model.Quote {
	copied := *q
	return &copied
}

func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyQuote(quote)
	if created.ID == "" {
		created.ID = model.NewQuoteID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}

	r.quotes[created.ID] = created
	return copyQuote(created), nil
}

func (r *quoteRepository) CreateMany(ctx context.Context, quotes []*model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, quote := range quotes {
		r.quotes[quote.ID] = copyQuote(quote)
	}
	return nil
}

func (r *quoteRepository) List(ctx context.Context, query interfaces.ListQuery) ([]*model.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Quote, 0)
	for _, quote := range r.quotes {
		if model.Matches(quote, query.Condition) {
			matched = append(matched, copyQuote(quote))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

func (r *quoteRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.quotes), nil
}
