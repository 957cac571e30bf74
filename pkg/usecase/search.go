package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/rebutly/rebutly/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// SearchUseCase runs the dual objection/quote search. The two scopes are
// queried independently and never merged into one ranked list.
type SearchUseCase struct {
	repo interfaces.Repository
}

func NewSearchUseCase(repo interfaces.Repository) *SearchUseCase {
	return &SearchUseCase{repo: repo}
}

// SearchResult holds the per-scope result collections. A scope that was not
// searched has an empty collection.
type SearchResult struct {
	Objections []*model.Objection
	Quotes     []*model.Quote
}

// Search queries the scopes selected by scope concurrently. An empty query
// returns empty results: searching for nothing matches nothing.
func (uc *SearchUseCase) Search(ctx context.Context, query string, scope types.SearchScope) (*SearchResult, error) {
	result := &SearchResult{
		Objections: []*model.Objection{},
		Quotes:     []*model.Quote{},
	}

	if query == "" {
		return result, nil
	}

	eg, ctx := errgroup.WithContext(ctx)

	if scope.IncludesObjections() {
		eg.Go(func() error {
			objections, err := uc.repo.Objection().List(ctx, interfaces.ListQuery{
				Condition: buildObjectionSearchCondition(query),
				Limit:     maxSearchResults,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to search objections")
			}
			result.Objections = objections
			return nil
		})
	}

	if scope.IncludesQuotes() {
		eg.Go(func() error {
			quotes, err := uc.repo.Quote().List(ctx, interfaces.ListQuery{
				Condition: buildQuoteSearchCondition(query),
				Limit:     maxSearchResults,
			})
			if err != nil {
				return goerr.Wrap(err, "failed to search quotes")
			}
			result.Quotes = quotes
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
