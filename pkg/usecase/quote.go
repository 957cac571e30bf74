package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

// QuoteUseCase handles quote creation and listing. Quotes have no update or
// delete operations.
type QuoteUseCase struct {
	repo interfaces.Repository
}

func NewQuoteUseCase(repo interfaces.Repository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (uc *QuoteUseCase) List(ctx context.Context, category string) ([]*model.Quote, error) {
	query := interfaces.ListQuery{
		Condition: buildQuoteListCondition(category),
		Limit:     maxListResults,
	}
	quotes, err := uc.repo.Quote().List(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list quotes")
	}
	return quotes, nil
}

func (uc *QuoteUseCase) Create(ctx context.Context, input model.QuoteInput) (*model.Quote, error) {
	if input.Text == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "text is required")
	}
	if input.Author == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "author is required")
	}

	quote := model.NewQuote(input, time.Now().UTC())
	created, err := uc.repo.Quote().Create(ctx, quote)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create quote")
	}
	return created, nil
}
