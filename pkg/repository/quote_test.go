package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

func runQuoteRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create persists a quote", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		category := uniqueCategory()
		quote := model.NewQuote(model.QuoteInput{
			Text:     "Every sale has five basic obstacles.",
			Author:   "Zig Ziglar",
			Category: category,
		}, time.Now().UTC().Truncate(time.Millisecond))

		created, err := repo.Quote().Create(ctx, quote)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(quote.ID)

		listed, err := repo.Quote().List(ctx, interfaces.ListQuery{
			Condition: model.Eq{Field: model.FieldCategory, Value: category},
		})
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(1).Required()
		gt.Value(t, listed[0].Text).Equal("Every sale has five basic obstacles.")
		gt.Value(t, listed[0].Author).Equal("Zig Ziglar")
	})

	t.Run("List orders by CreatedAt descending and caps results", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		category := uniqueCategory()
		base := time.Now().UTC().Truncate(time.Millisecond)
		quotes := []*model.Quote{
			model.NewQuote(model.QuoteInput{Text: "oldest", Author: "a", Category: category}, base),
			model.NewQuote(model.QuoteInput{Text: "middle", Author: "b", Category: category}, base.Add(time.Minute)),
			model.NewQuote(model.QuoteInput{Text: "newest", Author: "c", Category: category}, base.Add(2*time.Minute)),
		}
		gt.NoError(t, repo.Quote().CreateMany(ctx, quotes)).Required()

		listed, err := repo.Quote().List(ctx, interfaces.ListQuery{
			Condition: model.Eq{Field: model.FieldCategory, Value: category},
		})
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(3).Required()
		gt.Value(t, listed[0].Text).Equal("newest")
		gt.Value(t, listed[2].Text).Equal("oldest")

		limited, err := repo.Quote().List(ctx, interfaces.ListQuery{
			Condition: model.Eq{Field: model.FieldCategory, Value: category},
			Limit:     1,
		})
		gt.NoError(t, err).Required()
		gt.Array(t, limited).Length(1).Required()
		gt.Value(t, limited[0].Text).Equal("newest")
	})

	t.Run("List evaluates substring conditions", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		category := uniqueCategory()
		now := time.Now().UTC().Truncate(time.Millisecond)
		quotes := []*model.Quote{
			model.NewQuote(model.QuoteInput{Text: "Pricing is what you pay.", Author: "Warren Buffett", Category: category}, now),
			model.NewQuote(model.QuoteInput{Text: "Keep going.", Author: "Sam Levenson", Category: category}, now),
		}
		gt.NoError(t, repo.Quote().CreateMany(ctx, quotes)).Required()

		listed, err := repo.Quote().List(ctx, interfaces.ListQuery{
			Condition: model.And{
				model.Eq{Field: model.FieldCategory, Value: category},
				model.Or{
					model.ContainsFold{Field: model.FieldText, Value: "pricing"},
					model.ContainsFold{Field: model.FieldAuthor, Value: "pricing"},
				},
			},
		})
		gt.NoError(t, err).Required()
		gt.Array(t, listed).Length(1).Required()
		gt.Value(t, listed[0].Author).Equal("Warren Buffett")
	})

	t.Run("Count reflects stored quotes", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		quote := model.NewQuote(model.QuoteInput{
			Text:   "count me",
			Author: "anon",
		}, time.Now().UTC())
		_, err := repo.Quote().Create(ctx, quote)
		gt.NoError(t, err).Required()

		count, err := repo.Quote().Count(ctx)
		gt.NoError(t, err).Required()
		if count < 1 {
			t.Errorf("expected count >= 1, got %d", count)
		}
	})
}

func TestMemoryQuoteRepository(t *testing.T) {
	runQuoteRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreQuoteRepository(t *testing.T) {
	runQuoteRepositoryTest(t, newFirestoreRepository)
}
