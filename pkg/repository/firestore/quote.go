package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// quoteDoc is the Firestore document representation of model.Quote.
type quoteDoc struct {
	ID        model.QuoteID `firestore:"ID"`
	Text      string        `firestore:"Text"`
	Author    string        `firestore:"Author"`
	Category  string        `firestore:"Category"`
	CreatedAt time.Time     `firestore:"CreatedAt"`
}

func toQuoteDoc(q *model.Quote) *quoteDoc {
	return &quoteDoc{
		ID:        q.ID,
		Text:      q.Text,
		Author:    q.Author,
		Category:  q.Category,
		CreatedAt: q.CreatedAt,
	}
}

func fromQuoteDoc(d *quoteDoc) *model.Quote {
	return &model.Quote{
		ID:        d.ID,
		Text:      d.Text,
		Author:    d.Author,
		Category:  d.Category,
		CreatedAt: d.CreatedAt,
	}
}

func docToQuote(doc *firestore.DocumentSnapshot) (*model.Quote, error) {
	var d quoteDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromQuoteDoc(&d), nil
}

type quoteRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newQuoteRepository(client *firestore.Client) *quoteRepository {
	return &quoteRepository{
		client: client,
	}
}

func (r *quoteRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "quotes")
}

func (r *quoteRepository) Create(ctx context.Context, quote *model.Quote) (*model.Quote, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if quote.ID == "" {
		quote.ID = model.NewQuoteID()
	}
	if quote.CreatedAt.IsZero() {
		quote.CreatedAt = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(quote.ID))
	if _, err := docRef.Set(ctx, toQuoteDoc(quote)); err != nil {
		return nil, goerr.Wrap(err, "failed to create quote", goerr.V("id", quote.ID))
	}

	return quote, nil
}

func (r *quoteRepository) CreateMany(ctx context.Context, quotes []*model.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(quotes))
	for _, quote := range quotes {
		docRef := r.collection().Doc(string(quote.ID))
		job, err := bw.Create(docRef, toQuoteDoc(quote))
		if err != nil {
			return goerr.Wrap(err, "failed to enqueue quote", goerr.V("id", quote.ID))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to batch insert quotes")
		}
	}

	return nil
}

func (r *quoteRepository) List(ctx context.Context, query interfaces.ListQuery) ([]*model.Quote, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	q := r.collection().Query
	for _, eq := range model.Equalities(query.Condition) {
		path, err := fieldPath(eq.Field)
		if err != nil {
			return nil, err
		}
		q = q.Where(path, "==", eq.Value)
	}
	q = q.OrderBy("CreatedAt", firestore.Desc)

	var quotes []*model.Quote
	err := retryRead(ctx, func(ctx context.Context) error {
		iter := q.Documents(ctx)
		defer iter.Stop()

		quotes = make([]*model.Quote, 0)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}

			quote, err := docToQuote(doc)
			if err != nil {
				return goerr.Wrap(err, "failed to unmarshal quote")
			}
			if !model.Matches(quote, query.Condition) {
				continue
			}

			quotes = append(quotes, quote)
			if query.Limit > 0 && len(quotes) >= query.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list quotes")
	}

	return quotes, nil
}

func (r *quoteRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var count int
	err := retryRead(ctx, func(ctx context.Context) error {
		docs, err := r.collection().Documents(ctx).GetAll()
		if err != nil {
			return err
		}
		count = len(docs)
		return nil
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to count quotes")
	}

	return count, nil
}
