package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"github.com/sethvargo/go-retry"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// opTimeout bounds every store call so a stalled backend cannot hang a request.
const opTimeout = 10 * time.Second

type Firestore struct {
	client     *firestore.Client
	objection  *objectionRepository
	quote      *quoteRepository
	statusRepo *statusRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix namespaces all collections, mainly for tests sharing a
// database.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.objection.collectionPrefix = prefix
		f.quote.collectionPrefix = prefix
		f.statusRepo.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		objection:  newObjectionRepository(client),
		quote:      newQuoteRepository(client),
		statusRepo: newStatusRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Objection() interfaces.ObjectionRepository {
	return f.objection
}

func (f *Firestore) Quote() interfaces.QuoteRepository {
	return f.quote
}

func (f *Firestore) Status() interfaces.StatusRepository {
	return f.statusRepo
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// retryRead retries transient failures of read operations with exponential
// backoff. Writes are never routed through this: a failed write may already
// have been applied, and none of them are idempotent.
func retryRead(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(100*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := fn(ctx); err != nil {
			switch status.Code(err) {
			case codes.Unavailable, codes.DeadlineExceeded:
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

// fieldPath maps a domain field to its Firestore document path.
func fieldPath(f model.Field) (string, error) {
	switch f {
	case model.FieldTitle:
		return "Title", nil
	case model.FieldResponses:
		return "Responses", nil
	case model.FieldCategory:
		return "Category", nil
	case model.FieldTags:
		return "Tags", nil
	case model.FieldFavorite:
		return "IsFavorite", nil
	case model.FieldUsageCount:
		return "UsageCount", nil
	case model.FieldUpdatedAt:
		return "UpdatedAt", nil
	case model.FieldText:
		return "Text", nil
	case model.FieldAuthor:
		return "Author", nil
	default:
		return "", goerr.New("field has no firestore mapping", goerr.V("field", f))
	}
}
