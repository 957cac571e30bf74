package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"google.golang.org/api/iterator"
)

// statusDoc is the Firestore document representation of model.StatusCheck.
type statusDoc struct {
	ID         model.StatusCheckID `firestore:"ID"`
	ClientName string              `firestore:"ClientName"`
	Timestamp  time.Time           `firestore:"Timestamp"`
}

type statusRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newStatusRepository(client *firestore.Client) *statusRepository {
	return &statusRepository{
		client: client,
	}
}

func (r *statusRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "status_checks")
}

func (r *statusRepository) Create(ctx context.Context, check *model.StatusCheck) (*model.StatusCheck, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	if check.ID == "" {
		check.ID = model.NewStatusCheckID()
	}
	if check.Timestamp.IsZero() {
		check.Timestamp = time.Now().UTC()
	}

	docRef := r.collection().Doc(string(check.ID))
	doc := &statusDoc{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create status check", goerr.V("id", check.ID))
	}

	return check, nil
}

func (r *statusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	q := r.collection().OrderBy("Timestamp", firestore.Asc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var checks []*model.StatusCheck
	err := retryRead(ctx, func(ctx context.Context) error {
		iter := q.Documents(ctx)
		defer iter.Stop()

		checks = make([]*model.StatusCheck, 0)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}

			var d statusDoc
			if err := doc.DataTo(&d); err != nil {
				return goerr.Wrap(err, "failed to unmarshal status check")
			}
			checks = append(checks, &model.StatusCheck{
				ID:         d.ID,
				ClientName: d.ClientName,
				Timestamp:  d.Timestamp,
			})
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list status checks")
	}

	return checks, nil
}
