package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// responseDoc is the Firestore representation of model.ObjectionResponse.
type responseDoc struct {
	ID        model.ResponseID `firestore:"ID"`
	Text      string           `firestore:"Text"`
	CreatedAt time.Time        `firestore:"CreatedAt"`
}

// objectionDoc is the Firestore document representation of model.Objection.
// The document key is the domain ID; Firestore's own document identity never
// leaks out of this package.
type objectionDoc struct {
	ID         model.ObjectionID `firestore:"ID"`
	Title      string            `firestore:"Title"`
	Responses  []responseDoc     `firestore:"Responses"`
	Category   string            `firestore:"Category"`
	Tags       []string          `firestore:"Tags"`
	IsFavorite bool              `firestore:"IsFavorite"`
	UsageCount int               `firestore:"UsageCount"`
	CreatedAt  time.Time         `firestore:"CreatedAt"`
	UpdatedAt  time.Time         `firestore:"UpdatedAt"`
}

func toResponseDocs(responses []model.ObjectionResponse) []responseDoc {
	docs := make([]responseDoc, 0, len(responses))
	for _, resp := range responses {
		docs = append(docs, responseDoc{
			ID:        resp.ID,
			Text:      resp.Text,
			CreatedAt: resp.CreatedAt,
		})
	}
	return docs
}

func toObjectionDoc(o *model.Objection) *objectionDoc {
	return &objectionDoc{
		ID:         o.ID,
		Title:      o.Title,
		Responses:  toResponseDocs(o.Responses),
		Category:   o.Category,
		Tags:       o.Tags,
		IsFavorite: o.IsFavorite,
		UsageCount: o.UsageCount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func fromObjectionDoc(d *objectionDoc) *model.Objection {
	responses := make([]model.ObjectionResponse, 0, len(d.Responses))
	for _, resp := range d.Responses {
		responses = append(responses, model.ObjectionResponse{
			ID:        resp.ID,
			Text:      resp.Text,
			CreatedAt: resp.CreatedAt,
		})
	}
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return &model.Objection{
		ID:         d.ID,
		Title:      d.Title,
		Responses:  responses,
		Category:   d.Category,
		Tags:       tags,
		IsFavorite: d.IsFavorite,
		UsageCount: d.UsageCount,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func docToObjection(doc *firestore.DocumentSnapshot) (*model.Objection, error) {
	var d objectionDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, err
	}
	return fromObjectionDoc(&d), nil
}

type objectionRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newObjectionRepository(client *firestore.Client) *objectionRepository {
	return &objectionRepository{
		client: client,
	}
}

func (r *objectionRepository) collection() *firestore.CollectionRef {
	return r.client.Collection(r.collectionPrefix + "objections")
}

func (r *objectionRepository) Create(ctx context.Context, objection *model.Objection) (*model.Objection, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now().UTC()
	if objection.ID == "" {
		objection.ID = model.NewObjectionID()
	}
	if objection.CreatedAt.IsZero() {
		objection.CreatedAt = now
	}
	if objection.UpdatedAt.IsZero() {
		objection.UpdatedAt = now
	}

	docRef := r.collection().Doc(string(objection.ID))
	if _, err := docRef.Set(ctx, toObjectionDoc(objection)); err != nil {
		return nil, goerr.Wrap(err, "failed to create objection", goerr.V("id", objection.ID))
	}

	return objection, nil
}

func (r *objectionRepository) CreateMany(ctx context.Context, objections []*model.Objection) error {
	if len(objections) == 0 {
		return nil
	}

	ctx, cancel := opCtx(ctx)
	defer cancel()

	bw := r.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(objections))
	for _, objection := range objections {
		docRef := r.collection().Doc(string(objection.ID))
		job, err := bw.Create(docRef, toObjectionDoc(objection))
		if err != nil {
			return goerr.Wrap(err, "failed to enqueue objection", goerr.V("id", objection.ID))
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return goerr.Wrap(err, "failed to batch insert objections")
		}
	}

	return nil
}

func (r *objectionRepository) Get(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docRef := r.collection().Doc(string(id))

	var doc *firestore.DocumentSnapshot
	err := retryRead(ctx, func(ctx context.Context) error {
		var err error
		doc, err = docRef.Get(ctx)
		return err
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get objection", goerr.V("id", id))
	}

	o, err := docToObjection(doc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal objection", goerr.V("id", id))
	}

	return o, nil
}

// List pushes exact-match constraints into the query and evaluates the rest of
// the condition (substring matching, which Firestore cannot express) on the
// streamed documents.
func (r *objectionRepository) List(ctx context.Context, query interfaces.ListQuery) ([]*model.Objection, error) {
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
	q = q.OrderBy("UpdatedAt", firestore.Desc)

	var objections []*model.Objection
	err := retryRead(ctx, func(ctx context.Context) error {
		iter := q.Documents(ctx)
		defer iter.Stop()

		objections = make([]*model.Objection, 0)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}

			o, err := docToObjection(doc)
			if err != nil {
				return goerr.Wrap(err, "failed to unmarshal objection")
			}
			if !model.Matches(o, query.Condition) {
				continue
			}

			objections = append(objections, o)
			if query.Limit > 0 && len(objections) >= query.Limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list objections")
	}

	return objections, nil
}

func (r *objectionRepository) Update(ctx context.Context, id model.ObjectionID, patch *model.ObjectionPatch) (*model.Objection, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	updates, err := toFirestoreUpdates(patch.Changes(time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	docRef := r.collection().Doc(string(id))
	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to update objection", goerr.V("id", id))
	}

	return r.Get(ctx, id)
}

func toFirestoreUpdates(changes []model.FieldChange) ([]firestore.Update, error) {
	updates := make([]firestore.Update, 0, len(changes))
	for _, change := range changes {
		path, err := fieldPath(change.Field)
		if err != nil {
			return nil, err
		}

		value := change.Value
		if responses, ok := value.([]model.ObjectionResponse); ok {
			value = toResponseDocs(responses)
		}

		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	return updates, nil
}

func (r *objectionRepository) Delete(ctx context.Context, id model.ObjectionID) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docRef := r.collection().Doc(string(id))

	if _, err := docRef.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
		}
		return goerr.Wrap(err, "failed to get objection", goerr.V("id", id))
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete objection", goerr.V("id", id))
	}

	return nil
}

// ToggleFavorite flips the favorite flag inside a transaction so concurrent
// toggles cannot lose an update.
func (r *objectionRepository) ToggleFavorite(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docRef := r.collection().Doc(string(id))

	var toggled *model.Objection
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		o, err := docToObjection(doc)
		if err != nil {
			return goerr.Wrap(err, "failed to unmarshal objection")
		}

		now := time.Now().UTC()
		o.IsFavorite = !o.IsFavorite
		o.UpdatedAt = now
		toggled = o

		return tx.Update(docRef, []firestore.Update{
			{Path: "IsFavorite", Value: o.IsFavorite},
			{Path: "UpdatedAt", Value: now},
		})
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to toggle favorite", goerr.V("id", id))
	}

	return toggled, nil
}

// IncrementUsage relies on the store-native increment so concurrent calls
// never lose a count.
func (r *objectionRepository) IncrementUsage(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	docRef := r.collection().Doc(string(id))
	updates := []firestore.Update{
		{Path: "UsageCount", Value: firestore.Increment(1)},
		{Path: "UpdatedAt", Value: time.Now().UTC()},
	}

	if _, err := docRef.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to increment usage", goerr.V("id", id))
	}

	return r.Get(ctx, id)
}

func (r *objectionRepository) Count(ctx context.Context) (int, error) {
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
		return 0, goerr.Wrap(err, "failed to count objections")
	}

	return count, nil
}
