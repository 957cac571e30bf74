package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

type objectionRepository struct {
	mu         sync.RWMutex
	objections map[model.ObjectionID]*model.Objection
}

func newObjectionRepository() *objectionRepository {
	return &objectionRepository{
		objections: make(map[model.ObjectionID]*model.Objection),
	}
}

func copyObjection(o *model.Objection) *model.Objection {
	copied := &model.Objection{
		ID:         o.ID,
		Title:      o.Title,
		Category:   o.Category,
		IsFavorite: o.IsFavorite,
		UsageCount: o.UsageCount,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
	copied.Responses = make([]model.ObjectionResponse, len(o.Responses))
	copy(copied.Responses, o.Responses)
	copied.Tags = make([]string, len(o.Tags))
	copy(copied.Tags, o.Tags)
	return copied
}

func (r *objectionRepository) Create(ctx context.Context, objection *model.Objection) (*model.Objection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	created := copyObjection(objection)
	if created.ID == "" {
		created.ID = model.NewObjectionID()
	}
	if created.CreatedAt.IsZero() {
		created.CreatedAt = now
	}
	if created.UpdatedAt.IsZero() {
		created.UpdatedAt = now
	}

	r.objections[created.ID] = created
	return copyObjection(created), nil
}

func (r *objectionRepository) CreateMany(ctx context.Context, objections []*model.Objection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, objection := range objections {
		r.objections[objection.ID] = copyObjection(objection)
	}
	return nil
}

func (r *objectionRepository) Get(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	objection, exists := r.objections[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
	}
	return copyObjection(objection), nil
}

func (r *objectionRepository) List(ctx context.Context, query interfaces.ListQuery) ([]*model.Objection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.Objection, 0)
	for _, objection := range r.objections {
		if model.Matches(objection, query.Condition) {
			matched = append(matched, copyObjection(objection))
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].UpdatedAt.After(matched[j].UpdatedAt)
	})

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}

	return matched, nil
}

func (r *objectionRepository) Update(ctx context.Context, id model.ObjectionID, patch *model.ObjectionPatch) (*model.Objection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objection, exists := r.objections[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
	}

	updated := copyObjection(objection)
	for _, change := range patch.Changes(time.Now().UTC()) {
		switch change.Field {
		case model.FieldTitle:
			updated.Title = change.Value.(string)
		case model.FieldResponses:
			updated.Responses = change.Value.([]model.ObjectionResponse)
		case model.FieldCategory:
			updated.Category = change.Value.(string)
		case model.FieldTags:
			updated.Tags = change.Value.([]string)
		case model.FieldFavorite:
			updated.IsFavorite = change.Value.(bool)
		case model.FieldUpdatedAt:
			updated.UpdatedAt = change.Value.(time.Time)
		default:
			return nil, goerr.New("unexpected field change", goerr.V("field", change.Field))
		}
	}

	r.objections[id] = updated
	return copyObjection(updated), nil
}

func (r *objectionRepository) Delete(ctx context.Context, id model.ObjectionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.objections[id]; !exists {
		return goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
	}
	delete(r.objections, id)
	return nil
}

func (r *objectionRepository) ToggleFavorite(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objection, exists := r.objections[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
	}

	objection.IsFavorite = !objection.IsFavorite
	objection.UpdatedAt = time.Now().UTC()
	return copyObjection(objection), nil
}

func (r *objectionRepository) IncrementUsage(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	objection, exists := r.objections[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "objection not found", goerr.V("id", id))
	}

	objection.UsageCount++
	objection.UpdatedAt = time.Now().UTC()
	return copyObjection(objection), nil
}

func (r *objectionRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.objections), nil
}
