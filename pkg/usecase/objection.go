package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

// ObjectionUseCase handles objection CRUD and the favorite/usage operations.
type ObjectionUseCase struct {
	repo interfaces.Repository
}

func NewObjectionUseCase(repo interfaces.Repository) *ObjectionUseCase {
	return &ObjectionUseCase{repo: repo}
}

// ListObjectionsInput holds the optional listing criteria. Empty strings mean
// the criterion was not provided.
type ListObjectionsInput struct {
	Category      string
	Search        string
	FavoritesOnly bool
}

func (uc *ObjectionUseCase) List(ctx context.Context, input ListObjectionsInput) ([]*model.Objection, error) {
	query := interfaces.ListQuery{
		Condition: buildObjectionListCondition(input.Category, input.Search, input.FavoritesOnly),
		Limit:     maxListResults,
	}
	objections, err := uc.repo.Objection().List(ctx, query)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list objections")
	}
	return objections, nil
}

func (uc *ObjectionUseCase) Create(ctx context.Context, input model.ObjectionInput) (*model.Objection, error) {
	if input.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "title is required")
	}

	objection := model.NewObjection(input, time.Now().UTC())
	created, err := uc.repo.Objection().Create(ctx, objection)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create objection")
	}
	return created, nil
}

func (uc *ObjectionUseCase) Get(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	return uc.repo.Objection().Get(ctx, id)
}

func (uc *ObjectionUseCase) Update(ctx context.Context, id model.ObjectionID, patch *model.ObjectionPatch) (*model.Objection, error) {
	if patch.Title != nil && *patch.Title == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "title must not be empty")
	}

	updated, err := uc.repo.Objection().Update(ctx, id, patch)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update objection", goerr.V("id", id))
	}
	return updated, nil
}

func (uc *ObjectionUseCase) Delete(ctx context.Context, id model.ObjectionID) error {
	return uc.repo.Objection().Delete(ctx, id)
}

func (uc *ObjectionUseCase) ToggleFavorite(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	return uc.repo.Objection().ToggleFavorite(ctx, id)
}

func (uc *ObjectionUseCase) IncrementUsage(ctx context.Context, id model.ObjectionID) (*model.Objection, error) {
	return uc.repo.Objection().IncrementUsage(ctx, id)
}
