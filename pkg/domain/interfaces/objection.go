package interfaces

import (
	"context"

	"github.com/rebutly/rebutly/pkg/domain/model"
)

// ListQuery filters and caps a listing. A nil Condition matches everything.
// Limit <= 0 means no cap.
type ListQuery struct {
	Condition model.Condition
	Limit     int
}

// ObjectionRepository defines the interface for Objection data persistence.
// List returns objections ordered by UpdatedAt descending.
type ObjectionRepository interface {
	// Create persists a new objection
	Create(ctx context.Context, objection *model.Objection) (*model.Objection, error)

	// CreateMany persists a batch of objections in one store operation
	CreateMany(ctx context.Context, objections []*model.Objection) error

	// Get retrieves an objection by ID
	Get(ctx context.Context, id model.ObjectionID) (*model.Objection, error)

	// List retrieves objections matching the query, most recently updated first
	List(ctx context.Context, query ListQuery) ([]*model.Objection, error)

	// Update applies a partial field set as a single atomic mutation.
	// It fails with model.ErrNotFound when no document matches the ID and
	// never creates one.
	Update(ctx context.Context, id model.ObjectionID, patch *model.ObjectionPatch) (*model.Objection, error)

	// Delete removes an objection by ID
	Delete(ctx context.Context, id model.ObjectionID) error

	// ToggleFavorite atomically negates the favorite flag
	ToggleFavorite(ctx context.Context, id model.ObjectionID) (*model.Objection, error)

	// IncrementUsage atomically increments the usage count by one
	IncrementUsage(ctx context.Context, id model.ObjectionID) (*model.Objection, error)

	// Count returns the number of stored objections
	Count(ctx context.Context) (int, error)
}
