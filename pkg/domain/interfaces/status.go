package interfaces

import (
	"context"

	"github.com/rebutly/rebutly/pkg/domain/model"
)

// StatusRepository defines the interface for legacy StatusCheck persistence.
type StatusRepository interface {
	// Create appends a status check record
	Create(ctx context.Context, check *model.StatusCheck) (*model.StatusCheck, error)

	// List retrieves up to limit status checks
	List(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}
