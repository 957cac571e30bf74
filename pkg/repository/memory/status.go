package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rebutly/rebutly/pkg/domain/model"
)

type statusRepository struct {
	mu     sync.RWMutex
	checks []*model.StatusCheck
}

func newStatusRepository() *statusRepository {
	return &statusRepository{}
}

func (r *statusRepository) Create(ctx context.Context, check *model.StatusCheck) (*model.StatusCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := *check
	if created.ID == "" {
		created.ID = model.NewStatusCheckID()
	}
	if created.Timestamp.IsZero() {
		created.Timestamp = time.Now().UTC()
	}

	r.checks = append(r.checks, &created)
	result := created
	return &result, nil
}

func (r *statusRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.checks)
	if limit > 0 && n > limit {
		n = limit
	}

	checks := make([]*model.StatusCheck, 0, n)
	for _, check := range r.checks[:n] {
		copied := *check
		checks = append(checks, &copied)
	}
	return checks, nil
}
