package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

// StatusUseCase handles the legacy health-probe records.
type StatusUseCase struct {
	repo interfaces.Repository
}

func NewStatusUseCase(repo interfaces.Repository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

func (uc *StatusUseCase) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	if clientName == "" {
		return nil, goerr.Wrap(ErrInvalidArgument, "client_name is required")
	}

	check := model.NewStatusCheck(clientName, time.Now().UTC())
	created, err := uc.repo.Status().Create(ctx, check)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create status check")
	}
	return created, nil
}

func (uc *StatusUseCase) List(ctx context.Context) ([]*model.StatusCheck, error) {
	checks, err := uc.repo.Status().List(ctx, maxListResults)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list status checks")
	}
	return checks, nil
}
