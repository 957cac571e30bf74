package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/domain/model"
)

func runStatusRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create appends a status check", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		clientName := fmt.Sprintf("client-%d", time.Now().UnixNano())
		check := model.NewStatusCheck(clientName, time.Now().UTC().Truncate(time.Millisecond))

		created, err := repo.Status().Create(ctx, check)
		gt.NoError(t, err).Required()
		gt.Value(t, created.ID).Equal(check.ID)
		gt.Value(t, created.ClientName).Equal(clientName)

		checks, err := repo.Status().List(ctx, 0)
		gt.NoError(t, err).Required()

		found := false
		for _, c := range checks {
			if c.ID == check.ID {
				found = true
				gt.Value(t, c.ClientName).Equal(clientName)
			}
		}
		gt.Bool(t, found).True()
	})

	t.Run("List respects the limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		base := time.Now().UTC().Truncate(time.Millisecond)
		for i := 0; i < 3; i++ {
			check := model.NewStatusCheck(fmt.Sprintf("limit-client-%d", i), base.Add(time.Duration(i)*time.Second))
			_, err := repo.Status().Create(ctx, check)
			gt.NoError(t, err).Required()
		}

		checks, err := repo.Status().List(ctx, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, checks).Length(2)
	})
}

func TestMemoryStatusRepository(t *testing.T) {
	runStatusRepositoryTest(t, newMemoryRepository)
}

func TestFirestoreStatusRepository(t *testing.T) {
	runStatusRepositoryTest(t, newFirestoreRepository)
}
