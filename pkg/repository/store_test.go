package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/rebutly/rebutly/pkg/domain/interfaces"
	"github.com/rebutly/rebutly/pkg/repository/firestore"
	"github.com/rebutly/rebutly/pkg/repository/memory"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()

	var options []firestore.Option
	// An optional prefix isolates test collections, at the cost of the
	// composite indexes only existing on the unprefixed collections. Without
	// it, isolation comes from unique categories and IDs in the test data.
	if prefix := os.Getenv("TEST_FIRESTORE_COLLECTION_PREFIX"); prefix != "" {
		options = append(options, firestore.WithCollectionPrefix(prefix))
	}

	repo, err := firestore.New(ctx, projectID, databaseID, options...)
	if err != nil {
		t.Fatalf("failed to create firestore repository: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("failed to close firestore repository: %v", err)
		}
	})
	return repo
}
