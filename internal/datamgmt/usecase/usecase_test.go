package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/datamgmt"
	"github.com/mebelart/admin-service/internal/store"
)

func seedDocs(t *testing.T, db store.DocumentStore, collection string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("doc-%d", i)
		require.NoError(t, db.Create(context.Background(), collection, id, map[string]any{"name": id}))
	}
}

func TestPurgeDeletesEveryDocument(t *testing.T) {
	ctx := context.Background()
	db := store.NewMemory()
	objects := store.NewMemoryObjects()
	uc := NewPurgeUseCase(db, objects, nil, zap.NewNop())

	seedDocs(t, db, "orders", 7)

	var calls []int
	deleted, err := uc.Purge(ctx, "orders", func(done, total int) {
		assert.Equal(t, 7, total)
		calls = append(calls, done)
	})
	require.NoError(t, err)
	assert.Equal(t, 7, deleted)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, calls)

	docs, err := db.ListAll(ctx, "orders")
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestPurgeEmptyCollection(t *testing.T) {
	uc := NewPurgeUseCase(store.NewMemory(), store.NewMemoryObjects(), nil, zap.NewNop())

	deleted, err := uc.Purge(context.Background(), "categories", nil)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestPurgeUnknownCollection(t *testing.T) {
	uc := NewPurgeUseCase(store.NewMemory(), store.NewMemoryObjects(), nil, zap.NewNop())

	_, err := uc.Purge(context.Background(), "audit_log", nil)
	assert.ErrorIs(t, err, datamgmt.ErrUnknownCollection)
}

func TestPurgeRemovesStoredImages(t *testing.T) {
	ctx := context.Background()
	db := store.NewMemory()
	objects := store.NewMemoryObjects()
	uc := NewPurgeUseCase(db, objects, nil, zap.NewNop())

	seedDocs(t, db, "gallery", 2)
	_, err := objects.Upload(ctx, "gallery/a.jpg", strings.NewReader("a"), "image/jpeg")
	require.NoError(t, err)
	_, err = objects.Upload(ctx, "products/keep.jpg", strings.NewReader("k"), "image/jpeg")
	require.NoError(t, err)

	deleted, err := uc.Purge(ctx, "gallery", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	paths, err := objects.List(ctx, "gallery/")
	require.NoError(t, err)
	assert.Empty(t, paths)

	paths, err = objects.List(ctx, "products/")
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

// failingStore aborts deletion after a fixed number of successes.
type failingStore struct {
	store.DocumentStore
	remaining int
}

func (s *failingStore) Delete(ctx context.Context, collection, id string) error {
	if s.remaining <= 0 {
		return errors.New("store unavailable")
	}
	s.remaining--
	return s.DocumentStore.Delete(ctx, collection, id)
}

func TestPurgeReportsPartialCountOnFailure(t *testing.T) {
	ctx := context.Background()
	db := store.NewMemory()
	uc := NewPurgeUseCase(&failingStore{DocumentStore: db, remaining: 3}, store.NewMemoryObjects(), nil, zap.NewNop())

	seedDocs(t, db, "orders", 5)

	deleted, err := uc.Purge(ctx, "orders", nil)
	require.Error(t, err)
	assert.Equal(t, 3, deleted)

	docs, err := db.ListAll(ctx, "orders")
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

// failingObjects refuses listing so storage cleanup cannot run.
type failingObjects struct {
	store.ObjectStore
}

func (s *failingObjects) List(context.Context, string) ([]string, error) {
	return nil, errors.New("bucket unavailable")
}

func TestPurgeSwallowsStorageCleanupFailure(t *testing.T) {
	ctx := context.Background()
	db := store.NewMemory()
	uc := NewPurgeUseCase(db, &failingObjects{}, nil, zap.NewNop())

	seedDocs(t, db, "products", 3)

	deleted, err := uc.Purge(ctx, "products", nil)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
}

func TestCollectionsListsPurgeableNames(t *testing.T) {
	uc := NewPurgeUseCase(store.NewMemory(), store.NewMemoryObjects(), nil, zap.NewNop())

	names := uc.Collections()
	assert.Contains(t, names, "contactRequests")
	assert.Contains(t, names, "users")
	assert.Len(t, names, 9)
}
