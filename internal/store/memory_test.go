package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	err := s.Create(ctx, "categories", "c1", map[string]any{"name": "Гостиные", "slug": "gostinye"})
	require.NoError(t, err)

	doc, err := s.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Гостиные", doc.Data["name"])

	err = s.Create(ctx, "categories", "c1", map[string]any{"name": "dup"})
	assert.Error(t, err)
}

func TestMemoryGetAbsentReturnsNilNil(t *testing.T) {
	s := NewMemory()

	doc, err := s.Get(context.Background(), "categories", "missing")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryUpdateMergesFields(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Create(ctx, "orders", "o1", map[string]any{
		"status": "new",
		"total":  250.0,
	}))
	require.NoError(t, s.Update(ctx, "orders", "o1", map[string]any{"status": "processed"}))

	doc, err := s.Get(ctx, "orders", "o1")
	require.NoError(t, err)
	assert.Equal(t, "processed", doc.Data["status"])
	assert.Equal(t, 250.0, doc.Data["total"])
}

func TestMemoryDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	require.NoError(t, s.Create(ctx, "orders", "o1", map[string]any{"status": "new"}))
	require.NoError(t, s.Delete(ctx, "orders", "o1"))
	require.NoError(t, s.Delete(ctx, "orders", "o1"))

	doc, err := s.Get(ctx, "orders", "o1")
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryListFilterOrderLimit(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, status := range []string{"new", "new", "completed"} {
		require.NoError(t, s.Create(ctx, "orders", "o"+strings.Repeat("x", i+1), map[string]any{
			"status":    status,
			"createdAt": base.Add(time.Duration(i) * time.Hour),
		}))
	}

	docs, err := s.List(ctx, "orders", Query{
		Filters: []Filter{{Field: "status", Op: "==", Value: "new"}},
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = s.List(ctx, "orders", Query{OrderBy: "createdAt", Desc: true, Limit: 1})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "oxxx", docs[0].ID)
}

func TestMemoryObjectsPrefixListing(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryObjects()

	_, err := s.Upload(ctx, "gallery/a.jpg", strings.NewReader("a"), "image/jpeg")
	require.NoError(t, err)
	_, err = s.Upload(ctx, "gallery/b.jpg", strings.NewReader("b"), "image/jpeg")
	require.NoError(t, err)
	_, err = s.Upload(ctx, "products/c.jpg", strings.NewReader("c"), "image/jpeg")
	require.NoError(t, err)

	paths, err := s.List(ctx, "gallery/")
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery/a.jpg", "gallery/b.jpg"}, paths)

	require.NoError(t, s.Delete(ctx, "gallery/a.jpg"))
	require.NoError(t, s.Delete(ctx, "gallery/a.jpg"))

	paths, err = s.List(ctx, "gallery/")
	require.NoError(t, err)
	assert.Equal(t, []string{"gallery/b.jpg"}, paths)
}
