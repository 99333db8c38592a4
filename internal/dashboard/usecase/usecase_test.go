package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	orderrepo "github.com/mebelart/admin-service/internal/order/repository"
	"github.com/mebelart/admin-service/internal/store"
)

func TestStatsCountsAndRecentOrders(t *testing.T) {
	ctx := context.Background()
	db := store.NewMemory()
	orders := orderrepo.NewStoreRepository(db)

	base := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		require.NoError(t, orders.CreateOrder(ctx, &model.Order{
			ID:        fmt.Sprintf("o%d", i),
			Name:      "Клиент",
			Phone:     "+375290000000",
			Status:    model.OrderStatusNew,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, orders.CreateRequest(ctx, &model.ContactRequest{
		ID: "r1", Name: "a", Phone: "1", Status: model.RequestStatusNew, CreatedAt: base,
	}))
	require.NoError(t, orders.CreateRequest(ctx, &model.ContactRequest{
		ID: "r2", Name: "b", Phone: "2", Status: model.RequestStatusConverted, CreatedAt: base,
	}))
	require.NoError(t, db.Create(ctx, "tables", "t1", map[string]any{"name": "Стол"}))

	uc := NewStatsUseCase(db, zap.NewNop())
	stats, err := uc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 7, stats.Counts["orders"])
	assert.Equal(t, 1, stats.Counts["tables"])
	assert.Equal(t, 0, stats.Counts["products"])
	assert.Equal(t, 2, stats.Counts["contactRequests"])
	assert.Equal(t, 1, stats.NewRequests)

	// Newest first, capped at five.
	require.Len(t, stats.RecentOrders, 5)
	assert.Equal(t, "o6", stats.RecentOrders[0].ID)
	assert.Equal(t, "o2", stats.RecentOrders[4].ID)
}

func TestStatsEmptyStore(t *testing.T) {
	uc := NewStatsUseCase(store.NewMemory(), zap.NewNop())

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.NewRequests)
	assert.Empty(t, stats.RecentOrders)
	assert.Equal(t, 0, stats.Counts["gallery"])
}
