package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mebelart/admin-service/internal/dashboard"
	"github.com/mebelart/admin-service/internal/dashboard/dto"
	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const recentOrdersLimit = 5

var countedCollections = []string{
	"products", "tables", "shelves", "chests",
	"categories", "gallery", "orders", "contactRequests",
}

type statsUseCase struct {
	db     store.DocumentStore
	logger *zap.Logger
}

func NewStatsUseCase(db store.DocumentStore, logger *zap.Logger) dashboard.UseCase {
	return &statsUseCase{db: db, logger: logger}
}

func (uc *statsUseCase) Stats(ctx context.Context) (*dto.Stats, error) {
	stats := &dto.Stats{
		Counts:       make(map[string]int, len(countedCollections)),
		RecentOrders: []*model.Order{},
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for _, collection := range countedCollections {
		g.Go(func() error {
			docs, err := uc.db.ListAll(ctx, collection)
			if err != nil {
				return err
			}
			mu.Lock()
			stats.Counts[collection] = len(docs)
			mu.Unlock()
			return nil
		})
	}

	g.Go(func() error {
		docs, err := uc.db.List(ctx, "contactRequests", store.Query{
			Filters: []store.Filter{{Field: "status", Op: "==", Value: model.RequestStatusNew}},
		})
		if err != nil {
			return err
		}
		mu.Lock()
		stats.NewRequests = len(docs)
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		docs, err := uc.db.List(ctx, "orders", store.Query{
			OrderBy: "createdAt",
			Desc:    true,
			Limit:   recentOrdersLimit,
		})
		if err != nil {
			return err
		}
		orders := make([]*model.Order, 0, len(docs))
		for _, doc := range docs {
			var order model.Order
			if err := doc.Decode(&order); err != nil {
				return err
			}
			order.SetID(doc.ID)
			orders = append(orders, &order)
		}
		mu.Lock()
		stats.RecentOrders = orders
		mu.Unlock()
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
