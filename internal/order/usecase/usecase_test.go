package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/order"
	"github.com/mebelart/admin-service/internal/order/dto"
	"github.com/mebelart/admin-service/internal/order/repository"
	"github.com/mebelart/admin-service/internal/store"
)

type fakeCatalog struct {
	products map[string]*model.Product
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (*model.Product, error) {
	return f.products[id], nil
}

// failingRepo fails the request status write, simulating a crash between the
// two conversion writes.
type failingRepo struct {
	order.Repository
	failStatus bool
}

func (r *failingRepo) UpdateRequestStatus(ctx context.Context, id, status string) error {
	if r.failStatus {
		return errors.New("store unavailable")
	}
	return r.Repository.UpdateRequestStatus(ctx, id, status)
}

func newTestCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[string]*model.Product{
		"p1": {
			BaseItem: model.BaseItem{
				BaseModel:   model.BaseModel{ID: "p1"},
				Name:        "Стол дубовый",
				Description: "Массив дуба",
				Price:       100,
			},
		},
	}}
}

func seedRequest(t *testing.T, repo order.Repository) *model.ContactRequest {
	t.Helper()
	req := &model.ContactRequest{
		ID:        "r1",
		Name:      "Иван",
		Phone:     "+375291234567",
		Email:     "ivan@example.com",
		Source:    "website",
		Status:    model.RequestStatusNew,
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.CreateRequest(context.Background(), req))
	return req
}

func TestConvertRequestCreatesOrderAndMarksConverted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, repo)

	o, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{
		RequestID: req.ID,
		Items: []dto.OrderItemInput{
			{ProductID: "p1", Quantity: 2},
			{Name: "Полка на заказ", Price: 50, Quantity: 1, IsCustom: true},
		},
		Notes: "срочный заказ",
	})
	require.NoError(t, err)

	// Contact fields carry over from the request; catalog items snapshot the
	// product, ad hoc items keep their entered values.
	assert.Equal(t, req.ID, o.FromRequestID)
	assert.Equal(t, "Иван", o.Name)
	assert.Equal(t, model.OrderStatusNew, o.Status)
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Стол дубовый", o.Items[0].Name)
	assert.Equal(t, 100.0, o.Items[0].Price)
	assert.Equal(t, 250.0, o.Total)

	stored, err := repo.FindRequestByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusConverted, stored.Status)
}

func TestConvertRequestRejectsEmptyItems(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, repo)

	_, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{RequestID: req.ID})
	assert.ErrorIs(t, err, order.ErrNoItems)

	orders, err := repo.FindAllOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	stored, err := repo.FindRequestByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusNew, stored.Status)
}

func TestConvertRequestRejectsAlreadyConverted(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, repo)
	require.NoError(t, repo.UpdateRequestStatus(ctx, req.ID, model.RequestStatusConverted))

	_, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{
		RequestID: req.ID,
		Items:     []dto.OrderItemInput{{Name: "x", Price: 1, Quantity: 1, IsCustom: true}},
	})
	assert.ErrorIs(t, err, order.ErrAlreadyConverted)
}

func TestConvertRequestUnknownProduct(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, repo)

	_, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{
		RequestID: req.ID,
		Items:     []dto.OrderItemInput{{ProductID: "missing", Quantity: 1}},
	})
	assert.ErrorIs(t, err, order.ErrUnknownProduct)
}

func TestConvertRequestStatusWriteFailureLeavesOrphanedOrder(t *testing.T) {
	ctx := context.Background()
	base := repository.NewStoreRepository(store.NewMemory())
	repo := &failingRepo{Repository: base, failStatus: true}
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, base)

	_, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{
		RequestID: req.ID,
		Items:     []dto.OrderItemInput{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)

	// The order write committed, the status write did not.
	orders, err := base.FindAllOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, req.ID, orders[0].FromRequestID)

	stored, err := base.FindRequestByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusNew, stored.Status)
}

func TestReconcileConversionsRepairsOrphans(t *testing.T) {
	ctx := context.Background()
	base := repository.NewStoreRepository(store.NewMemory())
	repo := &failingRepo{Repository: base, failStatus: true}
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	req := seedRequest(t, base)

	_, err := uc.ConvertRequest(ctx, &dto.ConvertRequestInput{
		RequestID: req.ID,
		Items:     []dto.OrderItemInput{{ProductID: "p1", Quantity: 1}},
	})
	require.Error(t, err)

	repo.failStatus = false
	result, err := uc.ReconcileConversions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Repaired)

	stored, err := base.FindRequestByID(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestStatusConverted, stored.Status)

	// Re-running finds nothing left to repair.
	result, err = uc.ReconcileConversions(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Repaired)
}

func TestUpdateOrderStatusValidation(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewStoreRepository(store.NewMemory())
	uc := NewOrderUseCase(repo, newTestCatalog(), nil, zap.NewNop())

	created, err := uc.CreateOrder(ctx, &dto.CreateOrderInput{
		Name:  "Анна",
		Phone: "+375337654321",
		Items: []dto.OrderItemInput{{Name: "Комод", Price: 300, Quantity: 1, IsCustom: true}},
	})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.UpdateOrderStatus(ctx, created.ID, "bogus"), order.ErrInvalidStatus)
	assert.ErrorIs(t, uc.UpdateOrderStatus(ctx, "missing", model.OrderStatusProcessed), order.ErrOrderNotFound)

	require.NoError(t, uc.UpdateOrderStatus(ctx, created.ID, model.OrderStatusInProduction))
	got, err := uc.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusInProduction, got.Status)
}
