package order

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
)

type Repository interface {
	CreateOrder(ctx context.Context, o *model.Order) error
	FindOrderByID(ctx context.Context, id string) (*model.Order, error)
	FindAllOrders(ctx context.Context) ([]model.Order, error)
	FindOrdersFromRequests(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	DeleteOrder(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, r *model.ContactRequest) error
	FindRequestByID(ctx context.Context, id string) (*model.ContactRequest, error)
	FindAllRequests(ctx context.Context) ([]model.ContactRequest, error)
	UpdateRequestStatus(ctx context.Context, id, status string) error
	DeleteRequest(ctx context.Context, id string) error
}
