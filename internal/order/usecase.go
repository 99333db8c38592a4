package order

import (
	"context"
	"errors"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/order/dto"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrRequestNotFound  = errors.New("contact request not found")
	ErrNoItems          = errors.New("order must contain at least one item")
	ErrAlreadyConverted = errors.New("contact request already converted")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrUnknownProduct   = errors.New("catalog product not found")
)

// CatalogReader resolves catalog-sourced line items at assembly time.
type CatalogReader interface {
	FindByID(ctx context.Context, id string) (*model.Product, error)
}

type UseCase interface {
	CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
	DeleteOrder(ctx context.Context, id string) error

	CreateRequest(ctx context.Context, input *dto.CreateRequestInput) (*model.ContactRequest, error)
	ListRequests(ctx context.Context) ([]model.ContactRequest, error)
	UpdateRequestStatus(ctx context.Context, id, status string) error
	DeleteRequest(ctx context.Context, id string) error

	// ConvertRequest creates an order from a contact request and then marks
	// the request converted. The order write is committed before the status
	// write is attempted.
	ConvertRequest(ctx context.Context, input *dto.ConvertRequestInput) (*model.Order, error)

	// ReconcileConversions repairs requests referenced by an order but left
	// un-converted by a failure between the two conversion writes.
	ReconcileConversions(ctx context.Context) (*dto.ReconcileResult, error)
}
