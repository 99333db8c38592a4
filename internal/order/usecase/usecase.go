package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/events"
	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/order"
	"github.com/mebelart/admin-service/internal/order/dto"
)

type orderUseCase struct {
	repo      order.Repository
	catalog   order.CatalogReader
	publisher *events.Publisher
	logger    *zap.Logger
}

func NewOrderUseCase(repo order.Repository, catalog order.CatalogReader, publisher *events.Publisher, logger *zap.Logger) order.UseCase {
	return &orderUseCase{
		repo:      repo,
		catalog:   catalog,
		publisher: publisher,
		logger:    logger,
	}
}

// assembleItems resolves the line items and computes the stored total.
// Catalog-sourced items snapshot the product's current name, price and
// description; a later catalog price change does not touch existing orders.
func (uc *orderUseCase) assembleItems(ctx context.Context, inputs []dto.OrderItemInput) ([]model.OrderItem, float64, error) {
	if len(inputs) == 0 {
		return nil, 0, order.ErrNoItems
	}

	items := make([]model.OrderItem, 0, len(inputs))
	total := 0.0
	for _, in := range inputs {
		item := model.OrderItem{
			ID:          uuid.New().String(),
			Name:        in.Name,
			Quantity:    in.Quantity,
			Price:       in.Price,
			Description: in.Description,
			IsCustom:    in.IsCustom,
		}

		if !in.IsCustom {
			p, err := uc.catalog.FindByID(ctx, in.ProductID)
			if err != nil {
				return nil, 0, err
			}
			if p == nil {
				return nil, 0, order.ErrUnknownProduct
			}
			item.ProductID = p.ID
			item.Name = p.Name
			item.Price = p.Price
			item.Description = p.Description
		}

		total += item.Price * float64(item.Quantity)
		items = append(items, item)
	}
	return items, total, nil
}

func (uc *orderUseCase) CreateOrder(ctx context.Context, input *dto.CreateOrderInput) (*model.Order, error) {
	items, total, err := uc.assembleItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Status:    model.OrderStatusNew,
		Items:     items,
		Total:     total,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	uc.publisher.Publish(ctx, events.TypeOrderCreated, o)
	return o, nil
}

func (uc *orderUseCase) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	return uc.repo.FindOrderByID(ctx, id)
}

func (uc *orderUseCase) ListOrders(ctx context.Context) ([]model.Order, error) {
	return uc.repo.FindAllOrders(ctx)
}

func (uc *orderUseCase) UpdateOrderStatus(ctx context.Context, id, status string) error {
	if !model.ValidOrderStatus(status) {
		return order.ErrInvalidStatus
	}

	o, err := uc.repo.FindOrderByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return order.ErrOrderNotFound
	}
	return uc.repo.UpdateOrderStatus(ctx, id, status)
}

func (uc *orderUseCase) DeleteOrder(ctx context.Context, id string) error {
	return uc.repo.DeleteOrder(ctx, id)
}

func (uc *orderUseCase) CreateRequest(ctx context.Context, input *dto.CreateRequestInput) (*model.ContactRequest, error) {
	source := input.Source
	if source == "" {
		source = "manual"
	}

	req := &model.ContactRequest{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		Message:   input.Message,
		Source:    source,
		Status:    model.RequestStatusNew,
		CreatedAt: time.Now(),
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (uc *orderUseCase) ListRequests(ctx context.Context) ([]model.ContactRequest, error) {
	return uc.repo.FindAllRequests(ctx)
}

func (uc *orderUseCase) UpdateRequestStatus(ctx context.Context, id, status string) error {
	if !model.ValidRequestStatus(status) {
		return order.ErrInvalidStatus
	}

	req, err := uc.repo.FindRequestByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return order.ErrRequestNotFound
	}
	return uc.repo.UpdateRequestStatus(ctx, id, status)
}

func (uc *orderUseCase) DeleteRequest(ctx context.Context, id string) error {
	return uc.repo.DeleteRequest(ctx, id)
}

func (uc *orderUseCase) ConvertRequest(ctx context.Context, input *dto.ConvertRequestInput) (*model.Order, error) {
	if len(input.Items) == 0 {
		return nil, order.ErrNoItems
	}

	req, err := uc.repo.FindRequestByID(ctx, input.RequestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, order.ErrRequestNotFound
	}
	if req.Status == model.RequestStatusConverted {
		return nil, order.ErrAlreadyConverted
	}

	items, total, err := uc.assembleItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	o := &model.Order{
		ID:            uuid.New().String(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Status:        model.OrderStatusNew,
		Items:         items,
		Total:         total,
		Notes:         input.Notes,
		FromRequestID: req.ID,
		CreatedAt:     time.Now(),
	}

	// The order must be durably created before the request is marked
	// converted. A failure between the two writes leaves an orphaned order
	// and the request in its prior status; ReconcileConversions repairs that.
	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateRequestStatus(ctx, req.ID, model.RequestStatusConverted); err != nil {
		uc.logger.Error("order created but request not marked converted",
			zap.String("order_id", o.ID),
			zap.String("request_id", req.ID),
			zap.Error(err))
		return nil, err
	}

	uc.publisher.Publish(ctx, events.TypeRequestConverted, o)
	return o, nil
}

func (uc *orderUseCase) ReconcileConversions(ctx context.Context) (*dto.ReconcileResult, error) {
	orders, err := uc.repo.FindOrdersFromRequests(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.ReconcileResult{Scanned: len(orders)}
	for _, o := range orders {
		req, err := uc.repo.FindRequestByID(ctx, o.FromRequestID)
		if err != nil {
			return result, err
		}
		if req == nil || req.Status == model.RequestStatusConverted {
			continue
		}

		if err := uc.repo.UpdateRequestStatus(ctx, req.ID, model.RequestStatusConverted); err != nil {
			return result, err
		}
		uc.logger.Info("repaired request left un-converted",
			zap.String("request_id", req.ID),
			zap.String("order_id", o.ID))
		result.Repaired++
	}
	return result, nil
}
