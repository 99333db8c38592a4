package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const (
	ordersCollection   = "orders"
	requestsCollection = "contactRequests"
)

type StoreRepository struct {
	db store.DocumentStore
}

func NewStoreRepository(db store.DocumentStore) *StoreRepository {
	return &StoreRepository{db: db}
}

func encodeOrder(o *model.Order) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"id":          it.ID,
			"name":        it.Name,
			"quantity":    it.Quantity,
			"price":       it.Price,
			"description": it.Description,
			"isCustom":    it.IsCustom,
			"productId":   it.ProductID,
		})
	}
	return map[string]any{
		"name":          o.Name,
		"phone":         o.Phone,
		"email":         o.Email,
		"status":        o.Status,
		"items":         items,
		"total":         o.Total,
		"notes":         o.Notes,
		"fromRequestId": o.FromRequestID,
		"createdAt":     o.CreatedAt,
	}
}

func decodeOrder(doc *store.Document) (*model.Order, error) {
	var o model.Order
	if err := doc.Decode(&o); err != nil {
		return nil, err
	}
	o.SetID(doc.ID)
	return &o, nil
}

func encodeRequest(r *model.ContactRequest) map[string]any {
	return map[string]any{
		"name":      r.Name,
		"phone":     r.Phone,
		"email":     r.Email,
		"message":   r.Message,
		"source":    r.Source,
		"status":    r.Status,
		"createdAt": r.CreatedAt,
	}
}

func decodeRequest(doc *store.Document) (*model.ContactRequest, error) {
	var r model.ContactRequest
	if err := doc.Decode(&r); err != nil {
		return nil, err
	}
	r.SetID(doc.ID)
	return &r, nil
}

func (r *StoreRepository) CreateOrder(ctx context.Context, o *model.Order) error {
	return r.db.Create(ctx, ordersCollection, o.ID, encodeOrder(o))
}

func (r *StoreRepository) FindOrderByID(ctx context.Context, id string) (*model.Order, error) {
	doc, err := r.db.Get(ctx, ordersCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return decodeOrder(doc)
}

func (r *StoreRepository) FindAllOrders(ctx context.Context) ([]model.Order, error) {
	docs, err := r.db.List(ctx, ordersCollection, store.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(docs))
	for i := range docs {
		o, err := decodeOrder(&docs[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	return orders, nil
}

// FindOrdersFromRequests returns orders that reference an originating contact
// request. Collections are small enough for a full read, so the filtering
// happens here rather than in a store query.
func (r *StoreRepository) FindOrdersFromRequests(ctx context.Context) ([]model.Order, error) {
	all, err := r.FindAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	for _, o := range all {
		if o.FromRequestID != "" {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *StoreRepository) UpdateOrderStatus(ctx context.Context, id, status string) error {
	return r.db.Update(ctx, ordersCollection, id, map[string]any{"status": status})
}

func (r *StoreRepository) DeleteOrder(ctx context.Context, id string) error {
	return r.db.Delete(ctx, ordersCollection, id)
}

func (r *StoreRepository) CreateRequest(ctx context.Context, req *model.ContactRequest) error {
	return r.db.Create(ctx, requestsCollection, req.ID, encodeRequest(req))
}

func (r *StoreRepository) FindRequestByID(ctx context.Context, id string) (*model.ContactRequest, error) {
	doc, err := r.db.Get(ctx, requestsCollection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return decodeRequest(doc)
}

func (r *StoreRepository) FindAllRequests(ctx context.Context) ([]model.ContactRequest, error) {
	docs, err := r.db.List(ctx, requestsCollection, store.Query{OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}

	requests := make([]model.ContactRequest, 0, len(docs))
	for i := range docs {
		req, err := decodeRequest(&docs[i])
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, nil
}

func (r *StoreRepository) UpdateRequestStatus(ctx context.Context, id, status string) error {
	return r.db.Update(ctx, requestsCollection, id, map[string]any{"status": status})
}

func (r *StoreRepository) DeleteRequest(ctx context.Context, id string) error {
	return r.db.Delete(ctx, requestsCollection, id)
}
