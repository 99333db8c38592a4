package model

import "time"

// Order statuses, matching the vocabulary rendered by the orders UI.
const (
	OrderStatusNew          = "new"
	OrderStatusProcessed    = "processed"
	OrderStatusInProduction = "in_production"
	OrderStatusShipping     = "shipping"
	OrderStatusCompleted    = "completed"
	OrderStatusCancelled    = "cancelled"
)

const (
	RequestStatusNew       = "new"
	RequestStatusContacted = "contacted"
	RequestStatusConverted = "converted"
	RequestStatusClosed    = "closed"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusProcessed, OrderStatusInProduction,
		OrderStatusShipping, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestStatusNew, RequestStatusContacted, RequestStatusConverted, RequestStatusClosed:
		return true
	}
	return false
}

// OrderItem is a line item snapshot. Catalog-sourced items copy name, price
// and description from the product at assembly time; ad hoc items are entered
// free-form with IsCustom set.
type OrderItem struct {
	ID          string  `firestore:"id" json:"id"`
	Name        string  `firestore:"name" json:"name"`
	Quantity    int     `firestore:"quantity" json:"quantity"`
	Price       float64 `firestore:"price" json:"price"`
	Description string  `firestore:"description" json:"description"`
	IsCustom    bool    `firestore:"isCustom" json:"isCustom"`
	ProductID   string  `firestore:"productId" json:"productId,omitempty"`
}

// Order.Total is computed as the sum of item price×quantity at creation and
// stored; items are not editable afterwards, so it is never recomputed.
type Order struct {
	ID            string      `firestore:"-" json:"id"`
	Name          string      `firestore:"name" json:"name"`
	Phone         string      `firestore:"phone" json:"phone"`
	Email         string      `firestore:"email" json:"email,omitempty"`
	Status        string      `firestore:"status" json:"status"`
	Items         []OrderItem `firestore:"items" json:"items"`
	Total         float64     `firestore:"total" json:"total"`
	Notes         string      `firestore:"notes" json:"notes,omitempty"`
	FromRequestID string      `firestore:"fromRequestId" json:"fromRequestId,omitempty"`
	CreatedAt     time.Time   `firestore:"createdAt" json:"createdAt"`
}

func (o *Order) SetID(id string) { o.ID = id }

type ContactRequest struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	Phone     string    `firestore:"phone" json:"phone"`
	Email     string    `firestore:"email" json:"email,omitempty"`
	Message   string    `firestore:"message" json:"message,omitempty"`
	Source    string    `firestore:"source" json:"source"` // website, phone, manual
	Status    string    `firestore:"status" json:"status"`
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

func (r *ContactRequest) SetID(id string) { r.ID = id }
