package dto

// OrderItemInput is one assembled line item. Catalog-sourced items carry a
// ProductID and have their name/price/description snapshotted server-side;
// ad hoc items supply those fields directly.
type OrderItemInput struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"required,gt=0"`
	Description string  `json:"description"`
	IsCustom    bool    `json:"isCustom"`
}

type CreateOrderInput struct {
	Name  string           `json:"name" binding:"required"`
	Phone string           `json:"phone" binding:"required"`
	Email string           `json:"email"`
	Items []OrderItemInput `json:"items"`
	Notes string           `json:"notes"`
}

type CreateRequestInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Source  string `json:"source"`
}

type ConvertRequestInput struct {
	RequestID string           `json:"-"`
	Items     []OrderItemInput `json:"items"`
	Notes     string           `json:"notes"`
}

type ReconcileResult struct {
	Scanned  int `json:"scanned"`
	Repaired int `json:"repaired"`
}
