package dto

// ItemFields are the base fields shared by every catalog kind.
type ItemFields struct {
	Name        string   `json:"name" binding:"required"`
	Price       float64  `json:"price" binding:"gte=0"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	Images      []string `json:"images"`
	InStock     bool     `json:"inStock"`
	Featured    bool     `json:"featured"`
}

type DimensionsInput struct {
	Length float64 `json:"length" binding:"gte=0"`
	Width  float64 `json:"width" binding:"gte=0"`
	Height float64 `json:"height" binding:"gte=0"`
}

type CreateProductInput struct {
	ItemFields
	Category string `json:"category"`
}

type UpdateProductInput struct {
	ID string `json:"-"`
	CreateProductInput
}

type CreateTableInput struct {
	ItemFields
	Material        string          `json:"material"`
	Shape           string          `json:"shape"`
	Dimensions      DimensionsInput `json:"dimensions"`
	SeatingCapacity int             `json:"seatingCapacity" binding:"gte=0"`
}

type UpdateTableInput struct {
	ID string `json:"-"`
	CreateTableInput
}

type CreateShelfInput struct {
	ItemFields
	Material   string          `json:"material"`
	MountType  string          `json:"mountType"`
	Dimensions DimensionsInput `json:"dimensions"`
	ShelfCount int             `json:"shelfCount" binding:"gte=0"`
	MaxWeight  float64         `json:"maxWeight" binding:"gte=0"`
}

type UpdateShelfInput struct {
	ID string `json:"-"`
	CreateShelfInput
}

type CreateChestInput struct {
	ItemFields
	Material    string          `json:"material"`
	DrawerCount int             `json:"drawerCount" binding:"gte=0"`
	Dimensions  DimensionsInput `json:"dimensions"`
	HandleType  string          `json:"handleType"`
	HasLock     bool            `json:"hasLock"`
}

type UpdateChestInput struct {
	ID string `json:"-"`
	CreateChestInput
}
