package model

// MaxItemImages bounds the images list on tables, shelves and chests.
const MaxItemImages = 5

type Dimensions struct {
	Length float64 `firestore:"length" json:"length"` // cm
	Width  float64 `firestore:"width" json:"width"`
	Height float64 `firestore:"height" json:"height"`
}

// BaseItem is the shape shared by every catalog kind.
type BaseItem struct {
	BaseModel   `firestore:",squash"`
	Name        string   `firestore:"name" json:"name"`
	Price       float64  `firestore:"price" json:"price"`
	Description string   `firestore:"description" json:"description"`
	Colors      []string `firestore:"colors" json:"colors"`
	Images      []string `firestore:"images" json:"images"`
	InStock     bool     `firestore:"inStock" json:"inStock"`
	Featured    bool     `firestore:"featured" json:"featured"`
}

// Product is the cabinets catalog entry. Category is free text entered by the
// operator, not a reference to the categories collection.
type Product struct {
	BaseItem `firestore:",squash"`
	Category string `firestore:"category" json:"category"`
}

type Table struct {
	BaseItem        `firestore:",squash"`
	Material        string     `firestore:"material" json:"material"`
	Shape           string     `firestore:"shape" json:"shape"`
	Dimensions      Dimensions `firestore:"dimensions" json:"dimensions"`
	SeatingCapacity int        `firestore:"seatingCapacity" json:"seatingCapacity"`
}

type Shelf struct {
	BaseItem   `firestore:",squash"`
	Material   string     `firestore:"material" json:"material"`
	MountType  string     `firestore:"mountType" json:"mountType"`
	Dimensions Dimensions `firestore:"dimensions" json:"dimensions"`
	ShelfCount int        `firestore:"shelfCount" json:"shelfCount"`
	MaxWeight  float64    `firestore:"maxWeight" json:"maxWeight"` // kg
}

type Chest struct {
	BaseItem    `firestore:",squash"`
	Material    string     `firestore:"material" json:"material"`
	DrawerCount int        `firestore:"drawerCount" json:"drawerCount"`
	Dimensions  Dimensions `firestore:"dimensions" json:"dimensions"`
	HandleType  string     `firestore:"handleType" json:"handleType"`
	HasLock     bool       `firestore:"hasLock" json:"hasLock"`
}
