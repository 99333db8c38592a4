package product

import "context"

// Kind names a catalog collection. Each furniture kind lives in its own
// collection with its own attribute set.
type Kind string

const (
	KindProduct Kind = "products"
	KindTable   Kind = "tables"
	KindShelf   Kind = "shelves"
	KindChest   Kind = "chests"
)

func Kinds() []Kind {
	return []Kind{KindProduct, KindTable, KindShelf, KindChest}
}

func ParseKind(s string) (Kind, bool) {
	k := Kind(s)
	switch k {
	case KindProduct, KindTable, KindShelf, KindChest:
		return k, true
	}
	return "", false
}

// Repository is the per-kind catalog repository. FindByID returns (nil, nil)
// when the item does not exist.
type Repository[T any] interface {
	Create(ctx context.Context, id string, item *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Update(ctx context.Context, id string, item *T) error
	Delete(ctx context.Context, id string) error
}
