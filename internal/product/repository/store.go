package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/product"
	"github.com/mebelart/admin-service/internal/store"
)

// entity constrains the pointer type so decoded items receive their document
// key.
type entity[T any] interface {
	*T
	SetID(string)
}

// Items is the document-store implementation of product.Repository for one
// catalog collection. Writes go through an explicit field map per kind, the
// way a SQL repository would name its columns.
type Items[T any, PT entity[T]] struct {
	db         store.DocumentStore
	collection string
	encode     func(*T) map[string]any
}

func newItems[T any, PT entity[T]](db store.DocumentStore, collection string, encode func(*T) map[string]any) *Items[T, PT] {
	return &Items[T, PT]{db: db, collection: collection, encode: encode}
}

func (r *Items[T, PT]) Create(ctx context.Context, id string, item *T) error {
	return r.db.Create(ctx, r.collection, id, r.encode(item))
}

func (r *Items[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	doc, err := r.db.Get(ctx, r.collection, id)
	if err != nil || doc == nil {
		return nil, err
	}

	var item T
	if err := doc.Decode(&item); err != nil {
		return nil, err
	}
	PT(&item).SetID(doc.ID)
	return &item, nil
}

func (r *Items[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	docs, err := r.db.List(ctx, r.collection, store.Query{OrderBy: "name"})
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, len(docs))
	for i := range docs {
		var item T
		if err := docs[i].Decode(&item); err != nil {
			return nil, err
		}
		PT(&item).SetID(docs[i].ID)
		items = append(items, item)
	}
	return items, nil
}

func (r *Items[T, PT]) Update(ctx context.Context, id string, item *T) error {
	return r.db.Update(ctx, r.collection, id, r.encode(item))
}

func (r *Items[T, PT]) Delete(ctx context.Context, id string) error {
	return r.db.Delete(ctx, r.collection, id)
}

func NewProducts(db store.DocumentStore) product.Repository[model.Product] {
	return newItems[model.Product, *model.Product](db, string(product.KindProduct), encodeProduct)
}

func NewTables(db store.DocumentStore) product.Repository[model.Table] {
	return newItems[model.Table, *model.Table](db, string(product.KindTable), encodeTable)
}

func NewShelves(db store.DocumentStore) product.Repository[model.Shelf] {
	return newItems[model.Shelf, *model.Shelf](db, string(product.KindShelf), encodeShelf)
}

func NewChests(db store.DocumentStore) product.Repository[model.Chest] {
	return newItems[model.Chest, *model.Chest](db, string(product.KindChest), encodeChest)
}

func encodeBase(b *model.BaseItem) map[string]any {
	return map[string]any{
		"name":        b.Name,
		"price":       b.Price,
		"description": b.Description,
		"colors":      b.Colors,
		"images":      b.Images,
		"inStock":     b.InStock,
		"featured":    b.Featured,
		"createdAt":   b.CreatedAt,
		"updatedAt":   b.UpdatedAt,
	}
}

func encodeDimensions(d model.Dimensions) map[string]any {
	return map[string]any{
		"length": d.Length,
		"width":  d.Width,
		"height": d.Height,
	}
}

func encodeProduct(p *model.Product) map[string]any {
	data := encodeBase(&p.BaseItem)
	data["category"] = p.Category
	return data
}

func encodeTable(t *model.Table) map[string]any {
	data := encodeBase(&t.BaseItem)
	data["material"] = t.Material
	data["shape"] = t.Shape
	data["dimensions"] = encodeDimensions(t.Dimensions)
	data["seatingCapacity"] = t.SeatingCapacity
	return data
}

func encodeShelf(s *model.Shelf) map[string]any {
	data := encodeBase(&s.BaseItem)
	data["material"] = s.Material
	data["mountType"] = s.MountType
	data["dimensions"] = encodeDimensions(s.Dimensions)
	data["shelfCount"] = s.ShelfCount
	data["maxWeight"] = s.MaxWeight
	return data
}

func encodeChest(c *model.Chest) map[string]any {
	data := encodeBase(&c.BaseItem)
	data["material"] = c.Material
	data["drawerCount"] = c.DrawerCount
	data["dimensions"] = encodeDimensions(c.Dimensions)
	data["handleType"] = c.HandleType
	data["hasLock"] = c.HasLock
	return data
}
