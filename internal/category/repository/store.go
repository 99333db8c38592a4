package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const collection = "categories"

type StoreRepository struct {
	db store.DocumentStore
}

func NewStoreRepository(db store.DocumentStore) *StoreRepository {
	return &StoreRepository{db: db}
}

func encode(c *model.Category) map[string]any {
	return map[string]any{
		"name":        c.Name,
		"slug":        c.Slug,
		"description": c.Description,
		"order":       c.SortOrder,
		"createdAt":   c.CreatedAt,
		"updatedAt":   c.UpdatedAt,
	}
}

func decode(doc *store.Document) (*model.Category, error) {
	var c model.Category
	if err := doc.Decode(&c); err != nil {
		return nil, err
	}
	c.SetID(doc.ID)
	return &c, nil
}

func (r *StoreRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.Create(ctx, collection, c.ID, encode(c))
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*model.Category, error) {
	doc, err := r.db.Get(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return decode(doc)
}

func (r *StoreRepository) FindBySlug(ctx context.Context, slug string) (*model.Category, error) {
	docs, err := r.db.List(ctx, collection, store.Query{
		Filters: []store.Filter{{Field: "slug", Op: "==", Value: slug}},
		Limit:   1,
	})
	if err != nil || len(docs) == 0 {
		return nil, err
	}
	return decode(&docs[0])
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	docs, err := r.db.List(ctx, collection, store.Query{OrderBy: "order"})
	if err != nil {
		return nil, err
	}

	categories := make([]model.Category, 0, len(docs))
	for i := range docs {
		c, err := decode(&docs[i])
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, nil
}

func (r *StoreRepository) Update(ctx context.Context, c *model.Category) error {
	return r.db.Update(ctx, collection, c.ID, encode(c))
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.Delete(ctx, collection, id)
}
