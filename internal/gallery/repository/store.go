package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const collection = "gallery"

type StoreRepository struct {
	db store.DocumentStore
}

func NewStoreRepository(db store.DocumentStore) *StoreRepository {
	return &StoreRepository{db: db}
}

func encode(g *model.GalleryItem) map[string]any {
	return map[string]any{
		"title":       g.Title,
		"description": g.Description,
		"imageUrl":    g.ImageURL,
		"category":    g.Category,
		"order":       g.SortOrder,
		"createdAt":   g.CreatedAt,
		"updatedAt":   g.UpdatedAt,
	}
}

func decode(doc *store.Document) (*model.GalleryItem, error) {
	var g model.GalleryItem
	if err := doc.Decode(&g); err != nil {
		return nil, err
	}
	g.SetID(doc.ID)
	return &g, nil
}

func (r *StoreRepository) Create(ctx context.Context, g *model.GalleryItem) error {
	return r.db.Create(ctx, collection, g.ID, encode(g))
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*model.GalleryItem, error) {
	doc, err := r.db.Get(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return decode(doc)
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]model.GalleryItem, error) {
	docs, err := r.db.List(ctx, collection, store.Query{OrderBy: "order"})
	if err != nil {
		return nil, err
	}

	items := make([]model.GalleryItem, 0, len(docs))
	for i := range docs {
		g, err := decode(&docs[i])
		if err != nil {
			return nil, err
		}
		items = append(items, *g)
	}
	return items, nil
}

func (r *StoreRepository) Update(ctx context.Context, g *model.GalleryItem) error {
	return r.db.Update(ctx, collection, g.ID, encode(g))
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.Delete(ctx, collection, id)
}
