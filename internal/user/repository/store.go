package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const collection = "users"

type StoreRepository struct {
	db store.DocumentStore
}

func NewStoreRepository(db store.DocumentStore) *StoreRepository {
	return &StoreRepository{db: db}
}

func encode(u *model.User) map[string]any {
	return map[string]any{
		"email":       u.Email,
		"displayName": u.DisplayName,
		"role":        u.Role,
		"createdAt":   u.CreatedAt,
	}
}

func decode(doc *store.Document) (*model.User, error) {
	var u model.User
	if err := doc.Decode(&u); err != nil {
		return nil, err
	}
	u.SetID(doc.ID)
	return &u, nil
}

func (r *StoreRepository) Create(ctx context.Context, u *model.User) error {
	return r.db.Create(ctx, collection, u.ID, encode(u))
}

func (r *StoreRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	doc, err := r.db.Get(ctx, collection, id)
	if err != nil || doc == nil {
		return nil, err
	}
	return decode(doc)
}

func (r *StoreRepository) FindAll(ctx context.Context) ([]model.User, error) {
	docs, err := r.db.List(ctx, collection, store.Query{OrderBy: "email"})
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for i := range docs {
		u, err := decode(&docs[i])
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}

func (r *StoreRepository) Delete(ctx context.Context, id string) error {
	return r.db.Delete(ctx, collection, id)
}
