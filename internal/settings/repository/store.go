package repository

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

const (
	collection = "settings"
	documentID = "site"
)

type StoreRepository struct {
	db store.DocumentStore
}

func NewStoreRepository(db store.DocumentStore) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Find(ctx context.Context) (*model.Settings, error) {
	doc, err := r.db.Get(ctx, collection, documentID)
	if err != nil || doc == nil {
		return nil, err
	}

	var s model.Settings
	if err := doc.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) Save(ctx context.Context, s *model.Settings) error {
	return r.db.Update(ctx, collection, documentID, map[string]any{
		"siteName":        s.SiteName,
		"contactPhone":    s.ContactPhone,
		"contactEmail":    s.ContactEmail,
		"contactAddress":  s.ContactAddress,
		"seoTitle":        s.SEOTitle,
		"seoDescription":  s.SEODescription,
		"seoKeywords":     s.SEOKeywords,
		"galleryEnabled":  s.GalleryEnabled,
		"requestsEnabled": s.RequestsEnabled,
		"analyticsId":     s.AnalyticsID,
	})
}
