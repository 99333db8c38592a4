package gallery

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.GalleryItem) error
	FindByID(ctx context.Context, id string) (*model.GalleryItem, error)
	FindAll(ctx context.Context) ([]model.GalleryItem, error)
	Update(ctx context.Context, item *model.GalleryItem) error
	Delete(ctx context.Context, id string) error
}
