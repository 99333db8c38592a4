package gallery

import (
	"context"
	"errors"
	"io"

	"github.com/mebelart/admin-service/internal/gallery/dto"
	"github.com/mebelart/admin-service/internal/model"
)

var ErrNotFound = errors.New("gallery item not found")

type UseCase interface {
	CreateItem(ctx context.Context, input *dto.CreateGalleryItemInput) (*model.GalleryItem, error)
	GetItem(ctx context.Context, id string) (*model.GalleryItem, error)
	ListItems(ctx context.Context) ([]model.GalleryItem, error)
	UpdateItem(ctx context.Context, input *dto.UpdateGalleryItemInput) (*model.GalleryItem, error)
	DeleteItem(ctx context.Context, id string) error

	UploadImage(ctx context.Context, filename string, r io.Reader, contentType string) (string, error)
}
