package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/gallery"
	"github.com/mebelart/admin-service/internal/gallery/dto"
	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/store"
)

type galleryUseCase struct {
	repo    gallery.Repository
	objects store.ObjectStore
	logger  *zap.Logger
}

func NewGalleryUseCase(repo gallery.Repository, objects store.ObjectStore, logger *zap.Logger) gallery.UseCase {
	return &galleryUseCase{
		repo:    repo,
		objects: objects,
		logger:  logger,
	}
}

func (uc *galleryUseCase) CreateItem(ctx context.Context, input *dto.CreateGalleryItemInput) (*model.GalleryItem, error) {
	now := time.Now()
	item := &model.GalleryItem{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		SortOrder:   input.SortOrder,
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *galleryUseCase) GetItem(ctx context.Context, id string) (*model.GalleryItem, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *galleryUseCase) ListItems(ctx context.Context) ([]model.GalleryItem, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *galleryUseCase) UpdateItem(ctx context.Context, input *dto.UpdateGalleryItemInput) (*model.GalleryItem, error) {
	item, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, gallery.ErrNotFound
	}

	item.Title = input.Title
	item.Description = input.Description
	item.ImageURL = input.ImageURL
	item.Category = input.Category
	item.SortOrder = input.SortOrder
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *galleryUseCase) DeleteItem(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *galleryUseCase) UploadImage(ctx context.Context, filename string, r io.Reader, contentType string) (string, error) {
	path := fmt.Sprintf("gallery/%s-%s", uuid.New().String(), filename)
	return uc.objects.Upload(ctx, path, r, contentType)
}
