package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/category"
	"github.com/mebelart/admin-service/internal/category/dto"
	"github.com/mebelart/admin-service/internal/model"
)

type categoryUseCase struct {
	repo   category.Repository
	logger *zap.Logger
}

func NewCategoryUseCase(repo category.Repository, logger *zap.Logger) category.UseCase {
	return &categoryUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error) {
	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}

	// The store does not enforce slug uniqueness, the application must.
	existing, err := uc.repo.FindBySlug(ctx, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, category.ErrSlugTaken
	}

	now := time.Now()
	cat := &model.Category{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        input.Name,
		Slug:        s,
		Description: input.Description,
		SortOrder:   input.SortOrder,
	}

	if err := uc.repo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]model.Category, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error) {
	cat, err := uc.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, category.ErrNotFound
	}

	s := input.Slug
	if s == "" {
		s = slug.Make(input.Name)
	}
	if s != cat.Slug {
		existing, err := uc.repo.FindBySlug(ctx, s)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != cat.ID {
			return nil, category.ErrSlugTaken
		}
	}

	cat.Name = input.Name
	cat.Slug = s
	cat.Description = input.Description
	cat.SortOrder = input.SortOrder
	cat.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}
