package category

import (
	"context"
	"errors"

	"github.com/mebelart/admin-service/internal/category/dto"
	"github.com/mebelart/admin-service/internal/model"
)

var (
	ErrNotFound  = errors.New("category not found")
	ErrSlugTaken = errors.New("slug already exists")
)

type UseCase interface {
	CreateCategory(ctx context.Context, input *dto.CreateCategoryInput) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	UpdateCategory(ctx context.Context, input *dto.UpdateCategoryInput) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}
