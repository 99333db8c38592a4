package product

import (
	"context"
	"errors"
	"io"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/product/dto"
)

var (
	ErrNotFound      = errors.New("item not found")
	ErrTooManyImages = errors.New("too many images")
)

type UseCase interface {
	CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateTable(ctx context.Context, input *dto.CreateTableInput) (*model.Table, error)
	GetTable(ctx context.Context, id string) (*model.Table, error)
	ListTables(ctx context.Context) ([]model.Table, error)
	UpdateTable(ctx context.Context, input *dto.UpdateTableInput) (*model.Table, error)
	DeleteTable(ctx context.Context, id string) error

	CreateShelf(ctx context.Context, input *dto.CreateShelfInput) (*model.Shelf, error)
	GetShelf(ctx context.Context, id string) (*model.Shelf, error)
	ListShelves(ctx context.Context) ([]model.Shelf, error)
	UpdateShelf(ctx context.Context, input *dto.UpdateShelfInput) (*model.Shelf, error)
	DeleteShelf(ctx context.Context, id string) error

	CreateChest(ctx context.Context, input *dto.CreateChestInput) (*model.Chest, error)
	GetChest(ctx context.Context, id string) (*model.Chest, error)
	ListChests(ctx context.Context) ([]model.Chest, error)
	UpdateChest(ctx context.Context, input *dto.UpdateChestInput) (*model.Chest, error)
	DeleteChest(ctx context.Context, id string) error

	// UploadImage stores the blob under the kind's storage prefix and returns
	// its URL.
	UploadImage(ctx context.Context, kind Kind, filename string, r io.Reader, contentType string) (string, error)
}
