package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/product"
	"github.com/mebelart/admin-service/internal/product/dto"
	"github.com/mebelart/admin-service/internal/product/repository"
	"github.com/mebelart/admin-service/internal/store"
)

func newTestUseCase() (product.UseCase, *store.MemoryObjects) {
	db := store.NewMemory()
	objects := store.NewMemoryObjects()
	uc := NewCatalogUseCase(
		repository.NewProducts(db),
		repository.NewTables(db),
		repository.NewShelves(db),
		repository.NewChests(db),
		objects,
		nil,
		zap.NewNop(),
	)
	return uc, objects
}

func TestCreateTableRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	created, err := uc.CreateTable(ctx, &dto.CreateTableInput{
		ItemFields: dto.ItemFields{
			Name:    "Стол обеденный",
			Price:   450,
			Colors:  []string{"дуб", "орех"},
			InStock: true,
		},
		Material:        "дуб",
		Shape:           "овальный",
		Dimensions:      dto.DimensionsInput{Length: 180, Width: 90, Height: 75},
		SeatingCapacity: 6,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := uc.GetTable(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Стол обеденный", got.Name)
	assert.Equal(t, 450.0, got.Price)
	assert.Equal(t, "овальный", got.Shape)
	assert.Equal(t, 180.0, got.Dimensions.Length)
	assert.Equal(t, 6, got.SeatingCapacity)
}

func TestCreateTableRejectsTooManyImages(t *testing.T) {
	uc, _ := newTestUseCase()

	images := make([]string, model.MaxItemImages+1)
	for i := range images {
		images[i] = "https://example.com/img.jpg"
	}

	_, err := uc.CreateTable(context.Background(), &dto.CreateTableInput{
		ItemFields: dto.ItemFields{Name: "x", Images: images},
	})
	assert.ErrorIs(t, err, product.ErrTooManyImages)
}

func TestProductImagesUnbounded(t *testing.T) {
	// Cabinets have no image cap, unlike the other kinds.
	uc, _ := newTestUseCase()

	images := make([]string, model.MaxItemImages+3)
	for i := range images {
		images[i] = "https://example.com/img.jpg"
	}

	created, err := uc.CreateProduct(context.Background(), &dto.CreateProductInput{
		ItemFields: dto.ItemFields{Name: "Шкаф-купе", Images: images},
		Category:   "шкафы",
	})
	require.NoError(t, err)
	assert.Len(t, created.Images, model.MaxItemImages+3)
}

func TestUpdateShelfNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.UpdateShelf(context.Background(), &dto.UpdateShelfInput{
		ID: "missing",
		CreateShelfInput: dto.CreateShelfInput{
			ItemFields: dto.ItemFields{Name: "x"},
		},
	})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestListTablesSortedByName(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase()

	for _, name := range []string{"Я", "А", "Б"} {
		_, err := uc.CreateTable(ctx, &dto.CreateTableInput{
			ItemFields: dto.ItemFields{Name: name},
		})
		require.NoError(t, err)
	}

	list, err := uc.ListTables(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "А", list[0].Name)
	assert.Equal(t, "Б", list[1].Name)
}

func TestUploadImagePathCarriesKindPrefix(t *testing.T) {
	ctx := context.Background()
	uc, objects := newTestUseCase()

	url, err := uc.UploadImage(ctx, product.KindChest, "photo.jpg", strings.NewReader("data"), "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "memory://chests/"))
	assert.True(t, strings.HasSuffix(url, "-photo.jpg"))

	paths, err := objects.List(ctx, "chests/")
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}
