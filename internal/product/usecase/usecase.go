package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/product"
	"github.com/mebelart/admin-service/internal/product/dto"
	"github.com/mebelart/admin-service/internal/store"
)

const cacheTTL = 5 * time.Minute

type catalogUseCase struct {
	products product.Repository[model.Product]
	tables   product.Repository[model.Table]
	shelves  product.Repository[model.Shelf]
	chests   product.Repository[model.Chest]
	objects  store.ObjectStore
	cache    *redis.Client
	logger   *zap.Logger
}

// NewCatalogUseCase wires the per-kind repositories. The redis client may be
// nil, in which case list reads always hit the store.
func NewCatalogUseCase(
	products product.Repository[model.Product],
	tables product.Repository[model.Table],
	shelves product.Repository[model.Shelf],
	chests product.Repository[model.Chest],
	objects store.ObjectStore,
	cache *redis.Client,
	logger *zap.Logger,
) product.UseCase {
	return &catalogUseCase{
		products: products,
		tables:   tables,
		shelves:  shelves,
		chests:   chests,
		objects:  objects,
		cache:    cache,
		logger:   logger,
	}
}

func cacheKey(kind product.Kind) string {
	return fmt.Sprintf("catalog:list:%s", kind)
}

func listCached[T any](ctx context.Context, uc *catalogUseCase, kind product.Kind, repo product.Repository[T]) ([]T, error) {
	key := cacheKey(kind)
	if uc.cache != nil {
		if val, err := uc.cache.Get(ctx, key).Result(); err == nil {
			var items []T
			if err := json.Unmarshal([]byte(val), &items); err == nil {
				return items, nil
			}
		}
	}

	items, err := repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			uc.cache.Set(ctx, key, data, cacheTTL)
		}
	}
	return items, nil
}

func (uc *catalogUseCase) invalidate(kind product.Kind) {
	if uc.cache == nil {
		return
	}
	go func() {
		if err := uc.cache.Del(context.Background(), cacheKey(kind)).Err(); err != nil {
			uc.logger.Warn("cache invalidation failed", zap.String("kind", string(kind)), zap.Error(err))
		}
	}()
}

func newBaseItem(f *dto.ItemFields) model.BaseItem {
	now := time.Now()
	return model.BaseItem{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        f.Name,
		Price:       f.Price,
		Description: f.Description,
		Colors:      f.Colors,
		Images:      f.Images,
		InStock:     f.InStock,
		Featured:    f.Featured,
	}
}

func applyBaseItem(b *model.BaseItem, f *dto.ItemFields) {
	b.Name = f.Name
	b.Price = f.Price
	b.Description = f.Description
	b.Colors = f.Colors
	b.Images = f.Images
	b.InStock = f.InStock
	b.Featured = f.Featured
	b.UpdatedAt = time.Now()
}

func checkImages(f *dto.ItemFields) error {
	if len(f.Images) > model.MaxItemImages {
		return product.ErrTooManyImages
	}
	return nil
}

func toDimensions(d dto.DimensionsInput) model.Dimensions {
	return model.Dimensions{Length: d.Length, Width: d.Width, Height: d.Height}
}

// --- cabinets ---

func (uc *catalogUseCase) CreateProduct(ctx context.Context, input *dto.CreateProductInput) (*model.Product, error) {
	item := &model.Product{
		BaseItem: newBaseItem(&input.ItemFields),
		Category: input.Category,
	}
	if err := uc.products.Create(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindProduct)
	return item, nil
}

func (uc *catalogUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return uc.products.FindByID(ctx, id)
}

func (uc *catalogUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return listCached(ctx, uc, product.KindProduct, uc.products)
}

func (uc *catalogUseCase) UpdateProduct(ctx context.Context, input *dto.UpdateProductInput) (*model.Product, error) {
	item, err := uc.products.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, product.ErrNotFound
	}

	applyBaseItem(&item.BaseItem, &input.ItemFields)
	item.Category = input.Category

	if err := uc.products.Update(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindProduct)
	return item, nil
}

func (uc *catalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.products.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(product.KindProduct)
	return nil
}

// --- tables ---

func (uc *catalogUseCase) CreateTable(ctx context.Context, input *dto.CreateTableInput) (*model.Table, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item := &model.Table{
		BaseItem:        newBaseItem(&input.ItemFields),
		Material:        input.Material,
		Shape:           input.Shape,
		Dimensions:      toDimensions(input.Dimensions),
		SeatingCapacity: input.SeatingCapacity,
	}
	if err := uc.tables.Create(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindTable)
	return item, nil
}

func (uc *catalogUseCase) GetTable(ctx context.Context, id string) (*model.Table, error) {
	return uc.tables.FindByID(ctx, id)
}

func (uc *catalogUseCase) ListTables(ctx context.Context) ([]model.Table, error) {
	return listCached(ctx, uc, product.KindTable, uc.tables)
}

func (uc *catalogUseCase) UpdateTable(ctx context.Context, input *dto.UpdateTableInput) (*model.Table, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item, err := uc.tables.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, product.ErrNotFound
	}

	applyBaseItem(&item.BaseItem, &input.ItemFields)
	item.Material = input.Material
	item.Shape = input.Shape
	item.Dimensions = toDimensions(input.Dimensions)
	item.SeatingCapacity = input.SeatingCapacity

	if err := uc.tables.Update(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindTable)
	return item, nil
}

func (uc *catalogUseCase) DeleteTable(ctx context.Context, id string) error {
	if err := uc.tables.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(product.KindTable)
	return nil
}

// --- shelves ---

func (uc *catalogUseCase) CreateShelf(ctx context.Context, input *dto.CreateShelfInput) (*model.Shelf, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item := &model.Shelf{
		BaseItem:   newBaseItem(&input.ItemFields),
		Material:   input.Material,
		MountType:  input.MountType,
		Dimensions: toDimensions(input.Dimensions),
		ShelfCount: input.ShelfCount,
		MaxWeight:  input.MaxWeight,
	}
	if err := uc.shelves.Create(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindShelf)
	return item, nil
}

func (uc *catalogUseCase) GetShelf(ctx context.Context, id string) (*model.Shelf, error) {
	return uc.shelves.FindByID(ctx, id)
}

func (uc *catalogUseCase) ListShelves(ctx context.Context) ([]model.Shelf, error) {
	return listCached(ctx, uc, product.KindShelf, uc.shelves)
}

func (uc *catalogUseCase) UpdateShelf(ctx context.Context, input *dto.UpdateShelfInput) (*model.Shelf, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item, err := uc.shelves.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, product.ErrNotFound
	}

	applyBaseItem(&item.BaseItem, &input.ItemFields)
	item.Material = input.Material
	item.MountType = input.MountType
	item.Dimensions = toDimensions(input.Dimensions)
	item.ShelfCount = input.ShelfCount
	item.MaxWeight = input.MaxWeight

	if err := uc.shelves.Update(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindShelf)
	return item, nil
}

func (uc *catalogUseCase) DeleteShelf(ctx context.Context, id string) error {
	if err := uc.shelves.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(product.KindShelf)
	return nil
}

// --- chests ---

func (uc *catalogUseCase) CreateChest(ctx context.Context, input *dto.CreateChestInput) (*model.Chest, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item := &model.Chest{
		BaseItem:    newBaseItem(&input.ItemFields),
		Material:    input.Material,
		DrawerCount: input.DrawerCount,
		Dimensions:  toDimensions(input.Dimensions),
		HandleType:  input.HandleType,
		HasLock:     input.HasLock,
	}
	if err := uc.chests.Create(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindChest)
	return item, nil
}

func (uc *catalogUseCase) GetChest(ctx context.Context, id string) (*model.Chest, error) {
	return uc.chests.FindByID(ctx, id)
}

func (uc *catalogUseCase) ListChests(ctx context.Context) ([]model.Chest, error) {
	return listCached(ctx, uc, product.KindChest, uc.chests)
}

func (uc *catalogUseCase) UpdateChest(ctx context.Context, input *dto.UpdateChestInput) (*model.Chest, error) {
	if err := checkImages(&input.ItemFields); err != nil {
		return nil, err
	}

	item, err := uc.chests.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, product.ErrNotFound
	}

	applyBaseItem(&item.BaseItem, &input.ItemFields)
	item.Material = input.Material
	item.DrawerCount = input.DrawerCount
	item.Dimensions = toDimensions(input.Dimensions)
	item.HandleType = input.HandleType
	item.HasLock = input.HasLock

	if err := uc.chests.Update(ctx, item.ID, item); err != nil {
		return nil, err
	}
	uc.invalidate(product.KindChest)
	return item, nil
}

func (uc *catalogUseCase) DeleteChest(ctx context.Context, id string) error {
	if err := uc.chests.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(product.KindChest)
	return nil
}

func (uc *catalogUseCase) UploadImage(ctx context.Context, kind product.Kind, filename string, r io.Reader, contentType string) (string, error) {
	path := fmt.Sprintf("%s/%s-%s", kind, uuid.New().String(), filename)
	return uc.objects.Upload(ctx, path, r, contentType)
}
