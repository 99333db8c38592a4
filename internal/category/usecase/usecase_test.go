package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/category"
	"github.com/mebelart/admin-service/internal/category/dto"
	"github.com/mebelart/admin-service/internal/category/repository"
	"github.com/mebelart/admin-service/internal/store"
)

func newTestUseCase() category.UseCase {
	repo := repository.NewStoreRepository(store.NewMemory())
	return NewCategoryUseCase(repo, zap.NewNop())
}

func TestCreateCategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{
		Name:        "Гостиные",
		Description: "Мебель для гостиной",
		SortOrder:   3,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "gostinye", created.Slug)

	got, err := uc.GetCategory(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Гостиные", got.Name)
	assert.Equal(t, "gostinye", got.Slug)
	assert.Equal(t, "Мебель для гостиной", got.Description)
	assert.Equal(t, 3, got.SortOrder)
}

func TestCreateCategorySlugConflict(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Спальни", Slug: "spalni"})
	require.NoError(t, err)

	_, err = uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Другие спальни", Slug: "spalni"})
	assert.ErrorIs(t, err, category.ErrSlugTaken)
}

func TestUpdateCategoryKeepsOwnSlug(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	created, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: "Кухни", Slug: "kuhni"})
	require.NoError(t, err)

	updated, err := uc.UpdateCategory(ctx, &dto.UpdateCategoryInput{
		ID:          created.ID,
		Name:        "Кухни",
		Slug:        "kuhni",
		Description: "обновлено",
	})
	require.NoError(t, err)
	assert.Equal(t, "обновлено", updated.Description)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.UpdateCategory(context.Background(), &dto.UpdateCategoryInput{
		ID:   "missing",
		Name: "x",
	})
	assert.ErrorIs(t, err, category.ErrNotFound)
}

func TestListCategoriesSortedByOrder(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase()

	for i, name := range []string{"Третья", "Первая", "Вторая"} {
		order := []int{30, 10, 20}[i]
		_, err := uc.CreateCategory(ctx, &dto.CreateCategoryInput{Name: name, SortOrder: order})
		require.NoError(t, err)
	}

	list, err := uc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Первая", list[0].Name)
	assert.Equal(t, "Вторая", list[1].Name)
	assert.Equal(t, "Третья", list[2].Name)
}
