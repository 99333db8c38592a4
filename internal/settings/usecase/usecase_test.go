package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/settings/repository"
	"github.com/mebelart/admin-service/internal/store"
)

func TestGetSettingsDefaultsWhenNeverSaved(t *testing.T) {
	uc := NewSettingsUseCase(repository.NewStoreRepository(store.NewMemory()), zap.NewNop())

	s, err := uc.GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, s.GalleryEnabled)
	assert.True(t, s.RequestsEnabled)
	assert.Empty(t, s.SiteName)
}

func TestUpdateSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	uc := NewSettingsUseCase(repository.NewStoreRepository(store.NewMemory()), zap.NewNop())

	_, err := uc.UpdateSettings(ctx, &model.Settings{
		SiteName:        "МебельАрт",
		ContactPhone:    "+375291112233",
		SEOTitle:        "Мебель на заказ",
		GalleryEnabled:  false,
		RequestsEnabled: true,
	})
	require.NoError(t, err)

	got, err := uc.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "МебельАрт", got.SiteName)
	assert.Equal(t, "+375291112233", got.ContactPhone)
	assert.False(t, got.GalleryEnabled)
	assert.True(t, got.RequestsEnabled)
}
