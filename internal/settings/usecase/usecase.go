package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/settings"
)

type settingsUseCase struct {
	repo   settings.Repository
	logger *zap.Logger
}

func NewSettingsUseCase(repo settings.Repository, logger *zap.Logger) settings.UseCase {
	return &settingsUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *settingsUseCase) GetSettings(ctx context.Context) (*model.Settings, error) {
	s, err := uc.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return &model.Settings{
			GalleryEnabled:  true,
			RequestsEnabled: true,
		}, nil
	}
	return s, nil
}

func (uc *settingsUseCase) UpdateSettings(ctx context.Context, s *model.Settings) (*model.Settings, error) {
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}
