package settings

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
)

type UseCase interface {
	// GetSettings returns stored settings, or defaults when none exist yet.
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, s *model.Settings) (*model.Settings, error)
}
