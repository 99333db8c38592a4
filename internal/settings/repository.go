package settings

import (
	"context"

	"github.com/mebelart/admin-service/internal/model"
)

type Repository interface {
	// Find returns (nil, nil) when the settings document has never been saved.
	Find(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, s *model.Settings) error
}
