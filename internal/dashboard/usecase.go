package dashboard

import (
	"context"

	"github.com/mebelart/admin-service/internal/dashboard/dto"
)

type UseCase interface {
	// Stats aggregates per-collection document counts and the most recent
	// orders for the dashboard landing page.
	Stats(ctx context.Context) (*dto.Stats, error)
}
