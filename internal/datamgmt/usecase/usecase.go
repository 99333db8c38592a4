package usecase

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/datamgmt"
	"github.com/mebelart/admin-service/internal/events"
	"github.com/mebelart/admin-service/internal/store"
)

// purgeable maps collection names to whether they carry files under a
// matching storage prefix.
var purgeable = map[string]bool{
	"products":        true,
	"tables":          true,
	"shelves":         true,
	"chests":          true,
	"gallery":         true,
	"categories":      false,
	"orders":          false,
	"contactRequests": false,
	"users":           false,
}

var collectionOrder = []string{
	"products", "tables", "shelves", "chests",
	"categories", "gallery", "orders", "contactRequests", "users",
}

type purgeUseCase struct {
	db        store.DocumentStore
	objects   store.ObjectStore
	publisher *events.Publisher
	logger    *zap.Logger
	running   atomic.Bool
}

func NewPurgeUseCase(db store.DocumentStore, objects store.ObjectStore, publisher *events.Publisher, logger *zap.Logger) datamgmt.UseCase {
	return &purgeUseCase{
		db:        db,
		objects:   objects,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *purgeUseCase) Collections() []string {
	return collectionOrder
}

func (uc *purgeUseCase) Purge(ctx context.Context, collection string, progress datamgmt.ProgressFunc) (int, error) {
	hasFiles, ok := purgeable[collection]
	if !ok {
		return 0, datamgmt.ErrUnknownCollection
	}

	if !uc.running.CompareAndSwap(false, true) {
		return 0, datamgmt.ErrPurgeInProgress
	}
	defer uc.running.Store(false)

	// One full read; collections are expected to stay in the tens to low
	// hundreds of documents.
	docs, err := uc.db.ListAll(ctx, collection)
	if err != nil {
		return 0, err
	}

	total := len(docs)
	if total == 0 {
		uc.logger.Info("nothing to delete", zap.String("collection", collection))
		return 0, nil
	}

	// Sequential deletion keeps progress reporting monotonic. A single
	// failure aborts the loop; deleted documents stay deleted and a retry
	// re-attempts only the remainder, since delete of an absent document is
	// a no-op.
	deleted := 0
	for _, doc := range docs {
		if err := uc.db.Delete(ctx, collection, doc.ID); err != nil {
			uc.logger.Error("purge aborted",
				zap.String("collection", collection),
				zap.Int("deleted", deleted),
				zap.Int("total", total),
				zap.Error(err))
			return deleted, err
		}
		deleted++
		if progress != nil {
			progress(deleted, total)
		}
	}

	if hasFiles {
		uc.cleanupStorage(ctx, collection)
	}

	uc.logger.Info("collection purged",
		zap.String("collection", collection),
		zap.Int("deleted", deleted))
	uc.publisher.Publish(ctx, events.TypeCollectionPurged, map[string]any{
		"collection": collection,
		"deleted":    deleted,
	})
	return deleted, nil
}

// cleanupStorage removes stored files under the collection prefix. The
// documents are already gone, so failures here are logged and swallowed.
func (uc *purgeUseCase) cleanupStorage(ctx context.Context, collection string) {
	paths, err := uc.objects.List(ctx, collection+"/")
	if err != nil {
		uc.logger.Warn("storage cleanup skipped",
			zap.String("collection", collection),
			zap.Error(err))
		return
	}

	for _, path := range paths {
		if err := uc.objects.Delete(ctx, path); err != nil {
			uc.logger.Warn("storage object not deleted",
				zap.String("path", path),
				zap.Error(err))
		}
	}
}
