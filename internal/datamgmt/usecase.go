package datamgmt

import (
	"context"
	"errors"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrPurgeInProgress   = errors.New("a purge is already running")
)

// ProgressFunc receives the running deleted count after every successful
// document deletion.
type ProgressFunc func(deleted, total int)

type UseCase interface {
	// Collections returns the purgeable collection names.
	Collections() []string

	// Purge deletes every document in the collection, then best-effort
	// removes stored files under the matching prefix for image-bearing
	// collections. It returns the number of documents deleted, including the
	// partial count when a deletion fails mid-loop.
	Purge(ctx context.Context, collection string, progress ProgressFunc) (int, error)
}
