package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"
)

// FavoritesSyncer reconciles local favourites with the backend.
type FavoritesSyncer interface {
	Synchronize(ctx context.Context) error
}

// SyncFavoritesTask pushes local-only favourites to the backend and
// refreshes the local copy. Reason records what queued the task.
type SyncFavoritesTask struct {
	Reason string `json:"reason"`
}

// Config returns the queue configuration for favourites sync tasks.
func (t SyncFavoritesTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "sync_favorites",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SyncFavoritesProcessor creates a processor function for SyncFavoritesTask.
func SyncFavoritesProcessor(syncer FavoritesSyncer) backlite.QueueProcessor[SyncFavoritesTask] {
	return func(ctx context.Context, task SyncFavoritesTask) error {
		if syncer == nil {
			return fmt.Errorf("favourites syncer not configured")
		}

		if err := syncer.Synchronize(ctx); err != nil {
			return fmt.Errorf("sync favourites (%s): %w", task.Reason, err)
		}

		log.Printf("[TASK] Favourites sync complete (%s)", task.Reason)
		return nil
	}
}

// NewSyncFavoritesQueue creates a backlite queue for favourites sync tasks.
func NewSyncFavoritesQueue(syncer FavoritesSyncer) backlite.Queue {
	return backlite.NewQueue(SyncFavoritesProcessor(syncer))
}
