package http

import (
	"context"
	"time"

	"livraria/internal/catalog"
	"livraria/internal/entities"
	"livraria/internal/favorites"
)

// CatalogService answers catalog reads. It never fails; degraded results
// carry a fallback source marker instead.
type CatalogService interface {
	Featured(ctx context.Context) catalog.BookResult
	BooksByCategory(ctx context.Context, categoryID string) catalog.Result
	Search(ctx context.Context, query string) catalog.Result
	AllCategories(ctx context.Context, categoryIDs []string) map[string]catalog.Result
	UsingMockData() bool
}

// BackendBooks serves the shared backend book list with a cached fallback.
type BackendBooks interface {
	Books(ctx context.Context) ([]entities.Book, bool, error)
	BookByID(ctx context.Context, id string) (*entities.Book, bool, error)
	SearchBooks(ctx context.Context, field, query string) ([]entities.Book, bool, error)
}

// FavoritesStore manages the per-device favourites list.
type FavoritesStore interface {
	List() ([]entities.Book, error)
	IsFavorite(ctx context.Context, googleBooksID string) (bool, error)
	Add(ctx context.Context, book entities.Book) error
	Remove(ctx context.Context, googleBooksID string) error
	Refresh(ctx context.Context) (favorites.Result, error)
	Synchronize(ctx context.Context) error
}

// SyncScheduler exposes the favourites sync scheduler state.
type SyncScheduler interface {
	IsRunning() bool
	IsSyncing() bool
	GetNextRunTime() *time.Time
	RunNow() error
}
