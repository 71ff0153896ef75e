package http

import (
	"livraria/internal/database"
	"livraria/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces the long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	CatalogService  CatalogService
	BackendBooks    BackendBooks
	FavoritesStore  FavoritesStore
	Database        *database.Database

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Favourites sync scheduler (optional)
	Scheduler SyncScheduler

	// Application info
	Version string
}
