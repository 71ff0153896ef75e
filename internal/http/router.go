package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Catalog endpoints
	if cfg.CatalogService != nil {
		catalogController := NewCatalogController(cfg.CatalogService)
		router.GET("/api/catalog/featured", catalogController.GetFeatured)
		router.GET("/api/catalog/categories", catalogController.GetCategories)
		router.GET("/api/catalog/categories/:id/books", catalogController.GetCategoryBooks)
		router.GET("/api/catalog/books", catalogController.GetBooks)
		router.GET("/api/catalog/search", catalogController.Search)
	}

	// Backend book list endpoints
	if cfg.BackendBooks != nil {
		backendController := NewBackendBooksController(cfg.BackendBooks)
		router.GET("/api/backend/books", backendController.GetBooks)
		router.GET("/api/backend/books/search", backendController.SearchBooks)
		router.GET("/api/backend/books/:id", backendController.GetBookByID)
	}

	// Favourites endpoints
	if cfg.FavoritesStore != nil {
		favoritesController := NewFavoritesController(cfg.FavoritesStore, cfg.Database, cfg.TaskClient, cfg.Scheduler)
		router.GET("/api/favorites", favoritesController.ListFavorites)
		router.POST("/api/favorites", favoritesController.AddFavorite)
		router.GET("/api/favorites/check", favoritesController.CheckFavorite)
		router.DELETE("/api/favorites/:id", favoritesController.RemoveFavorite)
		router.POST("/api/favorites/refresh", favoritesController.RefreshFavorites)
		router.POST("/api/favorites/sync", favoritesController.SyncFavorites)
		router.GET("/api/favorites/sync/status", favoritesController.GetSyncStatus)
	}

	return router
}
