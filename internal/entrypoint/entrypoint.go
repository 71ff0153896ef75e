package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"livraria/internal/backend"
	"livraria/internal/catalog"
	"livraria/internal/config"
	"livraria/internal/database"
	"livraria/internal/device"
	"livraria/internal/favorites"
	"livraria/internal/googlebooks"
	http_controllers "livraria/internal/http"
	"livraria/internal/requestcache"
	"livraria/internal/scheduler"
	"livraria/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	// Wait for interrupt signal to gracefully shutdown the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Livraria v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Catalog: Google Books client behind the response cache and throttle
	cache := requestcache.New(cfg.Cache.TTL, cfg.Cache.ThrottleInterval)
	googleClient := googlebooks.NewClient(cfg.GoogleBooks.BaseURL, cfg.GoogleBooks.Timeout)
	catalogService := catalog.NewService(googleClient, cache, catalog.Options{
		BatchSize:    cfg.Catalog.BatchSize,
		BatchDelay:   cfg.Catalog.BatchDelay,
		MockCooldown: cfg.Catalog.MockCooldown,
	})

	// Backend client plus the cached book list store
	backendClient := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	backendStore := backend.NewStore(backendClient, db)

	// Favourites, keyed by the persistent device identity
	identity := device.NewIdentity(db)
	favoritesService := favorites.NewService(backendClient, db, identity)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewSyncFavoritesQueue(favoritesService),
		)

		// Start task workers in background
		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Periodic favourites sync
	syncScheduler := scheduler.NewFavoritesSyncScheduler(favoritesService, scheduler.Config{
		Enabled:  cfg.FavoritesSync.Enabled,
		Schedule: cfg.FavoritesSync.Schedule,
	})
	if err := syncScheduler.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start favorites sync scheduler: %v", err)
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		CatalogService: catalogService,
		BackendBooks:   backendStore,
		FavoritesStore: favoritesService,
		Database:       db,
		TaskClient:     taskClient,
		Scheduler:      syncScheduler,
		Version:        version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		syncScheduler.Stop()
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
