package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		GoogleBooks
		Backend
		Cache
		Catalog
		FavoritesSync
		Tasks
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	GoogleBooks struct {
		BaseURL string
		Timeout time.Duration // per-request timeout for catalog reads
	}
	Backend struct {
		BaseURL string
		Timeout time.Duration // per-request timeout for backend/favorites calls
	}
	Cache struct {
		TTL              time.Duration
		ThrottleInterval time.Duration
	}
	Catalog struct {
		BatchSize    int
		BatchDelay   time.Duration
		MockCooldown time.Duration // how long to serve bundled data after a 429
	}
	FavoritesSync struct {
		Enabled  bool
		Schedule string // Cron format: "*/30 * * * *" = every 30 minutes
	}
	Tasks struct {
		Enabled           bool
		Workers           int
		MaxRetries        int
		RetryDelay        time.Duration
		TaskTimeout       time.Duration
		ReleaseAfter      time.Duration
		CleanupInterval   time.Duration
		RetentionDuration time.Duration
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("google_books_base_url", DefaultGoogleBooksBaseURL)
	v.SetDefault("google_books_timeout", "5s")
	v.SetDefault("backend_base_url", DefaultBackendBaseURL)
	v.SetDefault("backend_timeout", "3s")
	v.SetDefault("cache_ttl", "10m")
	v.SetDefault("cache_throttle_interval", "1s")
	v.SetDefault("catalog_batch_size", 2)
	v.SetDefault("catalog_batch_delay", "500ms")
	v.SetDefault("catalog_mock_cooldown", "5m")
	v.SetDefault("favorites_sync_enabled", false)
	v.SetDefault("favorites_sync_schedule", "*/30 * * * *") // Every 30 minutes

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		GoogleBooks: GoogleBooks{
			BaseURL: v.GetString("GOOGLE_BOOKS_BASE_URL"),
			Timeout: v.GetDuration("GOOGLE_BOOKS_TIMEOUT"),
		},
		Backend: Backend{
			BaseURL: v.GetString("BACKEND_BASE_URL"),
			Timeout: v.GetDuration("BACKEND_TIMEOUT"),
		},
		Cache: Cache{
			TTL:              v.GetDuration("CACHE_TTL"),
			ThrottleInterval: v.GetDuration("CACHE_THROTTLE_INTERVAL"),
		},
		Catalog: Catalog{
			BatchSize:    v.GetInt("CATALOG_BATCH_SIZE"),
			BatchDelay:   v.GetDuration("CATALOG_BATCH_DELAY"),
			MockCooldown: v.GetDuration("CATALOG_MOCK_COOLDOWN"),
		},
		FavoritesSync: FavoritesSync{
			Enabled:  v.GetBool("FAVORITES_SYNC_ENABLED"),
			Schedule: v.GetString("FAVORITES_SYNC_SCHEDULE"),
		},
		Tasks: Tasks{
			Enabled:           v.GetBool("TASKS_ENABLED"),
			Workers:           v.GetInt("TASK_WORKERS"),
			MaxRetries:        v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:       v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:      v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:   v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration: v.GetDuration("TASK_RETENTION_DURATION"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
