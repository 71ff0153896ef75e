package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"livraria/internal/backend"
	"livraria/internal/config"
	"livraria/internal/database"
	"livraria/internal/device"
	"livraria/internal/favorites"
)

// SyncFavoritesCommand reconciles local favourites with the backend.
type SyncFavoritesCommand struct {
	DatabasePath string
	BackendURL   string
	Timeout      time.Duration
}

// NewSyncFavoritesCommand creates a new SyncFavoritesCommand
func NewSyncFavoritesCommand() *SyncFavoritesCommand {
	return &SyncFavoritesCommand{}
}

// ParseFlags parses command line flags
func (cmd *SyncFavoritesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("sync-favorites", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the local database file")
	fs.StringVar(&cmd.BackendURL, "backend", config.DefaultBackendBaseURL, "Base URL of the livraria backend")
	fs.DurationVar(&cmd.Timeout, "timeout", 2*time.Minute, "Overall timeout for the sync")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s sync-favorites [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Push local-only favourites to the backend and refresh the local copy.\n\n")
		fmt.Fprintf(os.Stderr, "This command:\n")
		fmt.Fprintf(os.Stderr, "  1. Loads the favourites stored in the local database\n")
		fmt.Fprintf(os.Stderr, "  2. Pushes any the backend does not have yet\n")
		fmt.Fprintf(os.Stderr, "  3. Pulls the backend list back as the local truth\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s sync-favorites\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s sync-favorites -backend http://books.example.com\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the sync command
func (cmd *SyncFavoritesCommand) Run() error {
	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	fmt.Printf("Database: %s\n", cmd.DatabasePath)
	fmt.Printf("Backend:  %s\n", cmd.BackendURL)

	client := backend.NewClient(cmd.BackendURL, 0)
	identity := device.NewIdentity(db)
	service := favorites.NewService(client, db, identity)

	deviceID, err := identity.ID()
	if err != nil {
		return fmt.Errorf("failed to resolve device id: %w", err)
	}
	fmt.Printf("Device:   %s\n", deviceID)

	ctx, cancel := context.WithTimeout(context.Background(), cmd.Timeout)
	defer cancel()

	if err := service.Synchronize(ctx); err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	lastAt, status, message := db.GetFavoritesSyncStatus()
	if lastAt != nil {
		fmt.Printf("Sync %s at %s: %s\n", status, lastAt.Format("2006-01-02 15:04:05"), message)
	}

	fmt.Println("Sync complete")
	return nil
}
