// Package favorites keeps the per-device favourites list. The local
// database is the source of truth for reads; the backend is updated on a
// best-effort basis and reconciled by Synchronize.
package favorites

import (
	"context"
	"fmt"
	"log"

	"livraria/internal/entities"
)

// RemoteStore is the backend favourites API.
type RemoteStore interface {
	FavoritesByDevice(ctx context.Context, deviceID string) ([]entities.Book, error)
	CheckFavorite(ctx context.Context, deviceID, googleBooksID string) (bool, error)
	AddFavorite(ctx context.Context, deviceID string, book entities.Book) error
	RemoveFavorite(ctx context.Context, deviceID, googleBooksID string) error
}

// LocalStore is the favourites portion of the local database.
type LocalStore interface {
	GetFavoriteBooks(deviceID string) ([]entities.Book, error)
	HasFavorite(deviceID, googleBooksID string) (bool, error)
	SaveFavorite(favorite *entities.Favorite) error
	DeleteFavorite(deviceID, googleBooksID string) error
	ReplaceFavorites(deviceID string, books []entities.Book) error
	SetFavoritesSyncStatus(status, message string) error
}

// DeviceIdentity supplies the identifier the backend keys favourites by.
type DeviceIdentity interface {
	ID() (string, error)
}

// Result is a favourites list plus whether it was served from local data
// only, so clients can show a non-blocking notice.
type Result struct {
	Books     []entities.Book `json:"books"`
	LocalOnly bool            `json:"local_only"`
}

type Service struct {
	remote   RemoteStore
	local    LocalStore
	identity DeviceIdentity
}

func NewService(remote RemoteStore, local LocalStore, identity DeviceIdentity) *Service {
	return &Service{
		remote:   remote,
		local:    local,
		identity: identity,
	}
}

// List returns the locally stored favourites.
func (s *Service) List() ([]entities.Book, error) {
	deviceID, err := s.identity.ID()
	if err != nil {
		return nil, err
	}
	return s.local.GetFavoriteBooks(deviceID)
}

// IsFavorite checks the backend first and falls back to local data when
// the backend cannot be reached.
func (s *Service) IsFavorite(ctx context.Context, googleBooksID string) (bool, error) {
	deviceID, err := s.identity.ID()
	if err != nil {
		return false, err
	}

	if has, err := s.remote.CheckFavorite(ctx, deviceID, googleBooksID); err == nil {
		return has, nil
	} else {
		log.Printf("Favorites: remote check failed, using local data: %v", err)
	}

	return s.local.HasFavorite(deviceID, googleBooksID)
}

// Add marks a book as a favourite. The local write always happens; the
// backend write is best-effort and a failure there is only logged.
func (s *Service) Add(ctx context.Context, book entities.Book) error {
	if book.ID == "" {
		return fmt.Errorf("book id is required")
	}

	deviceID, err := s.identity.ID()
	if err != nil {
		return err
	}

	has, err := s.local.HasFavorite(deviceID, book.ID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	if err := s.remote.AddFavorite(ctx, deviceID, book); err != nil {
		log.Printf("Favorites: remote add failed for %s, will sync later: %v", book.ID, err)
	}

	favorite := entities.NewFavorite(deviceID, book)
	return s.local.SaveFavorite(&favorite)
}

// Remove unmarks a favourite. The local delete always happens; the
// backend delete is best-effort.
func (s *Service) Remove(ctx context.Context, googleBooksID string) error {
	if googleBooksID == "" {
		return fmt.Errorf("book id is required")
	}

	deviceID, err := s.identity.ID()
	if err != nil {
		return err
	}

	if err := s.remote.RemoveFavorite(ctx, deviceID, googleBooksID); err != nil {
		log.Printf("Favorites: remote remove failed for %s: %v", googleBooksID, err)
	}

	return s.local.DeleteFavorite(deviceID, googleBooksID)
}

// Refresh pulls the backend list and makes it the local truth. An empty
// or unreachable backend never wipes local favourites; the local list is
// returned with LocalOnly set instead.
func (s *Service) Refresh(ctx context.Context) (Result, error) {
	deviceID, err := s.identity.ID()
	if err != nil {
		return Result{}, err
	}

	remote, err := s.remote.FavoritesByDevice(ctx, deviceID)
	if err != nil || len(remote) == 0 {
		if err != nil {
			log.Printf("Favorites: refresh failed, keeping local data: %v", err)
		}
		books, localErr := s.local.GetFavoriteBooks(deviceID)
		if localErr != nil {
			return Result{}, localErr
		}
		return Result{Books: books, LocalOnly: true}, nil
	}

	if err := s.local.ReplaceFavorites(deviceID, remote); err != nil {
		return Result{}, fmt.Errorf("replace local favourites: %w", err)
	}
	return Result{Books: remote}, nil
}

// Synchronize pushes favourites the backend is missing, then refreshes
// from the backend. The outcome is recorded in the sync status settings.
func (s *Service) Synchronize(ctx context.Context) error {
	deviceID, err := s.identity.ID()
	if err != nil {
		return err
	}

	local, err := s.local.GetFavoriteBooks(deviceID)
	if err != nil {
		return fmt.Errorf("load local favourites: %w", err)
	}

	remote, err := s.remote.FavoritesByDevice(ctx, deviceID)
	if err != nil {
		s.recordStatus("error", fmt.Sprintf("Backend unreachable: %v", err))
		return fmt.Errorf("load remote favourites: %w", err)
	}

	remoteIDs := make(map[string]bool, len(remote))
	for _, book := range remote {
		remoteIDs[book.ID] = true
	}

	pushed := 0
	for _, book := range local {
		if remoteIDs[book.ID] {
			continue
		}
		if err := s.remote.AddFavorite(ctx, deviceID, book); err != nil {
			log.Printf("Favorites: push of %s failed, skipping: %v", book.ID, err)
			continue
		}
		pushed++
	}

	if _, err := s.Refresh(ctx); err != nil {
		s.recordStatus("error", fmt.Sprintf("Refresh failed: %v", err))
		return err
	}

	s.recordStatus("success", fmt.Sprintf("Pushed %d favourites", pushed))
	log.Printf("Favorites: sync complete, pushed %d favourites", pushed)
	return nil
}

func (s *Service) recordStatus(status, message string) {
	if err := s.local.SetFavoritesSyncStatus(status, message); err != nil {
		log.Printf("Favorites: failed to record sync status: %v", err)
	}
}
