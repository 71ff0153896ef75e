package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"livraria/internal/entities"
)

// BooksClient is the backend book API the store wraps.
type BooksClient interface {
	FetchBooks(ctx context.Context) ([]entities.Book, error)
	FetchBookByID(ctx context.Context, id string) (*entities.Book, error)
	SearchByTitle(ctx context.Context, title string) ([]entities.Book, error)
	SearchByAuthor(ctx context.Context, author string) ([]entities.Book, error)
	SearchByGenre(ctx context.Context, genre string) ([]entities.Book, error)
}

// SettingsStore persists the cached book list between runs.
type SettingsStore interface {
	GetSetting(key string) (*entities.Setting, error)
	SetSetting(key, value string) error
}

// Store wraps the backend client with a persistent fallback copy of the
// book list, so the catalog keeps working while the backend is down.
type Store struct {
	client   BooksClient
	settings SettingsStore
}

func NewStore(client BooksClient, settings SettingsStore) *Store {
	return &Store{
		client:   client,
		settings: settings,
	}
}

// Books returns the backend book list, falling back to the last cached
// copy when the backend cannot be reached.
func (s *Store) Books(ctx context.Context) ([]entities.Book, bool, error) {
	books, err := s.client.FetchBooks(ctx)
	if err != nil {
		log.Printf("Backend: book list fetch failed, trying cached copy: %v", err)
		cached, cacheErr := s.cachedBooks()
		if cacheErr != nil {
			return nil, false, fmt.Errorf("fetch books: %w", err)
		}
		return cached, true, nil
	}

	s.storeCache(books)
	return books, false, nil
}

// BookByID returns one backend book, scanning the cached copy when the
// backend cannot be reached.
func (s *Store) BookByID(ctx context.Context, id string) (*entities.Book, bool, error) {
	book, err := s.client.FetchBookByID(ctx, id)
	if err == nil {
		return book, false, nil
	}

	cached, cacheErr := s.cachedBooks()
	if cacheErr != nil {
		return nil, false, err
	}
	for i := range cached {
		if cached[i].ID == id {
			return &cached[i], true, nil
		}
	}
	return nil, false, err
}

// SearchBooks queries the backend search endpoint for the given field
// (titulo, autor or genero), filtering the cached copy when the backend
// cannot be reached.
func (s *Store) SearchBooks(ctx context.Context, field, query string) ([]entities.Book, bool, error) {
	var (
		books []entities.Book
		err   error
	)
	switch field {
	case "titulo":
		books, err = s.client.SearchByTitle(ctx, query)
	case "autor":
		books, err = s.client.SearchByAuthor(ctx, query)
	case "genero":
		books, err = s.client.SearchByGenre(ctx, query)
	default:
		return nil, false, fmt.Errorf("unknown search field: %s", field)
	}

	if err == nil {
		return books, false, nil
	}

	log.Printf("Backend: %s search failed, filtering cached copy: %v", field, err)
	cached, cacheErr := s.cachedBooks()
	if cacheErr != nil {
		return nil, false, err
	}
	return filterBooks(cached, field, query), true, nil
}

func (s *Store) storeCache(books []entities.Book) {
	data, err := json.Marshal(books)
	if err != nil {
		log.Printf("Backend: failed to encode book cache: %v", err)
		return
	}
	if err := s.settings.SetSetting(entities.SettingKeyBackendBooksCache, string(data)); err != nil {
		log.Printf("Backend: failed to store book cache: %v", err)
		return
	}
	if err := s.settings.SetSetting(entities.SettingKeyBackendBooksCachedAt, time.Now().Format(time.RFC3339)); err != nil {
		log.Printf("Backend: failed to store book cache timestamp: %v", err)
	}
}

func (s *Store) cachedBooks() ([]entities.Book, error) {
	setting, err := s.settings.GetSetting(entities.SettingKeyBackendBooksCache)
	if err != nil {
		return nil, fmt.Errorf("no cached book list: %w", err)
	}

	var books []entities.Book
	if err := json.Unmarshal([]byte(setting.Value), &books); err != nil {
		return nil, fmt.Errorf("decode cached book list: %w", err)
	}
	return books, nil
}

func filterBooks(books []entities.Book, field, query string) []entities.Book {
	query = strings.ToLower(query)
	matched := make([]entities.Book, 0)
	for _, book := range books {
		switch field {
		case "titulo":
			if strings.Contains(strings.ToLower(book.Title), query) {
				matched = append(matched, book)
			}
		case "autor":
			if strings.Contains(strings.ToLower(book.AuthorLine()), query) {
				matched = append(matched, book)
			}
		case "genero":
			for _, category := range book.Categories {
				if strings.Contains(strings.ToLower(category), query) {
					matched = append(matched, book)
					break
				}
			}
		}
	}
	return matched
}
