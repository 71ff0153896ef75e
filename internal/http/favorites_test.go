package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livraria/internal/entities"
	"livraria/internal/favorites"
)

type fakeFavoritesStore struct {
	books      []entities.Book
	isFavorite bool
	refresh    favorites.Result
	err        error

	added   []entities.Book
	removed []string
	synced  int
}

func (f *fakeFavoritesStore) List() ([]entities.Book, error) { return f.books, f.err }

func (f *fakeFavoritesStore) IsFavorite(context.Context, string) (bool, error) {
	return f.isFavorite, f.err
}

func (f *fakeFavoritesStore) Add(_ context.Context, book entities.Book) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, book)
	return nil
}

func (f *fakeFavoritesStore) Remove(_ context.Context, googleBooksID string) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, googleBooksID)
	return nil
}

func (f *fakeFavoritesStore) Refresh(context.Context) (favorites.Result, error) {
	return f.refresh, f.err
}

func (f *fakeFavoritesStore) Synchronize(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.synced++
	return nil
}

func newFavoritesRouter(store FavoritesStore) http.Handler {
	return NewRouter(RouterConfig{FavoritesStore: store})
}

func TestListFavorites(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{
		books: []entities.Book{{ID: "abc", Title: "O Hobbit"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Books []entities.Book `json:"books"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Books, 1)
	assert.Equal(t, "abc", response.Books[0].ID)
}

func TestAddFavorite(t *testing.T) {
	store := &fakeFavoritesStore{}
	router := newFavoritesRouter(store)

	body, _ := json.Marshal(entities.Book{ID: "abc", Title: "O Hobbit"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.added, 1)
	assert.Equal(t, "abc", store.added[0].ID)
}

func TestAddFavoriteRequiresID(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{})

	body, _ := json.Marshal(entities.Book{Title: "Sem ID"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckFavorite(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{isFavorite: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/favorites/check?id=abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		IsFavorite bool `json:"is_favorite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.IsFavorite)
}

func TestCheckFavoriteRequiresID(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/favorites/check", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveFavorite(t *testing.T) {
	store := &fakeFavoritesStore{}
	router := newFavoritesRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/favorites/abc", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"abc"}, store.removed)
}

func TestRefreshFavorites(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{
		refresh: favorites.Result{
			Books:     []entities.Book{{ID: "local1"}},
			LocalOnly: true,
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites/refresh", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result favorites.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.LocalOnly)
	assert.Len(t, result.Books, 1)
}

func TestSyncFavoritesWithoutTaskQueue(t *testing.T) {
	store := &fakeFavoritesStore{}
	router := newFavoritesRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites/sync", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, store.synced)
}

func TestSyncFavoritesError(t *testing.T) {
	router := newFavoritesRouter(&fakeFavoritesStore{err: fmt.Errorf("backend unreachable")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/favorites/sync", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
