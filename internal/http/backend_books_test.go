package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livraria/internal/entities"
)

type fakeBackendBooks struct {
	books     []entities.Book
	fromCache bool
	err       error
}

func (f *fakeBackendBooks) Books(context.Context) ([]entities.Book, bool, error) {
	return f.books, f.fromCache, f.err
}

func (f *fakeBackendBooks) BookByID(_ context.Context, id string) (*entities.Book, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	for i := range f.books {
		if f.books[i].ID == id {
			return &f.books[i], f.fromCache, nil
		}
	}
	return nil, false, fmt.Errorf("not found")
}

func (f *fakeBackendBooks) SearchBooks(context.Context, string, string) ([]entities.Book, bool, error) {
	return f.books, f.fromCache, f.err
}

func newBackendRouter(store BackendBooks) http.Handler {
	return NewRouter(RouterConfig{BackendBooks: store})
}

func TestGetBackendBooks(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{
		books:     []entities.Book{{ID: "1", Title: "O Hobbit"}},
		fromCache: true,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response backendBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response.Books, 1)
	assert.True(t, response.FromCache)
}

func TestGetBackendBooksDegraded(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{err: fmt.Errorf("connection refused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books", nil)
	router.ServeHTTP(w, req)

	// Upstream failures degrade to an empty list, never a server error
	require.Equal(t, http.StatusOK, w.Code)

	var response backendBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Books)
	assert.True(t, response.Degraded)
}

func TestGetBackendBookByID(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{
		books: []entities.Book{{ID: "1", Title: "O Hobbit"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books/1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Book entities.Book `json:"book"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "O Hobbit", response.Book.Title)
}

func TestGetBackendBookByIDNotFound(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books/999", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSearchBackendBooksRequiresQuery(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books/search", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchBackendBooks(t *testing.T) {
	router := newBackendRouter(&fakeBackendBooks{
		books: []entities.Book{{ID: "2", Title: "1984"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/backend/books/search?autor=orwell", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response backendBooksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Books, 1)
	assert.Equal(t, "1984", response.Books[0].Title)
}
