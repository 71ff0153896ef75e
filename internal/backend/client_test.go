package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"livraria/internal/entities"
)

func bookFixture() entities.Book {
	return entities.Book{
		ID:            "abc123",
		Title:         "O Hobbit",
		Authors:       []string{"J.R.R. Tolkien"},
		Description:   "Uma aventura inesperada.",
		ThumbnailURL:  "http://example.com/hobbit.jpg",
		PublishedDate: "1937",
	}
}

func newTestClient(serverURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    serverURL,
	}
}

func TestFetchBooks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		books := []livroPayload{
			{
				ID:             1,
				Titulo:         "Dom Casmurro",
				Autor:          "Machado de Assis",
				Genero:         "Romance",
				Capa:           "http://example.com/capa.jpg",
				DataPublicacao: "1899",
				Descricao:      "Um clássico da literatura brasileira.",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(books)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	books, err := client.FetchBooks(context.Background())
	if err != nil {
		t.Fatalf("FetchBooks failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 book, got %d", len(books))
	}

	book := books[0]
	if book.ID != "1" {
		t.Errorf("expected id '1', got %q", book.ID)
	}
	if book.Title != "Dom Casmurro" {
		t.Errorf("expected title 'Dom Casmurro', got %q", book.Title)
	}
	if len(book.Authors) != 1 || book.Authors[0] != "Machado de Assis" {
		t.Errorf("unexpected authors: %v", book.Authors)
	}
	if len(book.Categories) != 1 || book.Categories[0] != "Romance" {
		t.Errorf("unexpected categories: %v", book.Categories)
	}
}

func TestFetchBookByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros/42" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(livroPayload{ID: 42, Titulo: "Quincas Borba"})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	book, err := client.FetchBookByID(context.Background(), "42")
	if err != nil {
		t.Fatalf("FetchBookByID failed: %v", err)
	}
	if book.ID != "42" || book.Title != "Quincas Borba" {
		t.Errorf("unexpected book: %+v", book)
	}

	if _, err := client.FetchBookByID(context.Background(), "99"); err == nil {
		t.Error("expected error for missing book")
	}
}

func TestSearchByTitle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros/busca/titulo" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if got := r.URL.Query().Get("titulo"); got != "dom casmurro" {
			t.Errorf("expected titulo='dom casmurro', got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]livroPayload{{ID: 1, Titulo: "Dom Casmurro"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	books, err := client.SearchByTitle(context.Background(), "dom casmurro")
	if err != nil {
		t.Fatalf("SearchByTitle failed: %v", err)
	}
	if len(books) != 1 {
		t.Errorf("expected 1 result, got %d", len(books))
	}
}

func TestFavoritesByDevice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros/favoritos/device/device-1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		favorites := []favoritoPayload{
			{
				GoogleBooksID:  "abc123",
				Titulo:         "O Hobbit",
				Autor:          "J.R.R. Tolkien",
				ImagemURL:      "http://example.com/hobbit.jpg",
				Descricao:      "Uma aventura inesperada.",
				DataPublicacao: "1937",
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(favorites)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	books, err := client.FavoritesByDevice(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("FavoritesByDevice failed: %v", err)
	}
	if len(books) != 1 {
		t.Fatalf("expected 1 favourite, got %d", len(books))
	}
	if books[0].ID != "abc123" {
		t.Errorf("expected id 'abc123', got %q", books[0].ID)
	}
	if books[0].ThumbnailURL != "http://example.com/hobbit.jpg" {
		t.Errorf("unexpected thumbnail: %q", books[0].ThumbnailURL)
	}
}

func TestCheckFavorite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/livros/favoritos/check" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("deviceId") != "device-1" || r.URL.Query().Get("googleBooksId") != "abc123" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("true"))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	isFavorite, err := client.CheckFavorite(context.Background(), "device-1", "abc123")
	if err != nil {
		t.Fatalf("CheckFavorite failed: %v", err)
	}
	if !isFavorite {
		t.Error("expected favourite to be reported as true")
	}
}

func TestAddFavorite(t *testing.T) {
	var received favoritoPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/livros/favoritos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	book := bookFixture()
	if err := client.AddFavorite(context.Background(), "device-1", book); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	if received.DeviceID != "device-1" {
		t.Errorf("expected deviceId 'device-1', got %q", received.DeviceID)
	}
	if received.GoogleBooksID != "abc123" {
		t.Errorf("expected googleBooksId 'abc123', got %q", received.GoogleBooksID)
	}
	if received.Autor != "J.R.R. Tolkien" {
		t.Errorf("expected autor 'J.R.R. Tolkien', got %q", received.Autor)
	}
}

func TestAddFavoriteFillsDefaults(t *testing.T) {
	var received favoritoPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	book := bookFixture()
	book.Title = ""
	book.Authors = nil
	book.Description = ""
	if err := client.AddFavorite(context.Background(), "device-1", book); err != nil {
		t.Fatalf("AddFavorite failed: %v", err)
	}

	if received.Titulo != "Sem título" {
		t.Errorf("expected default title, got %q", received.Titulo)
	}
	if received.Autor != "Autor desconhecido" {
		t.Errorf("expected default author, got %q", received.Autor)
	}
	if received.Descricao != "Sem descrição disponível" {
		t.Errorf("expected default description, got %q", received.Descricao)
	}
}

func TestRemoveFavorite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/livros/favoritos" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.URL.Query().Get("googleBooksId") != "abc123" {
			t.Errorf("unexpected query: %s", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if err := client.RemoveFavorite(context.Background(), "device-1", "abc123"); err != nil {
		t.Fatalf("RemoveFavorite failed: %v", err)
	}
}

func TestBackendUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	if _, err := client.FetchBooks(context.Background()); err == nil {
		t.Error("expected error when backend returns 500")
	}
	if _, err := client.FavoritesByDevice(context.Background(), "device-1"); err == nil {
		t.Error("expected error when backend returns 500")
	}
}
