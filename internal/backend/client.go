// Package backend talks to the livraria backend, which stores the shared
// book list and the per-device favourites.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"livraria/internal/entities"
)

// Client is an HTTP client for the livraria backend. All calls are bounded
// by a short timeout so callers can fall back to local data quickly.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// --- Books ---

// FetchBooks returns the full backend book list.
func (c *Client) FetchBooks(ctx context.Context) ([]entities.Book, error) {
	return c.fetchBookList(ctx, c.baseURL+"/livros")
}

// FetchBookByID returns a single backend book.
func (c *Client) FetchBookByID(ctx context.Context, id string) (*entities.Book, error) {
	if id == "" {
		return nil, fmt.Errorf("book id is required")
	}

	var payload livroPayload
	if err := c.getJSON(ctx, fmt.Sprintf("%s/livros/%s", c.baseURL, url.PathEscape(id)), &payload); err != nil {
		return nil, err
	}

	book := convertLivro(payload)
	return &book, nil
}

// SearchByTitle queries the backend title search endpoint.
func (c *Client) SearchByTitle(ctx context.Context, title string) ([]entities.Book, error) {
	return c.fetchBookList(ctx, c.baseURL+"/livros/busca/titulo?titulo="+url.QueryEscape(title))
}

// SearchByAuthor queries the backend author search endpoint.
func (c *Client) SearchByAuthor(ctx context.Context, author string) ([]entities.Book, error) {
	return c.fetchBookList(ctx, c.baseURL+"/livros/busca/autor?autor="+url.QueryEscape(author))
}

// SearchByGenre queries the backend genre search endpoint.
func (c *Client) SearchByGenre(ctx context.Context, genre string) ([]entities.Book, error) {
	return c.fetchBookList(ctx, c.baseURL+"/livros/busca/genero?genero="+url.QueryEscape(genre))
}

func (c *Client) fetchBookList(ctx context.Context, reqURL string) ([]entities.Book, error) {
	var payload []livroPayload
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(payload))
	for _, p := range payload {
		books = append(books, convertLivro(p))
	}
	return books, nil
}

// --- Favourites ---

// FavoritesByDevice returns the favourites the backend holds for a device.
func (c *Client) FavoritesByDevice(ctx context.Context, deviceID string) ([]entities.Book, error) {
	if deviceID == "" {
		return nil, fmt.Errorf("device id is required")
	}

	var payload []favoritoPayload
	reqURL := fmt.Sprintf("%s/livros/favoritos/device/%s", c.baseURL, url.PathEscape(deviceID))
	if err := c.getJSON(ctx, reqURL, &payload); err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(payload))
	for _, p := range payload {
		books = append(books, convertFavorito(p))
	}
	return books, nil
}

// CheckFavorite asks the backend whether a book is a favourite for a device.
func (c *Client) CheckFavorite(ctx context.Context, deviceID, googleBooksID string) (bool, error) {
	if deviceID == "" || googleBooksID == "" {
		return false, fmt.Errorf("device id and book id are required")
	}

	params := url.Values{}
	params.Set("deviceId", deviceID)
	params.Set("googleBooksId", googleBooksID)

	var isFavorite bool
	reqURL := fmt.Sprintf("%s/livros/favoritos/check?%s", c.baseURL, params.Encode())
	if err := c.getJSON(ctx, reqURL, &isFavorite); err != nil {
		return false, err
	}
	return isFavorite, nil
}

// AddFavorite stores a favourite for a device on the backend.
func (c *Client) AddFavorite(ctx context.Context, deviceID string, book entities.Book) error {
	if deviceID == "" || book.ID == "" {
		return fmt.Errorf("device id and book id are required")
	}

	payload := favoritoPayload{
		DeviceID:       deviceID,
		GoogleBooksID:  book.ID,
		Titulo:         book.Title,
		Autor:          book.AuthorLine(),
		ImagemURL:      book.ThumbnailURL,
		Descricao:      book.Description,
		DataPublicacao: book.PublishedDate,
	}
	if payload.Titulo == "" {
		payload.Titulo = "Sem título"
	}
	if payload.Descricao == "" {
		payload.Descricao = "Sem descrição disponível"
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode favourite: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/livros/favoritos", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("add favourite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

// RemoveFavorite deletes a favourite for a device on the backend.
func (c *Client) RemoveFavorite(ctx context.Context, deviceID, googleBooksID string) error {
	if deviceID == "" || googleBooksID == "" {
		return fmt.Errorf("device id and book id are required")
	}

	params := url.Values{}
	params.Set("deviceId", deviceID)
	params.Set("googleBooksId", googleBooksID)

	reqURL := fmt.Sprintf("%s/livros/favoritos?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove favourite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("not found: %s", reqURL)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func convertLivro(p livroPayload) entities.Book {
	book := entities.Book{
		ID:            strconv.FormatInt(p.ID, 10),
		Title:         p.Titulo,
		Description:   p.Descricao,
		ThumbnailURL:  p.Capa,
		PublishedDate: p.DataPublicacao,
	}
	if p.Autor != "" {
		book.Authors = []string{p.Autor}
	}
	if p.Genero != "" {
		book.Categories = []string{p.Genero}
	}
	return book
}

func convertFavorito(p favoritoPayload) entities.Book {
	book := entities.Book{
		ID:            p.GoogleBooksID,
		Title:         p.Titulo,
		Description:   p.Descricao,
		ThumbnailURL:  p.ImagemURL,
		PublishedDate: p.DataPublicacao,
	}
	if p.Autor != "" {
		book.Authors = []string{p.Autor}
	}
	return book
}

// Backend wire types (internal). Field names follow the backend's
// Portuguese API contract.

type livroPayload struct {
	ID             int64  `json:"id"`
	Titulo         string `json:"titulo"`
	Autor          string `json:"autor"`
	Genero         string `json:"genero"`
	Capa           string `json:"capa"`
	DataPublicacao string `json:"dataPublicacao"`
	Descricao      string `json:"descricao"`
}

type favoritoPayload struct {
	DeviceID       string `json:"deviceId,omitempty"`
	GoogleBooksID  string `json:"googleBooksId"`
	Titulo         string `json:"titulo"`
	Autor          string `json:"autor"`
	ImagemURL      string `json:"imagemUrl"`
	Descricao      string `json:"descricao"`
	DataPublicacao string `json:"dataPublicacao"`
}
