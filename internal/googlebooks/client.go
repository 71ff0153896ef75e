package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"livraria/internal/entities"
)

// ErrRateLimited is returned when the API answers with HTTP 429.
// Callers switch to the bundled dataset when they see it.
var ErrRateLimited = errors.New("google books: too many requests")

// Client fetches volumes from the Google Books API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Google Books client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://www.googleapis.com/books/v1"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// VolumesBySubject returns up to maxResults volumes for a subject category.
func (c *Client) VolumesBySubject(ctx context.Context, subject string, maxResults int) ([]entities.Book, error) {
	if subject == "" {
		return nil, fmt.Errorf("subject is required")
	}
	return c.volumes(ctx, "subject:"+subject, maxResults)
}

// SearchVolumes returns up to maxResults volumes matching a free-text query.
func (c *Client) SearchVolumes(ctx context.Context, query string, maxResults int) ([]entities.Book, error) {
	if query == "" {
		return nil, fmt.Errorf("query is required")
	}
	return c.volumes(ctx, query, maxResults)
}

// Volume fetches a single volume by its id.
func (c *Client) Volume(ctx context.Context, id string) (*entities.Book, error) {
	if id == "" {
		return nil, fmt.Errorf("volume id is required")
	}

	reqURL := fmt.Sprintf("%s/volumes/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch volume: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusNotFound:
		return nil, fmt.Errorf("volume not found: %s", id)
	default:
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var item volumeItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	book := convertVolume(item)
	return &book, nil
}

func (c *Client) volumes(ctx context.Context, q string, maxResults int) ([]entities.Book, error) {
	params := url.Values{}
	params.Set("q", q)
	if maxResults > 0 {
		params.Set("maxResults", strconv.Itoa(maxResults))
	}

	reqURL := fmt.Sprintf("%s/volumes?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch volumes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	books := make([]entities.Book, 0, len(result.Items))
	for _, item := range result.Items {
		books = append(books, convertVolume(item))
	}
	return books, nil
}

func convertVolume(item volumeItem) entities.Book {
	book := entities.Book{
		ID:            item.ID,
		Title:         item.VolumeInfo.Title,
		Authors:       item.VolumeInfo.Authors,
		Description:   item.VolumeInfo.Description,
		PublishedDate: item.VolumeInfo.PublishedDate,
		Categories:    item.VolumeInfo.Categories,
	}

	if item.VolumeInfo.ImageLinks != nil {
		book.ThumbnailURL = item.VolumeInfo.ImageLinks.Thumbnail
		if book.ThumbnailURL == "" {
			book.ThumbnailURL = item.VolumeInfo.ImageLinks.SmallThumbnail
		}
	}

	return book
}

// Google Books API response types (internal)

type volumesResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string      `json:"title"`
	Authors       []string    `json:"authors"`
	Description   string      `json:"description"`
	ImageLinks    *imageLinks `json:"imageLinks"`
	PublishedDate string      `json:"publishedDate"`
	Categories    []string    `json:"categories"`
}

type imageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}
