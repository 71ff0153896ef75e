package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"livraria/internal/entities"
)

// BackendBooksController serves the shared backend book list. When the
// backend is unreachable the last cached copy is served instead of an
// error; a completely cold cache yields an empty, degraded response.
type BackendBooksController struct {
	store BackendBooks
}

func NewBackendBooksController(store BackendBooks) *BackendBooksController {
	return &BackendBooksController{store: store}
}

type backendBooksResponse struct {
	Books     []entities.Book `json:"books"`
	FromCache bool            `json:"from_cache"`
	Degraded  bool            `json:"degraded,omitempty"`
}

// GetBooks returns the full backend book list.
func (bc *BackendBooksController) GetBooks(c *gin.Context) {
	books, fromCache, err := bc.store.Books(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusOK, backendBooksResponse{Books: []entities.Book{}, Degraded: true})
		return
	}
	c.JSON(http.StatusOK, backendBooksResponse{Books: books, FromCache: fromCache})
}

// GetBookByID returns a single backend book.
func (bc *BackendBooksController) GetBookByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "book id is required")
		return
	}

	book, fromCache, err := bc.store.BookByID(c.Request.Context(), id)
	if err != nil {
		respondNotFound(c, "book")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"book":       book,
		"from_cache": fromCache,
	})
}

// SearchBooks queries one of the backend search fields. The field is
// selected by which query parameter is present: titulo, autor or genero.
func (bc *BackendBooksController) SearchBooks(c *gin.Context) {
	var field, query string
	for _, name := range []string{"titulo", "autor", "genero"} {
		if value := c.Query(name); value != "" {
			field, query = name, value
			break
		}
	}
	if query == "" {
		respondBadRequest(c, "one of titulo, autor or genero is required")
		return
	}

	books, fromCache, err := bc.store.SearchBooks(c.Request.Context(), field, query)
	if err != nil {
		c.JSON(http.StatusOK, backendBooksResponse{Books: []entities.Book{}, Degraded: true})
		return
	}
	c.JSON(http.StatusOK, backendBooksResponse{Books: books, FromCache: fromCache})
}
