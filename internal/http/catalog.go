package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"livraria/internal/mockbooks"
)

// CatalogController serves catalog reads. Upstream failures never surface
// as errors here; degraded results carry their source marker instead.
type CatalogController struct {
	service CatalogService
}

func NewCatalogController(service CatalogService) *CatalogController {
	return &CatalogController{service: service}
}

// GetFeatured returns the featured book of the moment.
func (cc *CatalogController) GetFeatured(c *gin.Context) {
	result := cc.service.Featured(c.Request.Context())
	if result.Book == nil {
		respondNotFound(c, "featured book")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetCategories lists the known category identifiers.
func (cc *CatalogController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": mockbooks.CategoryIDs,
	})
}

// GetCategoryBooks returns the books for one category.
func (cc *CatalogController) GetCategoryBooks(c *gin.Context) {
	categoryID := c.Param("id")
	if categoryID == "" {
		respondBadRequest(c, "category id is required")
		return
	}

	result := cc.service.BooksByCategory(c.Request.Context(), categoryID)
	c.JSON(http.StatusOK, result)
}

// GetBooks loads several categories at once. Without a categories query
// parameter the full known set is loaded.
func (cc *CatalogController) GetBooks(c *gin.Context) {
	categoryIDs := mockbooks.CategoryIDs
	if raw := c.Query("categories"); raw != "" {
		categoryIDs = nil
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				categoryIDs = append(categoryIDs, id)
			}
		}
		if len(categoryIDs) == 0 {
			respondBadRequest(c, "categories parameter is empty")
			return
		}
	}

	results := cc.service.AllCategories(c.Request.Context(), categoryIDs)
	c.JSON(http.StatusOK, gin.H{
		"categories": results,
		"degraded":   cc.service.UsingMockData(),
	})
}

// Search returns books matching a free-text query.
func (cc *CatalogController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "q parameter is required")
		return
	}

	result := cc.service.Search(c.Request.Context(), query)
	c.JSON(http.StatusOK, result)
}
