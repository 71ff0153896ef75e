// Package catalog orchestrates catalog reads across the Google Books API,
// the response cache and the bundled offline dataset.
package catalog

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"sync"
	"time"

	"livraria/internal/entities"
	"livraria/internal/googlebooks"
	"livraria/internal/mockbooks"
)

// Defaults for batch loading and rate-limit recovery.
const (
	DefaultBatchSize    = 2
	DefaultBatchDelay   = 500 * time.Millisecond
	DefaultMockCooldown = 5 * time.Minute
)

const (
	maxResultsFeatured = 10
	maxResultsCategory = 12
	maxResultsSearch   = 20
)

const (
	cacheKeyFeatured       = "featured_book"
	cacheKeyCategoryPrefix = "category_"
	cacheKeySearchPrefix   = "search_"
)

// Source marks where a result came from, so clients can show a
// non-blocking notice when data is served from the bundled dataset.
type Source string

const (
	SourceNetwork  Source = "network"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result is a list of books plus the source they came from.
type Result struct {
	Books  []entities.Book `json:"books"`
	Source Source          `json:"source"`
}

// BookResult is a single book plus the source it came from. Book is nil
// when nothing could be served at all.
type BookResult struct {
	Book   *entities.Book `json:"book"`
	Source Source         `json:"source"`
}

// VolumesClient fetches volumes from the remote catalog.
type VolumesClient interface {
	VolumesBySubject(ctx context.Context, subject string, maxResults int) ([]entities.Book, error)
	SearchVolumes(ctx context.Context, query string, maxResults int) ([]entities.Book, error)
}

// Cache is the response cache plus request throttle the service consults
// before going to the network.
type Cache interface {
	Get(key string) (any, bool)
	Set(key string, value any)
	Allow() bool
}

// Options tunes batch loading and the rate-limit cooldown. Zero values
// select the defaults.
type Options struct {
	BatchSize    int
	BatchDelay   time.Duration
	MockCooldown time.Duration
}

// Service answers catalog reads. Every operation follows the same shape:
// bundled data while rate limited, then cache, then (throttle permitting)
// the network, with the bundled dataset as the failure fallback.
type Service struct {
	client     VolumesClient
	cache      Cache
	batchSize  int
	batchDelay time.Duration
	cooldown   time.Duration

	mu        sync.Mutex
	mockUntil time.Time
	now       func() time.Time
}

func NewService(client VolumesClient, cache Cache, opts Options) *Service {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.BatchDelay < 0 {
		opts.BatchDelay = DefaultBatchDelay
	}
	if opts.MockCooldown <= 0 {
		opts.MockCooldown = DefaultMockCooldown
	}
	return &Service{
		client:     client,
		cache:      cache,
		batchSize:  opts.BatchSize,
		batchDelay: opts.BatchDelay,
		cooldown:   opts.MockCooldown,
		now:        time.Now,
	}
}

// UsingMockData reports whether the service is inside the rate-limit
// cooldown and serving bundled data only.
func (s *Service) UsingMockData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now().Before(s.mockUntil)
}

func (s *Service) enterMockMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mockUntil = s.now().Add(s.cooldown)
	log.Printf("Catalog: rate limited by Google Books, serving bundled data for %v", s.cooldown)
}

// Featured returns a random featured book drawn from the featured
// category pool.
func (s *Service) Featured(ctx context.Context) BookResult {
	if s.UsingMockData() {
		book := mockbooks.Featured()
		return BookResult{Book: &book, Source: SourceFallback}
	}

	if value, ok := s.cache.Get(cacheKeyFeatured); ok {
		if book, ok := value.(entities.Book); ok {
			return BookResult{Book: &book, Source: SourceCache}
		}
	}

	if !s.cache.Allow() {
		book := mockbooks.Featured()
		return BookResult{Book: &book, Source: SourceFallback}
	}

	category := mockbooks.FeaturedCategoryIDs[rand.Intn(len(mockbooks.FeaturedCategoryIDs))]
	books, err := s.client.VolumesBySubject(ctx, category, maxResultsFeatured)
	if err != nil {
		if errors.Is(err, googlebooks.ErrRateLimited) {
			s.enterMockMode()
			return s.Featured(ctx)
		}
		log.Printf("Catalog: featured fetch failed: %v", err)
		return BookResult{Source: SourceFallback}
	}
	if len(books) == 0 {
		return BookResult{Source: SourceNetwork}
	}

	book := books[rand.Intn(len(books))]
	s.cache.Set(cacheKeyFeatured, book)
	return BookResult{Book: &book, Source: SourceNetwork}
}

// BooksByCategory returns the books for one category. It never fails:
// when the network cannot be used the category's bundled list is served.
func (s *Service) BooksByCategory(ctx context.Context, categoryID string) Result {
	if s.UsingMockData() {
		return Result{Books: mockbooks.ByCategory(categoryID), Source: SourceFallback}
	}

	cacheKey := cacheKeyCategoryPrefix + categoryID
	if value, ok := s.cache.Get(cacheKey); ok {
		if books, ok := value.([]entities.Book); ok {
			return Result{Books: books, Source: SourceCache}
		}
	}

	if !s.cache.Allow() {
		return Result{Books: mockbooks.ByCategory(categoryID), Source: SourceFallback}
	}

	books, err := s.client.VolumesBySubject(ctx, categoryID, maxResultsCategory)
	if err != nil {
		if errors.Is(err, googlebooks.ErrRateLimited) {
			s.enterMockMode()
			return s.BooksByCategory(ctx, categoryID)
		}
		log.Printf("Catalog: category %s fetch failed, using bundled data: %v", categoryID, err)
		return Result{Books: mockbooks.ByCategory(categoryID), Source: SourceFallback}
	}

	s.cache.Set(cacheKey, books)
	return Result{Books: books, Source: SourceNetwork}
}

// Search returns books matching a free-text query. Failures other than
// rate limiting yield an empty result, not an error.
func (s *Service) Search(ctx context.Context, query string) Result {
	if s.UsingMockData() {
		return Result{Books: mockbooks.Search(query), Source: SourceFallback}
	}

	cacheKey := cacheKeySearchPrefix + query
	if value, ok := s.cache.Get(cacheKey); ok {
		if books, ok := value.([]entities.Book); ok {
			return Result{Books: books, Source: SourceCache}
		}
	}

	if !s.cache.Allow() {
		return Result{Books: mockbooks.Search(query), Source: SourceFallback}
	}

	books, err := s.client.SearchVolumes(ctx, query, maxResultsSearch)
	if err != nil {
		if errors.Is(err, googlebooks.ErrRateLimited) {
			s.enterMockMode()
			return s.Search(ctx, query)
		}
		log.Printf("Catalog: search %q failed: %v", query, err)
		return Result{Books: []entities.Book{}, Source: SourceFallback}
	}

	s.cache.Set(cacheKey, books)
	return Result{Books: books, Source: SourceNetwork}
}

// AllCategories loads several categories in fixed-size batches, waiting
// between batches to stay under the API's rate limit. Categories within a
// batch load concurrently. A failed category is substituted with its
// bundled list and never aborts the rest.
func (s *Service) AllCategories(ctx context.Context, categoryIDs []string) map[string]Result {
	results := make(map[string]Result, len(categoryIDs))
	var mu sync.Mutex

	for i := 0; i < len(categoryIDs); i += s.batchSize {
		end := min(i+s.batchSize, len(categoryIDs))

		var wg sync.WaitGroup
		for _, id := range categoryIDs[i:end] {
			wg.Add(1)
			go func(categoryID string) {
				defer wg.Done()
				result := s.BooksByCategory(ctx, categoryID)
				mu.Lock()
				results[categoryID] = result
				mu.Unlock()
			}(id)
		}
		wg.Wait()

		if end < len(categoryIDs) && s.batchDelay > 0 {
			select {
			case <-ctx.Done():
				// Fill the remainder from the bundled dataset
				for _, id := range categoryIDs[end:] {
					results[id] = Result{Books: mockbooks.ByCategory(id), Source: SourceFallback}
				}
				return results
			case <-time.After(s.batchDelay):
			}
		}
	}

	return results
}
