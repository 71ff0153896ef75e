package entities

import (
	"time"
)

// Favorite is a locally persisted favourite book, keyed by the device that
// saved it and the Google Books volume id.
type Favorite struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	DeviceID      string    `gorm:"uniqueIndex:idx_device_book;size:100" json:"device_id"`
	GoogleBooksID string    `gorm:"uniqueIndex:idx_device_book;size:100" json:"google_books_id"`
	Title         string    `gorm:"size:500" json:"title"`
	Author        string    `gorm:"size:500" json:"author"`
	ThumbnailURL  string    `gorm:"size:1000" json:"thumbnail_url,omitempty"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	PublishedDate string    `gorm:"size:50" json:"published_date,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Book converts the stored favourite back into the normalized record.
func (f Favorite) Book() Book {
	b := Book{
		ID:            f.GoogleBooksID,
		Title:         f.Title,
		Description:   f.Description,
		ThumbnailURL:  f.ThumbnailURL,
		PublishedDate: f.PublishedDate,
	}
	if f.Author != "" {
		b.Authors = []string{f.Author}
	}
	return b
}

// NewFavorite builds a favourite row for a device from a normalized record.
func NewFavorite(deviceID string, b Book) Favorite {
	return Favorite{
		DeviceID:      deviceID,
		GoogleBooksID: b.ID,
		Title:         b.Title,
		Author:        b.AuthorLine(),
		ThumbnailURL:  b.ThumbnailURL,
		Description:   b.Description,
		PublishedDate: b.PublishedDate,
	}
}
