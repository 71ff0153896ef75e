package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"livraria/internal/entities"
)

// GetFavorites returns all favourites stored for a device, newest first.
func (d *Database) GetFavorites(deviceID string) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := d.DB.Where("device_id = ?", deviceID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

// GetFavoriteBooks returns the device's favourites as normalized records.
func (d *Database) GetFavoriteBooks(deviceID string) ([]entities.Book, error) {
	favorites, err := d.GetFavorites(deviceID)
	if err != nil {
		return nil, err
	}

	books := make([]entities.Book, 0, len(favorites))
	for _, f := range favorites {
		books = append(books, f.Book())
	}
	return books, nil
}

// HasFavorite reports whether a book is already stored for a device.
func (d *Database) HasFavorite(deviceID, googleBooksID string) (bool, error) {
	var count int64
	err := d.DB.Model(&entities.Favorite{}).
		Where("device_id = ? AND google_books_id = ?", deviceID, googleBooksID).
		Count(&count).Error
	return count > 0, err
}

// SaveFavorite stores a favourite, ignoring duplicates for the same
// device and book.
func (d *Database) SaveFavorite(favorite *entities.Favorite) error {
	var existing entities.Favorite
	result := d.DB.Where("device_id = ? AND google_books_id = ?",
		favorite.DeviceID, favorite.GoogleBooksID).First(&existing)

	if result.Error == nil {
		favorite.ID = existing.ID
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	if err := d.DB.Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to save favourite %s: %w", favorite.GoogleBooksID, err)
	}
	return nil
}

// DeleteFavorite removes a favourite for a device. Removing a book that
// is not stored is not an error.
func (d *Database) DeleteFavorite(deviceID, googleBooksID string) error {
	return d.DB.Where("device_id = ? AND google_books_id = ?", deviceID, googleBooksID).
		Delete(&entities.Favorite{}).Error
}

// ReplaceFavorites atomically swaps a device's favourites for the given
// list. Used when a remote fetch is treated as authoritative.
func (d *Database) ReplaceFavorites(deviceID string, books []entities.Book) error {
	return d.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("device_id = ?", deviceID).Delete(&entities.Favorite{}).Error; err != nil {
			return fmt.Errorf("failed to clear favourites: %w", err)
		}
		for _, b := range books {
			favorite := entities.NewFavorite(deviceID, b)
			if err := tx.Create(&favorite).Error; err != nil {
				return fmt.Errorf("failed to store favourite %s: %w", b.ID, err)
			}
		}
		return nil
	})
}

// CountFavorites returns how many favourites a device has stored.
func (d *Database) CountFavorites(deviceID string) (int64, error) {
	var count int64
	err := d.DB.Model(&entities.Favorite{}).
		Where("device_id = ?", deviceID).
		Count(&count).Error
	return count, err
}
