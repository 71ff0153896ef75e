package entities

import (
	"time"
)

type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:100" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Setting) TableName() string {
	return "settings"
}

// Known setting keys
const (
	// Device identity, generated once and never rotated
	SettingKeyDeviceID = "device_id"

	// Cached copy of the backend book list (JSON array of books)
	SettingKeyBackendBooksCache    = "backend_books_cache"
	SettingKeyBackendBooksCachedAt = "backend_books_cached_at"

	// Favorites sync status
	SettingKeyFavoritesSyncLastAt      = "favorites_sync_last_at"
	SettingKeyFavoritesSyncLastStatus  = "favorites_sync_last_status"
	SettingKeyFavoritesSyncLastMessage = "favorites_sync_last_message"
)
