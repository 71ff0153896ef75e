// Package device manages the stable identifier that keys this
// installation's favourites on the backend.
package device

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"livraria/internal/entities"
)

// SettingsStore persists the generated identifier.
type SettingsStore interface {
	GetSetting(key string) (*entities.Setting, error)
	SetSetting(key, value string) error
}

// Identity lazily creates and caches the device identifier. Once an id
// has been persisted it is never regenerated.
type Identity struct {
	store SettingsStore

	mu     sync.Mutex
	cached string
}

func NewIdentity(store SettingsStore) *Identity {
	return &Identity{store: store}
}

// ID returns the device identifier, generating and persisting a new UUID
// on first use.
func (i *Identity) ID() (string, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.cached != "" {
		return i.cached, nil
	}

	if setting, err := i.store.GetSetting(entities.SettingKeyDeviceID); err == nil && setting.Value != "" {
		i.cached = setting.Value
		return i.cached, nil
	}

	id := uuid.NewString()
	if err := i.store.SetSetting(entities.SettingKeyDeviceID, id); err != nil {
		return "", fmt.Errorf("persist device id: %w", err)
	}

	i.cached = id
	return id, nil
}
