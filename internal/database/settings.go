package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"livraria/internal/entities"
)

func (d *Database) GetSetting(key string) (*entities.Setting, error) {
	var setting entities.Setting
	err := d.DB.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (d *Database) SetSetting(key, value string) error {
	var setting entities.Setting
	result := d.DB.Where("key = ?", key).First(&setting)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		setting = entities.Setting{
			Key:   key,
			Value: value,
		}
		return d.DB.Create(&setting).Error
	} else if result.Error != nil {
		return result.Error
	}

	setting.Value = value
	return d.DB.Save(&setting).Error
}

func (d *Database) DeleteSetting(key string) error {
	return d.DB.Where("key = ?", key).Delete(&entities.Setting{}).Error
}

// SetFavoritesSyncStatus records the outcome of the latest favourites sync.
func (d *Database) SetFavoritesSyncStatus(status, message string) error {
	if err := d.SetSetting(entities.SettingKeyFavoritesSyncLastAt, time.Now().Format(time.RFC3339)); err != nil {
		return err
	}
	if err := d.SetSetting(entities.SettingKeyFavoritesSyncLastStatus, status); err != nil {
		return err
	}
	return d.SetSetting(entities.SettingKeyFavoritesSyncLastMessage, message)
}

// GetFavoritesSyncStatus returns the recorded outcome of the latest sync,
// or empty values when no sync has run yet.
func (d *Database) GetFavoritesSyncStatus() (lastAt *time.Time, status, message string) {
	if s, err := d.GetSetting(entities.SettingKeyFavoritesSyncLastAt); err == nil {
		if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
			lastAt = &t
		}
	}
	if s, err := d.GetSetting(entities.SettingKeyFavoritesSyncLastStatus); err == nil {
		status = s.Value
	}
	if s, err := d.GetSetting(entities.SettingKeyFavoritesSyncLastMessage); err == nil {
		message = s.Value
	}
	return lastAt, status, message
}
