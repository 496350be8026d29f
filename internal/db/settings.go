package db

import (
	"errors"
	"sync"

	"contribhub/internal/models"
	"gorm.io/gorm"
)

const settingsKey = "hub_settings"

type SettingsCollection struct {
	database *gorm.DB
	mu       sync.Mutex
}

func NewSettingsCollection(database *gorm.DB) *SettingsCollection {
	return &SettingsCollection{database: database}
}

func (collection *SettingsCollection) Get() (models.Settings, error) {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	var settings models.Settings
	err := readBlob(collection.database, settingsKey, &settings)
	if errors.Is(err, errBlobMissing) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (collection *SettingsCollection) Replace(settings models.Settings) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return writeBlob(collection.database, settingsKey, settings)
}
