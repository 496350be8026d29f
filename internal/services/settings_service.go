package services

import "contribhub/internal/models"

type SettingsService struct {
	settings SettingsStore
}

func NewSettingsService(settings SettingsStore) *SettingsService {
	return &SettingsService{settings: settings}
}

func (service *SettingsService) Load() (models.Settings, error) {
	return service.settings.Get()
}

func (service *SettingsService) SetRemindersEnabled(enabled bool) (models.Settings, error) {
	settings, err := service.settings.Get()
	if err != nil {
		return models.Settings{}, err
	}
	settings.RemindersEnabled = enabled
	if err := service.settings.Replace(settings); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}
