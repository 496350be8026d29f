package services

import "contribhub/internal/models"

// The persistence collaborator exposes whole-collection reads and replaces.
// Update runs one read-modify-write cycle as a single critical section per
// collection; returning an error from the transform aborts the write.

type AccountStore interface {
	Get() ([]models.Account, error)
	Replace(accounts []models.Account) error
	Update(transform func([]models.Account) ([]models.Account, error)) error
}

type PaymentStore interface {
	Get() ([]models.Payment, error)
	Replace(payments []models.Payment) error
	Update(transform func([]models.Payment) ([]models.Payment, error)) error
}

type NotificationStore interface {
	Get() ([]models.Notification, error)
	Replace(notifications []models.Notification) error
	Update(transform func([]models.Notification) ([]models.Notification, error)) error
}

type SettingsStore interface {
	Get() (models.Settings, error)
	Replace(settings models.Settings) error
}
