package db

import (
	"errors"
	"sync"

	"contribhub/internal/models"
	"gorm.io/gorm"
)

const notificationsKey = "hub_notifications"

type NotificationCollection struct {
	database *gorm.DB
	mu       sync.Mutex
}

func NewNotificationCollection(database *gorm.DB) *NotificationCollection {
	return &NotificationCollection{database: database}
}

func (collection *NotificationCollection) Get() ([]models.Notification, error) {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.getLocked()
}

func (collection *NotificationCollection) Replace(notifications []models.Notification) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.replaceLocked(notifications)
}

func (collection *NotificationCollection) Update(transform func([]models.Notification) ([]models.Notification, error)) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	notifications, err := collection.getLocked()
	if err != nil {
		return err
	}
	updated, err := transform(notifications)
	if err != nil {
		return err
	}
	return collection.replaceLocked(updated)
}

func (collection *NotificationCollection) getLocked() ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	err := readBlob(collection.database, notificationsKey, &notifications)
	if errors.Is(err, errBlobMissing) {
		return notifications, nil
	}
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (collection *NotificationCollection) replaceLocked(notifications []models.Notification) error {
	if notifications == nil {
		notifications = make([]models.Notification, 0)
	}
	return writeBlob(collection.database, notificationsKey, notifications)
}
