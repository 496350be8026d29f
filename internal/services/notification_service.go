package services

import (
	"sort"
	"strings"
	"time"

	"contribhub/internal/models"
	"github.com/google/uuid"
)

type NotificationService struct {
	notifications NotificationStore
}

func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{notifications: notifications}
}

// Send records a notification for one account, or for everyone when the
// recipient is the broadcast sentinel.
func (service *NotificationService) Send(recipientID string, body string) (models.Notification, error) {
	recipientID = strings.TrimSpace(recipientID)
	body = strings.TrimSpace(body)
	if recipientID == "" {
		return models.Notification{}, validationError("recipient must not be empty")
	}
	if body == "" {
		return models.Notification{}, validationError("message body must not be empty")
	}

	notification := models.Notification{
		ID:          uuid.NewString(),
		RecipientID: recipientID,
		Body:        body,
		SentAt:      time.Now(),
	}

	err := service.notifications.Update(func(notifications []models.Notification) ([]models.Notification, error) {
		return append(notifications, notification), nil
	})
	if err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

func (service *NotificationService) Broadcast(body string) (models.Notification, error) {
	return service.Send(models.RecipientAll, body)
}

// ForAccount returns the notifications visible to the account, most recent
// first. Recent-first is the presentation default, not a stored order.
func (service *NotificationService) ForAccount(accountID string) ([]models.Notification, error) {
	notifications, err := service.notifications.Get()
	if err != nil {
		return nil, err
	}
	return SortRecentFirst(VisibleNotifications(accountID, notifications)), nil
}

// VisibleNotifications filters to those addressed to the account or broadcast
// to everyone, preserving input order.
func VisibleNotifications(accountID string, notifications []models.Notification) []models.Notification {
	visible := make([]models.Notification, 0, len(notifications))
	for _, notification := range notifications {
		if notification.VisibleTo(accountID) {
			visible = append(visible, notification)
		}
	}
	return visible
}

// SortRecentFirst returns a copy ordered by sentAt descending.
func SortRecentFirst(notifications []models.Notification) []models.Notification {
	ordered := make([]models.Notification, len(notifications))
	copy(ordered, notifications)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SentAt.After(ordered[j].SentAt)
	})
	return ordered
}
