package models

import "time"

// RecipientAll is the broadcast sentinel: a notification addressed to it is
// visible to every account.
const RecipientAll = "ALL"

type Notification struct {
	ID          string    `json:"id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	SentAt      time.Time `json:"sent_at"`
}

func (notification Notification) VisibleTo(accountID string) bool {
	return notification.RecipientID == RecipientAll || notification.RecipientID == accountID
}
