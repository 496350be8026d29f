package db

import "gorm.io/gorm"

// Collections bundles the four independently-locked named collections the
// domain services run against. Each collection serializes its own
// read-modify-write cycles; there is no cross-collection atomicity.
type Collections struct {
	Accounts      *AccountCollection
	Payments      *PaymentCollection
	Notifications *NotificationCollection
	Settings      *SettingsCollection
}

func NewCollections(database *gorm.DB) *Collections {
	return &Collections{
		Accounts:      NewAccountCollection(database),
		Payments:      NewPaymentCollection(database),
		Notifications: NewNotificationCollection(database),
		Settings:      NewSettingsCollection(database),
	}
}
