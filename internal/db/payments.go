package db

import (
	"errors"
	"sync"

	"contribhub/internal/models"
	"gorm.io/gorm"
)

const paymentsKey = "hub_payments"

type PaymentCollection struct {
	database *gorm.DB
	mu       sync.Mutex
}

func NewPaymentCollection(database *gorm.DB) *PaymentCollection {
	return &PaymentCollection{database: database}
}

func (collection *PaymentCollection) Get() ([]models.Payment, error) {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.getLocked()
}

func (collection *PaymentCollection) Replace(payments []models.Payment) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.replaceLocked(payments)
}

func (collection *PaymentCollection) Update(transform func([]models.Payment) ([]models.Payment, error)) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	payments, err := collection.getLocked()
	if err != nil {
		return err
	}
	updated, err := transform(payments)
	if err != nil {
		return err
	}
	return collection.replaceLocked(updated)
}

func (collection *PaymentCollection) getLocked() ([]models.Payment, error) {
	payments := make([]models.Payment, 0)
	err := readBlob(collection.database, paymentsKey, &payments)
	if errors.Is(err, errBlobMissing) {
		return payments, nil
	}
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (collection *PaymentCollection) replaceLocked(payments []models.Payment) error {
	if payments == nil {
		payments = make([]models.Payment, 0)
	}
	return writeBlob(collection.database, paymentsKey, payments)
}
