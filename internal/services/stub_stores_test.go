package services

import (
	"contribhub/internal/models"
)

type stubAccountStore struct {
	accounts   []models.Account
	getErr     error
	replaceErr error
}

func (stub *stubAccountStore) Get() ([]models.Account, error) {
	if stub.getErr != nil {
		return nil, stub.getErr
	}
	result := make([]models.Account, len(stub.accounts))
	copy(result, stub.accounts)
	return result, nil
}

func (stub *stubAccountStore) Replace(accounts []models.Account) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.accounts = accounts
	return nil
}

func (stub *stubAccountStore) Update(transform func([]models.Account) ([]models.Account, error)) error {
	accounts, err := stub.Get()
	if err != nil {
		return err
	}
	updated, err := transform(accounts)
	if err != nil {
		return err
	}
	return stub.Replace(updated)
}

type stubPaymentStore struct {
	payments   []models.Payment
	getErr     error
	replaceErr error
}

func (stub *stubPaymentStore) Get() ([]models.Payment, error) {
	if stub.getErr != nil {
		return nil, stub.getErr
	}
	result := make([]models.Payment, len(stub.payments))
	copy(result, stub.payments)
	return result, nil
}

func (stub *stubPaymentStore) Replace(payments []models.Payment) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.payments = payments
	return nil
}

func (stub *stubPaymentStore) Update(transform func([]models.Payment) ([]models.Payment, error)) error {
	payments, err := stub.Get()
	if err != nil {
		return err
	}
	updated, err := transform(payments)
	if err != nil {
		return err
	}
	return stub.Replace(updated)
}

type stubNotificationStore struct {
	notifications []models.Notification
	getErr        error
	replaceErr    error
}

func (stub *stubNotificationStore) Get() ([]models.Notification, error) {
	if stub.getErr != nil {
		return nil, stub.getErr
	}
	result := make([]models.Notification, len(stub.notifications))
	copy(result, stub.notifications)
	return result, nil
}

func (stub *stubNotificationStore) Replace(notifications []models.Notification) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.notifications = notifications
	return nil
}

func (stub *stubNotificationStore) Update(transform func([]models.Notification) ([]models.Notification, error)) error {
	notifications, err := stub.Get()
	if err != nil {
		return err
	}
	updated, err := transform(notifications)
	if err != nil {
		return err
	}
	return stub.Replace(updated)
}

type stubSettingsStore struct {
	settings   models.Settings
	getErr     error
	replaceErr error
}

func (stub *stubSettingsStore) Get() (models.Settings, error) {
	if stub.getErr != nil {
		return models.Settings{}, stub.getErr
	}
	return stub.settings, nil
}

func (stub *stubSettingsStore) Replace(settings models.Settings) error {
	if stub.replaceErr != nil {
		return stub.replaceErr
	}
	stub.settings = settings
	return nil
}
