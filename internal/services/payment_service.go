package services

import (
	"time"

	"contribhub/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentService struct {
	payments PaymentStore
	accounts AccountStore
}

func NewPaymentService(payments PaymentStore, accounts AccountStore) *PaymentService {
	return &PaymentService{payments: payments, accounts: accounts}
}

// Submit records a PENDING payment. The submitter's display name is
// snapshotted at submission time and never updated afterwards, so the ledger
// keeps showing who submitted even if the account is later renamed. The
// receipt reference is an opaque handle and may be empty.
func (service *PaymentService) Submit(ownerAccountID string, amount decimal.Decimal, category string, receiptReference string) (models.Payment, error) {
	if amount.IsNegative() {
		return models.Payment{}, validationError("amount must not be negative")
	}
	if !models.IsPaymentCategory(category) {
		return models.Payment{}, validationError("unknown payment category %q", category)
	}

	accounts, err := service.accounts.Get()
	if err != nil {
		return models.Payment{}, err
	}
	ownerName := ""
	found := false
	for _, account := range accounts {
		if account.ID == ownerAccountID {
			ownerName = account.Name
			found = true
			break
		}
	}
	if !found {
		return models.Payment{}, ErrNotFound
	}

	payment := models.Payment{
		ID:               uuid.NewString(),
		OwnerAccountID:   ownerAccountID,
		OwnerDisplayName: ownerName,
		Amount:           amount,
		Category:         category,
		SubmittedAt:      time.Now(),
		ReceiptReference: receiptReference,
		Status:           models.StatusPending,
	}

	err = service.payments.Update(func(payments []models.Payment) ([]models.Payment, error) {
		return append(payments, payment), nil
	})
	if err != nil {
		return models.Payment{}, err
	}
	return payment, nil
}

// Review replaces the status of exactly the matching payment. PENDING is a
// legal target: a decided payment can be reset for re-review. No notification
// is emitted on payment decisions.
func (service *PaymentService) Review(paymentID string, decision string) (models.Payment, error) {
	if !models.IsPaymentStatus(decision) {
		return models.Payment{}, validationError("unknown payment status %q", decision)
	}

	var reviewed models.Payment
	err := service.payments.Update(func(payments []models.Payment) ([]models.Payment, error) {
		for index := range payments {
			if payments[index].ID != paymentID {
				continue
			}
			payments[index].Status = decision
			reviewed = payments[index]
			return payments, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Payment{}, err
	}
	return reviewed, nil
}

func (service *PaymentService) ListAll() ([]models.Payment, error) {
	return service.payments.Get()
}

func (service *PaymentService) ListForOwner(ownerAccountID string) ([]models.Payment, error) {
	payments, err := service.payments.Get()
	if err != nil {
		return nil, err
	}
	owned := make([]models.Payment, 0)
	for _, payment := range payments {
		if payment.OwnerAccountID == ownerAccountID {
			owned = append(owned, payment)
		}
	}
	return owned, nil
}

func (service *PaymentService) ListPending() ([]models.Payment, error) {
	payments, err := service.payments.Get()
	if err != nil {
		return nil, err
	}
	pending := make([]models.Payment, 0)
	for _, payment := range payments {
		if payment.Status == models.StatusPending {
			pending = append(pending, payment)
		}
	}
	return pending, nil
}
