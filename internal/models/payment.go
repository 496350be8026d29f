package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	CategoryContribution  = "Contribution"
	CategorySaving        = "Saving"
	CategoryDiamondSaving = "Diamond Saving"
)

// PaymentCategories returns the closed, ordered category set. Totals are always
// reported in this order, including zero rows.
func PaymentCategories() []string {
	return []string{CategoryContribution, CategorySaving, CategoryDiamondSaving}
}

func IsPaymentCategory(category string) bool {
	for _, known := range PaymentCategories() {
		if category == known {
			return true
		}
	}
	return false
}

func IsPaymentStatus(status string) bool {
	switch status {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID               string          `json:"id"`
	OwnerAccountID   string          `json:"owner_account_id"`
	OwnerDisplayName string          `json:"owner_display_name"`
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category"`
	SubmittedAt      time.Time       `json:"submitted_at"`
	ReceiptReference string          `json:"receipt_reference,omitempty"`
	Status           string          `json:"status"`
}
