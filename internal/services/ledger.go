package services

import (
	"contribhub/internal/models"
	"github.com/shopspring/decimal"
)

// The ledger functions are pure: they never mutate their inputs and tolerate
// empty collections, yielding all-zero results.

// TotalsByCategory sums approved payment amounts per category. Every category
// in the fixed set gets an entry, zero when nothing matched.
func TotalsByCategory(payments []models.Payment) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(models.PaymentCategories()))
	for _, category := range models.PaymentCategories() {
		totals[category] = decimal.Zero
	}
	for _, payment := range payments {
		if payment.Status != models.StatusApproved {
			continue
		}
		if _, known := totals[payment.Category]; !known {
			continue
		}
		totals[payment.Category] = totals[payment.Category].Add(payment.Amount)
	}
	return totals
}

// GrandTotal sums amounts over all approved payments. It always equals the
// sum of the TotalsByCategory values for the same collection.
func GrandTotal(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, payment := range payments {
		if payment.Status != models.StatusApproved {
			continue
		}
		total = total.Add(payment.Amount)
	}
	return total
}

type LedgerEntry struct {
	Account    models.Account
	Totals     map[string]decimal.Decimal
	GrandTotal decimal.Decimal
}

// PerAccountLedger breaks totals down per approved client account, in the
// order the account collection supplies them. Managers, pending, and rejected
// accounts are excluded.
func PerAccountLedger(accounts []models.Account, payments []models.Payment) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(accounts))
	for _, account := range accounts {
		if !account.IsApprovedClient() {
			continue
		}
		owned := make([]models.Payment, 0)
		for _, payment := range payments {
			if payment.OwnerAccountID == account.ID {
				owned = append(owned, payment)
			}
		}
		entries = append(entries, LedgerEntry{
			Account:    account,
			Totals:     TotalsByCategory(owned),
			GrandTotal: GrandTotal(owned),
		})
	}
	return entries
}
