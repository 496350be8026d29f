package api

import (
	"time"

	"contribhub/internal/models"
	"contribhub/internal/services"
	"github.com/shopspring/decimal"
)

// accountView is the wire shape of an account. The credential hash never
// leaves the process.
type accountView struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Email                   string     `json:"email"`
	MembershipID            string     `json:"membership_id,omitempty"`
	Role                    string     `json:"role"`
	Status                  string     `json:"status"`
	RequiresCredentialReset bool       `json:"requires_credential_reset"`
	RegisteredAt            time.Time  `json:"registered_at"`
	LastAuthenticatedAt     *time.Time `json:"last_authenticated_at,omitempty"`
}

func accountToView(account models.Account) accountView {
	return accountView{
		ID:                      account.ID,
		Name:                    account.Name,
		Email:                   account.Email,
		MembershipID:            account.MembershipID,
		Role:                    account.Role,
		Status:                  account.Status,
		RequiresCredentialReset: account.RequiresCredentialReset,
		RegisteredAt:            account.RegisteredAt,
		LastAuthenticatedAt:     account.LastAuthenticatedAt,
	}
}

func accountsToViews(accounts []models.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, accountToView(account))
	}
	return views
}

type ledgerEntryView struct {
	Account    accountView                `json:"account"`
	Totals     map[string]decimal.Decimal `json:"totals"`
	GrandTotal decimal.Decimal            `json:"grand_total"`
}

func ledgerToViews(entries []services.LedgerEntry) []ledgerEntryView {
	views := make([]ledgerEntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, ledgerEntryView{
			Account:    accountToView(entry.Account),
			Totals:     entry.Totals,
			GrandTotal: entry.GrandTotal,
		})
	}
	return views
}
