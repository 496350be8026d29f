package models

import (
	"strings"
	"time"
)

const (
	RoleManager = "MANAGER"
	RoleClient  = "CLIENT"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Account struct {
	ID                      string     `json:"id"`
	Name                    string     `json:"name"`
	Email                   string     `json:"email"`
	MembershipID            string     `json:"membership_id,omitempty"`
	CredentialHash          string     `json:"credential_hash,omitempty"`
	Role                    string     `json:"role"`
	Status                  string     `json:"status"`
	RequiresCredentialReset bool       `json:"requires_credential_reset"`
	RegisteredAt            time.Time  `json:"registered_at"`
	LastAuthenticatedAt     *time.Time `json:"last_authenticated_at,omitempty"`
}

// HasMembershipID reports whether the account matches the given login handle.
// Membership ids are compared case-insensitively.
func (account Account) HasMembershipID(membershipID string) bool {
	if strings.TrimSpace(account.MembershipID) == "" {
		return false
	}
	return strings.EqualFold(account.MembershipID, strings.TrimSpace(membershipID))
}

func (account Account) IsManager() bool {
	return account.Role == RoleManager
}

func (account Account) IsApprovedClient() bool {
	return account.Role == RoleClient && account.Status == StatusApproved
}
