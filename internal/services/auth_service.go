package services

import (
	"time"

	"contribhub/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	accounts AccountStore
}

func NewAuthService(accounts AccountStore) *AuthService {
	return &AuthService{accounts: accounts}
}

// Authenticate looks the account up by case-insensitive membership id and
// checks failures in a fixed order: unknown id, pending approval, deactivated,
// wrong secret. Status is checked before the secret so a pending account never
// leaks whether a guessed credential was right. Success touches
// lastAuthenticatedAt and returns the updated record.
func (service *AuthService) Authenticate(membershipID string, secret string) (models.Account, error) {
	var authenticated models.Account
	err := service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		index := -1
		for position := range accounts {
			if accounts[position].HasMembershipID(membershipID) {
				index = position
				break
			}
		}
		if index < 0 {
			return nil, ErrNotFound
		}

		switch accounts[index].Status {
		case models.StatusPending:
			return nil, ErrAccountPending
		case models.StatusRejected:
			return nil, ErrAccountDeactivated
		}

		if bcrypt.CompareHashAndPassword([]byte(accounts[index].CredentialHash), []byte(secret)) != nil {
			return nil, ErrInvalidCredential
		}

		now := time.Now()
		accounts[index].LastAuthenticatedAt = &now
		authenticated = accounts[index]
		return accounts, nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return authenticated, nil
}
