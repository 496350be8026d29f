package services

import (
	"fmt"
	"strings"
	"time"

	"contribhub/internal/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ApprovalNotifier delivers the membership-id announcement emitted when a
// registration is approved. Account approval is the only lifecycle event that
// notifies; payment decisions deliberately stay silent.
type ApprovalNotifier interface {
	Send(recipientID string, body string) (models.Notification, error)
}

type AccountService struct {
	accounts AccountStore
	payments PaymentStore
	notifier ApprovalNotifier
}

func NewAccountService(accounts AccountStore, payments PaymentStore, notifier ApprovalNotifier) *AccountService {
	return &AccountService{accounts: accounts, payments: payments, notifier: notifier}
}

func (service *AccountService) List() ([]models.Account, error) {
	return service.accounts.Get()
}

func (service *AccountService) FindByID(accountID string) (models.Account, error) {
	accounts, err := service.accounts.Get()
	if err != nil {
		return models.Account{}, err
	}
	for _, account := range accounts {
		if account.ID == accountID {
			return account, nil
		}
	}
	return models.Account{}, ErrNotFound
}

// Register creates a PENDING client account with no membership id or
// credential. Both are assigned at approval time.
func (service *AccountService) Register(name string, email string) (models.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return models.Account{}, validationError("name must not be empty")
	}
	if email == "" {
		return models.Account{}, validationError("email must not be empty")
	}

	account := models.Account{
		ID:                      uuid.NewString(),
		Name:                    name,
		Email:                   email,
		Role:                    models.RoleClient,
		Status:                  models.StatusPending,
		RequiresCredentialReset: true,
		RegisteredAt:            time.Now(),
	}

	err := service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		return append(accounts, account), nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// Approve assigns the membership id and a temporary credential, then notifies
// the new member. The accounts write and the notification write are two
// independent steps: a failed notification leaves the approval persisted.
func (service *AccountService) Approve(accountID string, membershipID string, secret string) (models.Account, error) {
	membershipID = strings.TrimSpace(membershipID)
	if membershipID == "" {
		return models.Account{}, validationError("membership id must not be empty")
	}
	if secret == "" {
		return models.Account{}, validationError("credential must not be empty")
	}

	credentialHash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash credential: %w", err)
	}

	var approved models.Account
	err = service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		index := -1
		for position := range accounts {
			if accounts[position].ID == accountID {
				index = position
				continue
			}
			if accounts[position].HasMembershipID(membershipID) {
				return nil, validationError("membership id %q is already assigned", membershipID)
			}
		}
		if index < 0 {
			return nil, ErrNotFound
		}
		if accounts[index].Status != models.StatusPending {
			return nil, validationError("only pending accounts can be approved")
		}

		accounts[index].Status = models.StatusApproved
		accounts[index].MembershipID = membershipID
		accounts[index].CredentialHash = string(credentialHash)
		accounts[index].RequiresCredentialReset = true
		approved = accounts[index]
		return accounts, nil
	})
	if err != nil {
		return models.Account{}, err
	}

	body := fmt.Sprintf("Approved! Your membership ID is %s. Log in and update your credential.", membershipID)
	if _, err := service.notifier.Send(approved.ID, body); err != nil {
		return approved, fmt.Errorf("send approval notification: %w", err)
	}
	return approved, nil
}

// Reject marks the account REJECTED and keeps the record. A rejected account
// can no longer authenticate; removal is a separate, explicit delete.
func (service *AccountService) Reject(accountID string) (models.Account, error) {
	var rejected models.Account
	err := service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		for index := range accounts {
			if accounts[index].ID != accountID {
				continue
			}
			accounts[index].Status = models.StatusRejected
			rejected = accounts[index]
			return accounts, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Account{}, err
	}
	return rejected, nil
}

// DeleteAccount removes the account and cascades to every payment it owns.
// The two collections are written sequentially, accounts first.
func (service *AccountService) DeleteAccount(accountID string) error {
	err := service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		remaining := make([]models.Account, 0, len(accounts))
		found := false
		for _, account := range accounts {
			if account.ID == accountID {
				found = true
				continue
			}
			remaining = append(remaining, account)
		}
		if !found {
			return nil, ErrNotFound
		}
		return remaining, nil
	})
	if err != nil {
		return err
	}

	return service.payments.Update(func(payments []models.Payment) ([]models.Payment, error) {
		remaining := make([]models.Payment, 0, len(payments))
		for _, payment := range payments {
			if payment.OwnerAccountID == accountID {
				continue
			}
			remaining = append(remaining, payment)
		}
		return remaining, nil
	})
}

// SetCredential lets an account holder choose their own secret, clearing the
// first-login reset requirement.
func (service *AccountService) SetCredential(accountID string, newSecret string) (models.Account, error) {
	return service.updateCredential(accountID, newSecret, false)
}

// ResetCredential is the admin override: it replaces the secret and forces
// the account back through the first-login reset flow.
func (service *AccountService) ResetCredential(accountID string, newSecret string) (models.Account, error) {
	return service.updateCredential(accountID, newSecret, true)
}

func (service *AccountService) updateCredential(accountID string, newSecret string, requiresReset bool) (models.Account, error) {
	if newSecret == "" {
		return models.Account{}, validationError("credential must not be empty")
	}

	credentialHash, err := bcrypt.GenerateFromPassword([]byte(newSecret), bcrypt.DefaultCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash credential: %w", err)
	}

	var updated models.Account
	err = service.accounts.Update(func(accounts []models.Account) ([]models.Account, error) {
		for index := range accounts {
			if accounts[index].ID != accountID {
				continue
			}
			accounts[index].CredentialHash = string(credentialHash)
			accounts[index].RequiresCredentialReset = requiresReset
			updated = accounts[index]
			return accounts, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.Account{}, err
	}
	return updated, nil
}
