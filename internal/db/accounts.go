package db

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"contribhub/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const accountsKey = "hub_accounts"

// Bootstrap manager seeded on the first-ever accounts read. The default
// secret must be changed in any real deployment.
const (
	BootstrapManagerID    = "mgr-001"
	BootstrapManagerName  = "Admin Manager"
	BootstrapManagerEmail = "admin@contributionteam.com"
	BootstrapMembershipID = "ADMIN"
	DefaultManagerSecret  = "admin"
)

type AccountCollection struct {
	database *gorm.DB
	mu       sync.Mutex
}

func NewAccountCollection(database *gorm.DB) *AccountCollection {
	return &AccountCollection{database: database}
}

func (collection *AccountCollection) Get() ([]models.Account, error) {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.getLocked()
}

func (collection *AccountCollection) Replace(accounts []models.Account) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()
	return collection.replaceLocked(accounts)
}

// Update runs one read-modify-write cycle under the collection lock,
// preserving the single-writer-at-a-time assumption inside this process.
// Writers in other processes still race last-writer-wins.
func (collection *AccountCollection) Update(transform func([]models.Account) ([]models.Account, error)) error {
	collection.mu.Lock()
	defer collection.mu.Unlock()

	accounts, err := collection.getLocked()
	if err != nil {
		return err
	}
	updated, err := transform(accounts)
	if err != nil {
		return err
	}
	return collection.replaceLocked(updated)
}

func (collection *AccountCollection) getLocked() ([]models.Account, error) {
	accounts := make([]models.Account, 0)
	err := readBlob(collection.database, accountsKey, &accounts)
	if errors.Is(err, errBlobMissing) {
		return collection.seedLocked()
	}
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (collection *AccountCollection) replaceLocked(accounts []models.Account) error {
	if accounts == nil {
		accounts = make([]models.Account, 0)
	}
	return writeBlob(collection.database, accountsKey, accounts)
}

func (collection *AccountCollection) seedLocked() ([]models.Account, error) {
	credentialHash, err := bcrypt.GenerateFromPassword([]byte(DefaultManagerSecret), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash bootstrap manager secret: %w", err)
	}

	seeded := []models.Account{{
		ID:             BootstrapManagerID,
		Name:           BootstrapManagerName,
		Email:          BootstrapManagerEmail,
		MembershipID:   BootstrapMembershipID,
		CredentialHash: string(credentialHash),
		Role:           models.RoleManager,
		Status:         models.StatusApproved,
		RegisteredAt:   time.Now(),
	}}
	if err := collection.replaceLocked(seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}
