package services

import (
	"errors"
	"reflect"
	"testing"

	"contribhub/internal/models"
	"github.com/shopspring/decimal"
)

func approvedClientStore() *stubAccountStore {
	return &stubAccountStore{accounts: []models.Account{{
		ID:           "acc-1",
		Name:         "Jane Doe",
		MembershipID: "T-01",
		Role:         models.RoleClient,
		Status:       models.StatusApproved,
	}}}
}

func TestSubmitCreatesPendingPayment(t *testing.T) {
	payments := &stubPaymentStore{}
	service := NewPaymentService(payments, approvedClientStore())

	payment, err := service.Submit("acc-1", decimal.NewFromInt(5000), models.CategoryContribution, "receipt://abc")
	if err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}
	if payment.Status != models.StatusPending {
		t.Fatalf("expected PENDING, got %s", payment.Status)
	}
	if payment.OwnerDisplayName != "Jane Doe" {
		t.Fatalf("expected snapshotted owner name, got %q", payment.OwnerDisplayName)
	}
	if payment.SubmittedAt.IsZero() {
		t.Fatal("expected submittedAt to be set")
	}
	if len(payments.payments) != 1 {
		t.Fatalf("expected one stored payment, got %d", len(payments.payments))
	}
}

func TestSubmitAcceptsEmptyReceiptAndZeroAmount(t *testing.T) {
	service := NewPaymentService(&stubPaymentStore{}, approvedClientStore())

	if _, err := service.Submit("acc-1", decimal.Zero, models.CategorySaving, ""); err != nil {
		t.Fatalf("zero amount with empty receipt must be accepted, got %v", err)
	}
}

func TestSubmitValidation(t *testing.T) {
	service := NewPaymentService(&stubPaymentStore{}, approvedClientStore())

	tests := []struct {
		name     string
		owner    string
		amount   decimal.Decimal
		category string
		want     error
	}{
		{name: "negative amount", owner: "acc-1", amount: decimal.NewFromInt(-1), category: models.CategorySaving, want: ErrValidation},
		{name: "unknown category", owner: "acc-1", amount: decimal.NewFromInt(10), category: "Lottery", want: ErrValidation},
		{name: "unknown owner", owner: "ghost", amount: decimal.NewFromInt(10), category: models.CategorySaving, want: ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := service.Submit(testCase.owner, testCase.amount, testCase.category, ""); !errors.Is(err, testCase.want) {
				t.Fatalf("expected %v, got %v", testCase.want, err)
			}
		})
	}
}

func TestOwnerDisplayNameStaysStaleAfterRename(t *testing.T) {
	accounts := approvedClientStore()
	payments := &stubPaymentStore{}
	service := NewPaymentService(payments, accounts)

	if _, err := service.Submit("acc-1", decimal.NewFromInt(100), models.CategoryContribution, ""); err != nil {
		t.Fatalf("Submit() unexpected error: %v", err)
	}

	accounts.accounts[0].Name = "Jane Smith"

	stored, err := service.ListForOwner("acc-1")
	if err != nil {
		t.Fatalf("ListForOwner() unexpected error: %v", err)
	}
	if stored[0].OwnerDisplayName != "Jane Doe" {
		t.Fatalf("snapshot must not follow the rename, got %q", stored[0].OwnerDisplayName)
	}
}

func TestReviewReplacesOnlyStatus(t *testing.T) {
	payments := &stubPaymentStore{payments: []models.Payment{{
		ID:               "pay-1",
		OwnerAccountID:   "acc-1",
		OwnerDisplayName: "Jane Doe",
		Amount:           decimal.NewFromInt(5000),
		Category:         models.CategoryContribution,
		Status:           models.StatusPending,
	}}}
	service := NewPaymentService(payments, approvedClientStore())

	reviewed, err := service.Review("pay-1", models.StatusApproved)
	if err != nil {
		t.Fatalf("Review() unexpected error: %v", err)
	}
	if reviewed.Status != models.StatusApproved {
		t.Fatalf("expected APPROVED, got %s", reviewed.Status)
	}
	if !reviewed.Amount.Equal(decimal.NewFromInt(5000)) || reviewed.OwnerDisplayName != "Jane Doe" {
		t.Fatal("review must leave every other field unchanged")
	}
}

func TestReviewIsIdempotent(t *testing.T) {
	payments := &stubPaymentStore{payments: []models.Payment{{
		ID:     "pay-1",
		Status: models.StatusPending,
	}}}
	service := NewPaymentService(payments, approvedClientStore())

	if _, err := service.Review("pay-1", models.StatusApproved); err != nil {
		t.Fatalf("first Review() unexpected error: %v", err)
	}
	once := make([]models.Payment, len(payments.payments))
	copy(once, payments.payments)

	if _, err := service.Review("pay-1", models.StatusApproved); err != nil {
		t.Fatalf("second Review() unexpected error: %v", err)
	}
	if !reflect.DeepEqual(once, payments.payments) {
		t.Fatal("re-approving must yield the same final state")
	}
}

func TestReviewCanResetToPending(t *testing.T) {
	payments := &stubPaymentStore{payments: []models.Payment{{
		ID:     "pay-1",
		Status: models.StatusRejected,
	}}}
	service := NewPaymentService(payments, approvedClientStore())

	reviewed, err := service.Review("pay-1", models.StatusPending)
	if err != nil {
		t.Fatalf("Review() unexpected error: %v", err)
	}
	if reviewed.Status != models.StatusPending {
		t.Fatalf("expected payment reset to PENDING, got %s", reviewed.Status)
	}
}

func TestReviewFailures(t *testing.T) {
	payments := &stubPaymentStore{payments: []models.Payment{{ID: "pay-1", Status: models.StatusPending}}}
	service := NewPaymentService(payments, approvedClientStore())

	if _, err := service.Review("ghost", models.StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.Review("pay-1", "MAYBE"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestListPendingFiltersByStatus(t *testing.T) {
	payments := &stubPaymentStore{payments: []models.Payment{
		{ID: "pay-1", Status: models.StatusPending},
		{ID: "pay-2", Status: models.StatusApproved},
		{ID: "pay-3", Status: models.StatusPending},
	}}
	service := NewPaymentService(payments, approvedClientStore())

	pending, err := service.ListPending()
	if err != nil {
		t.Fatalf("ListPending() unexpected error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected two pending payments, got %d", len(pending))
	}
}
