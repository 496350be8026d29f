package services

import (
	"errors"
	"testing"
	"time"

	"contribhub/internal/models"
)

func TestSendRecordsNotification(t *testing.T) {
	store := &stubNotificationStore{}
	service := NewNotificationService(store)

	notification, err := service.Send("acc-1", "Welcome aboard")
	if err != nil {
		t.Fatalf("Send() unexpected error: %v", err)
	}
	if notification.ID == "" || notification.SentAt.IsZero() {
		t.Fatal("expected id and sentAt to be set")
	}
	if len(store.notifications) != 1 {
		t.Fatalf("expected one stored notification, got %d", len(store.notifications))
	}
}

func TestSendValidation(t *testing.T) {
	service := NewNotificationService(&stubNotificationStore{})

	if _, err := service.Send("", "body"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty recipient, got %v", err)
	}
	if _, err := service.Send("acc-1", "   "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for empty body, got %v", err)
	}
}

func TestBroadcastUsesSentinelRecipient(t *testing.T) {
	store := &stubNotificationStore{}
	service := NewNotificationService(store)

	notification, err := service.Broadcast("Meeting on Friday")
	if err != nil {
		t.Fatalf("Broadcast() unexpected error: %v", err)
	}
	if notification.RecipientID != models.RecipientAll {
		t.Fatalf("expected recipient %q, got %q", models.RecipientAll, notification.RecipientID)
	}
}

func TestVisibleNotifications(t *testing.T) {
	notifications := []models.Notification{
		{ID: "n-1", RecipientID: "acc-a"},
		{ID: "n-2", RecipientID: models.RecipientAll},
		{ID: "n-3", RecipientID: "acc-b"},
	}

	visibleToA := VisibleNotifications("acc-a", notifications)
	if len(visibleToA) != 2 {
		t.Fatalf("expected acc-a to see two notifications, got %d", len(visibleToA))
	}
	for _, notification := range visibleToA {
		if notification.ID == "n-3" {
			t.Fatal("notification targeted at acc-b must be invisible to acc-a")
		}
	}

	visibleToB := VisibleNotifications("acc-b", notifications)
	if len(visibleToB) != 2 {
		t.Fatalf("expected acc-b to see two notifications, got %d", len(visibleToB))
	}
}

func TestForAccountSortsRecentFirst(t *testing.T) {
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	store := &stubNotificationStore{notifications: []models.Notification{
		{ID: "old", RecipientID: models.RecipientAll, SentAt: base},
		{ID: "new", RecipientID: "acc-1", SentAt: base.Add(2 * time.Hour)},
		{ID: "middle", RecipientID: models.RecipientAll, SentAt: base.Add(time.Hour)},
	}}
	service := NewNotificationService(store)

	visible, err := service.ForAccount("acc-1")
	if err != nil {
		t.Fatalf("ForAccount() unexpected error: %v", err)
	}
	if len(visible) != 3 {
		t.Fatalf("expected three notifications, got %d", len(visible))
	}
	if visible[0].ID != "new" || visible[1].ID != "middle" || visible[2].ID != "old" {
		t.Fatalf("expected recent-first order, got %s %s %s", visible[0].ID, visible[1].ID, visible[2].ID)
	}
}

func TestSortRecentFirstLeavesInputUntouched(t *testing.T) {
	base := time.Date(2026, time.August, 1, 12, 0, 0, 0, time.UTC)
	notifications := []models.Notification{
		{ID: "old", SentAt: base},
		{ID: "new", SentAt: base.Add(time.Hour)},
	}

	SortRecentFirst(notifications)

	if notifications[0].ID != "old" {
		t.Fatal("sorting must operate on a copy")
	}
}
