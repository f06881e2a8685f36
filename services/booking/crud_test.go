package booking

import (
	"strings"
	"testing"

	"pickbook/models"

	"github.com/hibiken/asynq"
)

type stubBookingRepo struct {
	byID map[string]*models.Booking
}

func (r *stubBookingRepo) Create(b *models.Booking) error { return nil }

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	return r.byID[id], nil
}

func (r *stubBookingRepo) GetByUser(userID string) ([]models.Booking, error) { return nil, nil }

func (r *stubBookingRepo) StatsForUser(userID string, today string) (*models.BookingStats, error) {
	return &models.BookingStats{}, nil
}

func (r *stubBookingRepo) SetApproval(id string, approved bool) error { return nil }

func TestNewDefaultBookingServiceKeepsQueueClient(t *testing.T) {
	queue := &asynq.Client{}
	svc, err := NewDefaultBookingService(&stubBookingRepo{}, nil, queue)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.QueueClient != queue {
		t.Fatal("queue client was not carried into the service")
	}

	if _, err := NewDefaultBookingService(nil, nil, queue); err == nil {
		t.Error("expected error for nil repository")
	}
}

func TestGetBookingScopedToOwner(t *testing.T) {
	repo := &stubBookingRepo{byID: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "user-1", Email: "ana@example.com"},
	}}
	svc := &DefaultBookingService{BookingRepo: repo}

	got, err := svc.GetBooking("bk-1", "user-1")
	if err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if got.ID != "bk-1" {
		t.Fatalf("expected bk-1, got %q", got.ID)
	}

	if _, err := svc.GetBooking("bk-1", "user-2"); err == nil {
		t.Fatal("expected error for another user's booking")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should read like a missing booking, got %q", err)
	}
}

func TestSendDetailsEmailScopedToOwner(t *testing.T) {
	repo := &stubBookingRepo{byID: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", UserID: "user-1", Email: "ana@example.com"},
	}}
	svc := &DefaultBookingService{BookingRepo: repo, QueueClient: &asynq.Client{}}

	if err := svc.SendDetailsEmail("bk-1", "user-2", ""); err == nil {
		t.Fatal("expected error for another user's booking")
	} else if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should read like a missing booking, got %q", err)
	}
}
