package notification

import (
	"fmt"
	"time"

	"pickbook/models"

	"github.com/google/uuid"
)

// RecordBookingCreated writes the "awaiting payment" notification shown on the
// dashboard right after a booking is submitted.
func (s *DefaultNotificationService) RecordBookingCreated(booking *models.Booking) error {
	n := &models.Notification{
		ID:     uuid.New().String(),
		UserID: booking.UserID,
		Title:  "Booking submitted",
		Message: fmt.Sprintf("Your booking for %s at %s is awaiting payment confirmation.",
			booking.CourtName, booking.AreaName),
		Type:      models.NotificationInfo,
		BookingID: booking.ID,
		CreatedAt: time.Now(),
	}
	return s.Repo.Create(n)
}

// RecordBookingDecision writes the approval or rejection notification once a
// manager has reviewed the payment.
func (s *DefaultNotificationService) RecordBookingDecision(booking *models.Booking, approved bool) error {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    booking.UserID,
		BookingID: booking.ID,
		CreatedAt: time.Now(),
	}
	if approved {
		n.Title = "Booking approved"
		n.Message = fmt.Sprintf("Your booking for %s at %s has been approved.",
			booking.CourtName, booking.AreaName)
		n.Type = models.NotificationSuccess
	} else {
		n.Title = "Booking rejected"
		n.Message = fmt.Sprintf("Your booking for %s at %s was rejected. Contact the manager for details.",
			booking.CourtName, booking.AreaName)
		n.Type = models.NotificationWarning
	}
	return s.Repo.Create(n)
}

// GetForUser returns a user's notifications, newest first, with the relative
// timestamp the dashboard displays.
func (s *DefaultNotificationService) GetForUser(userID string) ([]models.Notification, error) {
	notifs, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	now := time.Now()
	for i := range notifs {
		notifs[i].TimeAgo = TimeAgo(notifs[i].CreatedAt, now)
	}
	return notifs, nil
}

func (s *DefaultNotificationService) MarkRead(userID, notificationID string) error {
	return s.Repo.MarkRead(userID, notificationID)
}

func (s *DefaultNotificationService) CountUnread(userID string) (int, error) {
	return s.Repo.CountUnread(userID)
}

// TimeAgo renders a coarse relative timestamp ("just now", "5m ago", "2d ago").
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
