package notification

import (
	"fmt"

	"pickbook/database/repository/notification"
	"pickbook/models"
)

// NotificationService records and serves dashboard notifications.
type NotificationService interface {
	RecordBookingCreated(booking *models.Booking) error
	RecordBookingDecision(booking *models.Booking, approved bool) error
	GetForUser(userID string) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	CountUnread(userID string) (int, error)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

func NewDefaultNotificationService(repo notificationRepo.NotificationRepository) (*DefaultNotificationService, error) {
	if repo == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{Repo: repo}, nil
}
