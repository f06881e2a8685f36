package notificationRepo

import "pickbook/models"

// NotificationRepository defines persistence operations for notifications.
type NotificationRepository interface {
	Create(n *models.Notification) error
	GetByUser(userID string) ([]models.Notification, error)
	MarkRead(userID, notificationID string) error
	CountUnread(userID string) (int, error)
}
