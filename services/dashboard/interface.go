package dashboard

import (
	"pickbook/database/repository/booking"
	"pickbook/database/repository/membership"
	"pickbook/models"
	"pickbook/services/notification"
)

// DashboardService assembles the per-user dashboard views.
type DashboardService interface {
	GetSummary(userID string) (*models.DashboardSummary, error)
	GetMyBookings(userID string) ([]models.Booking, error)
	GetNotifications(userID string) ([]models.Notification, error)
	MarkNotificationRead(userID, notificationID string) error
	GetMembershipAreas() ([]models.MembershipArea, error)
	GetMembershipPlans(areaID string) ([]models.MembershipPlan, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	BookingRepo     bookingRepo.BookingRepository
	MembershipRepo  membershipRepo.MembershipRepository
	NotificationSvc notification.NotificationService
}
