package dashboard

import (
	"fmt"

	"pickbook/database/repository/booking"
	"pickbook/models"
)

const recentBookingsLimit = 5

// GetSummary aggregates the stats card, the unread badge, and the most
// recent bookings in one call.
func (s *DefaultDashboardService) GetSummary(userID string) (*models.DashboardSummary, error) {
	stats, err := s.BookingRepo.StatsForUser(userID, bookingRepo.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}

	unread, err := s.NotificationSvc.CountUnread(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	bookings, err := s.BookingRepo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	if len(bookings) > recentBookingsLimit {
		bookings = bookings[:recentBookingsLimit]
	}

	return &models.DashboardSummary{
		Stats:               *stats,
		UnreadNotifications: unread,
		RecentBookings:      bookings,
	}, nil
}

// GetMyBookings returns the user's full booking history, newest first.
func (s *DefaultDashboardService) GetMyBookings(userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByUser(userID)
}

func (s *DefaultDashboardService) GetNotifications(userID string) ([]models.Notification, error) {
	return s.NotificationSvc.GetForUser(userID)
}

func (s *DefaultDashboardService) MarkNotificationRead(userID, notificationID string) error {
	return s.NotificationSvc.MarkRead(userID, notificationID)
}

func (s *DefaultDashboardService) GetMembershipAreas() ([]models.MembershipArea, error) {
	return s.MembershipRepo.GetMembershipAreas()
}

func (s *DefaultDashboardService) GetMembershipPlans(areaID string) ([]models.MembershipPlan, error) {
	return s.MembershipRepo.GetPlansByArea(areaID)
}
