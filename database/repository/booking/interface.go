package bookingRepo

import "pickbook/models"

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByUser(userID string) ([]models.Booking, error)
	// StatsForUser aggregates booking counts for the dashboard summary.
	StatsForUser(userID string, today string) (*models.BookingStats, error)
	SetApproval(id string, approved bool) error
}
