package booking

import (
	"fmt"

	"pickbook/models"
	"pickbook/services/tasks"
	"pickbook/utils"

	"go.uber.org/zap"
)

// GetBooking retrieves a booking by ID for its owner. A booking belonging to
// someone else reads the same as a missing one.
func (s *DefaultBookingService) GetBooking(id, userID string) (*models.Booking, error) {
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil || booking.UserID != userID {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	return booking, nil
}

// GetUserBookings returns a user's bookings, newest first.
func (s *DefaultBookingService) GetUserBookings(userID string) ([]models.Booking, error) {
	return s.BookingRepo.GetByUser(userID)
}

// DecideBooking records the manager's payment verification outcome and
// notifies the user.
func (s *DefaultBookingService) DecideBooking(id string, approved bool) (*models.Booking, error) {
	if err := s.BookingRepo.SetApproval(id, approved); err != nil {
		return nil, err
	}
	booking, err := s.BookingRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	if err := s.NotificationSvc.RecordBookingDecision(booking, approved); err != nil {
		utils.GetLogger().Error("failed to record decision notification",
			zap.String("bookingId", id), zap.Error(err))
	}
	return booking, nil
}

// SendDetailsEmail re-queues the booking-details email for the booking's
// owner, optionally to a different address than the one on the booking.
func (s *DefaultBookingService) SendDetailsEmail(id, userID, overrideEmail string) error {
	booking, err := s.GetBooking(id, userID)
	if err != nil {
		return err
	}
	if s.QueueClient == nil {
		return fmt.Errorf("email queue is not configured")
	}

	email := overrideEmail
	if email == "" {
		email = booking.Email
	}
	task, opts, err := tasks.NewBookingEmailTask(models.BookingEmailPayload{
		BookingID: booking.ID,
		Email:     email,
	})
	if err != nil {
		return fmt.Errorf("failed to build booking email task: %w", err)
	}
	if _, err := s.QueueClient.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue booking email: %w", err)
	}
	return nil
}
