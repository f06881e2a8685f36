package booking

import (
	"fmt"

	"pickbook/database/repository/area"
	"pickbook/database/repository/booking"
	"pickbook/models"
	"pickbook/services/notification"

	"github.com/hibiken/asynq"
)

// BookingSessionService defines the interface for managing a stateful
// reservation session. Every call carries the authenticated user so a
// session can only be read or mutated by its creator.
type BookingSessionService interface {
	InitiateSession(areaID, userID string) (*models.BookingSession, []string, error)
	GetSession(sessionID, userID string) (*models.BookingSession, []string, error)
	ApplyAction(sessionID, userID string, action models.SessionAction) (*models.BookingSession, error)
	ConfirmSession(sessionID, userID string) (*models.BookingSummary, error)
	ReopenSession(sessionID, userID string) (*models.BookingSession, error)
	SubmitBooking(sessionID, userID string, contact models.ContactDetails) (*models.Booking, models.ManagerInfo, error)
	CloseSession(sessionID, userID string) error
}

// BookingService exposes booking reads, the manager approval decision, and
// the details-email resend. Reads are scoped to the booking's owner.
type BookingService interface {
	GetBooking(id, userID string) (*models.Booking, error)
	GetUserBookings(userID string) ([]models.Booking, error)
	DecideBooking(id string, approved bool) (*models.Booking, error)
	SendDetailsEmail(id, userID, overrideEmail string) error
}

// AreaCacheInvalidator drops cached area reads once reserved slots change.
type AreaCacheInvalidator interface {
	InvalidateArea(areaID string)
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	AreaRepo        areaRepo.AreaRepository
	BookingRepo     bookingRepo.BookingRepository
	NotificationSvc notification.NotificationService
	AreaCache       AreaCacheInvalidator
	QueueClient     *asynq.Client
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	BookingRepo     bookingRepo.BookingRepository
	NotificationSvc notification.NotificationService
	QueueClient     *asynq.Client
}

// NewDefaultBookingService wires the booking service with its repository,
// notification sink, and email queue.
func NewDefaultBookingService(repo bookingRepo.BookingRepository, notificationSvc notification.NotificationService, queueClient *asynq.Client) (*DefaultBookingService, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking service initialization error: repository is nil")
	}
	return &DefaultBookingService{
		BookingRepo:     repo,
		NotificationSvc: notificationSvc,
		QueueClient:     queueClient,
	}, nil
}
