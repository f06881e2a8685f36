package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pickbook/models"
	"pickbook/services/tasks"
	"pickbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sessions are short-lived: every save refreshes the TTL, so an abandoned
// flow simply expires.
const sessionTTL = 30 * time.Minute

// InitiateSession creates a new reservation session for an area, snapshots the
// area document, and stores the session in Redis. It returns the session along
// with the area's full slot grid.
func (s *DefaultBookingSessionService) InitiateSession(areaID, userID string) (*models.BookingSession, []string, error) {
	area, err := s.AreaRepo.GetByIDWithProjection(areaID, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch area %s: %w", areaID, err)
	}
	if area == nil {
		return nil, nil, NewValidationError("area not found")
	}

	labels, err := GenerateTimeSlots(area.OpeningTime, area.ClosingTime)
	if err != nil {
		return nil, nil, fmt.Errorf("area %s has invalid operating hours: %w", areaID, err)
	}

	session := &models.BookingSession{
		SessionID:     uuid.New().String(),
		UserID:        userID,
		AreaID:        areaID,
		Area:          area,
		SelectedDates: []string{},
		Slots:         map[string][]string{},
		Equipments:    map[string]int{},
		Stage:         models.StageEditing,
	}
	if err := s.saveSession(session); err != nil {
		return nil, nil, err
	}
	return session, labels, nil
}

// GetSession reloads a stored session together with the area's slot grid.
func (s *DefaultBookingSessionService) GetSession(sessionID, userID string) (*models.BookingSession, []string, error) {
	session, err := s.loadOwnedSession(sessionID, userID)
	if err != nil {
		return nil, nil, err
	}
	labels, err := GenerateTimeSlots(session.Area.OpeningTime, session.Area.ClosingTime)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate time slots: %w", err)
	}
	return session, labels, nil
}

// ApplyAction runs a reducer action against the stored session and persists
// the result. Concurrent saves are last-write-wins.
func (s *DefaultBookingSessionService) ApplyAction(sessionID, userID string, action models.SessionAction) (*models.BookingSession, error) {
	session, err := s.loadOwnedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := ApplyAction(session, action, time.Now()); err != nil {
		return nil, err
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession validates the selection and moves the session to confirming.
func (s *DefaultBookingSessionService) ConfirmSession(sessionID, userID string) (*models.BookingSummary, error) {
	session, err := s.loadOwnedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	summary, err := Confirm(session)
	if err != nil {
		return nil, err
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return summary, nil
}

// ReopenSession returns a confirming session to editing.
func (s *DefaultBookingSessionService) ReopenSession(sessionID, userID string) (*models.BookingSession, error) {
	session, err := s.loadOwnedSession(sessionID, userID)
	if err != nil {
		return nil, err
	}
	if err := Reopen(session); err != nil {
		return nil, err
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// SubmitBooking persists the confirmed session as a booking, denormalizes the
// reserved slots onto the area, records the notification, and queues the
// details email. On persistence failure the session drops back to confirming
// so the user can retry.
func (s *DefaultBookingSessionService) SubmitBooking(sessionID, userID string, contact models.ContactDetails) (*models.Booking, models.ManagerInfo, error) {
	logger := utils.GetLogger()

	session, err := s.loadOwnedSession(sessionID, userID)
	if err != nil {
		return nil, models.ManagerInfo{}, err
	}
	if session.Stage != models.StageConfirming {
		return nil, models.ManagerInfo{}, &StageError{Stage: session.Stage, Expected: models.StageConfirming}
	}

	session.Stage = models.StageSubmitting
	if err := s.saveSession(session); err != nil {
		return nil, models.ManagerInfo{}, err
	}

	booking := BuildBooking(session, contact)
	booking.ID = uuid.New().String()
	booking.CreatedAt = time.Now()

	if err := s.BookingRepo.Create(&booking); err != nil {
		session.Stage = models.StageConfirming
		if saveErr := s.saveSession(session); saveErr != nil {
			logger.Error("failed to restore session after create failure", zap.Error(saveErr))
		}
		return nil, models.ManagerInfo{}, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.AreaRepo.AppendReservedSlots(session.AreaID, booking.Slots); err != nil {
		logger.Error("failed to append reserved slots",
			zap.String("areaId", session.AreaID), zap.String("bookingId", booking.ID), zap.Error(err))
	} else if s.AreaCache != nil {
		s.AreaCache.InvalidateArea(session.AreaID)
	}

	if err := s.NotificationSvc.RecordBookingCreated(&booking); err != nil {
		logger.Error("failed to record booking notification",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}

	s.enqueueDetailsEmail(&booking)

	session.Stage = models.StagePendingPayment
	session.BookingID = booking.ID
	if err := s.saveSession(session); err != nil {
		logger.Error("failed to persist submitted session", zap.Error(err))
	}

	return &booking, session.Area.Manager, nil
}

// CloseSession deletes the stored session, ending the flow.
func (s *DefaultBookingSessionService) CloseSession(sessionID, userID string) error {
	if _, err := s.loadOwnedSession(sessionID, userID); err != nil {
		return err
	}
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()
	if err := cacheClient.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to close booking session: %w", err)
	}
	return nil
}

// enqueueDetailsEmail is best effort: a queue outage never fails a submission.
func (s *DefaultBookingSessionService) enqueueDetailsEmail(booking *models.Booking) {
	logger := utils.GetLogger()
	if s.QueueClient == nil {
		return
	}
	task, opts, err := tasks.NewBookingEmailTask(models.BookingEmailPayload{
		BookingID: booking.ID,
		Email:     booking.Email,
	})
	if err != nil {
		logger.Error("failed to build booking email task", zap.Error(err))
		return
	}
	if _, err := s.QueueClient.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue booking email",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}

// loadOwnedSession reloads a session and rejects callers other than its
// creator.
func (s *DefaultBookingSessionService) loadOwnedSession(sessionID, userID string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if err := VerifySessionOwner(session, userID); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultBookingSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()

	data, err := cacheClient.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, &NotFoundError{Message: "booking session not found or expired"}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(session *models.BookingSession) error {
	ctx := context.Background()
	cacheClient := utils.GetBookingCacheClient()

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := cacheClient.Set(ctx, session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
