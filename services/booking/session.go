package booking

import (
	"fmt"
	"strings"
	"time"

	"pickbook/models"
)

// The functions in this file are the framework-independent core of the
// reservation flow: reducers over a BookingSession plus the stage machine
// guards. The session service persists the result; nothing here touches
// Redis or Mongo.

// VerifySessionOwner rejects access to a session by anyone but the user who
// opened it. The error matches a missing session so ids cannot be probed.
func VerifySessionOwner(ses *models.BookingSession, userID string) error {
	if ses.UserID != userID {
		return &NotFoundError{Message: "booking session not found or expired"}
	}
	return nil
}

// ApplyAction applies a tagged reducer action to the session. Actions are
// only legal while editing; repricing runs after every action.
func ApplyAction(ses *models.BookingSession, action models.SessionAction, now time.Time) error {
	if ses.Stage != models.StageEditing {
		return &StageError{Stage: ses.Stage, Expected: models.StageEditing}
	}

	switch action.Type {
	case models.ActionToggleSlot:
		if err := applyToggleSlot(ses, action, now); err != nil {
			return err
		}

	case models.ActionSetDates:
		ses.SelectedDates = NormalizeDates(action.Dates)
		ses.Slots = PruneToSelectedDates(ses.Slots, ses.SelectedDates)

	case models.ActionApplyAllDates:
		ses.Slots = ApplyToAllDates(ses.Slots, ses.SelectedDates, action.SourceDate,
			func(dateKey, slot string) bool {
				return IsReservedOrPast(ses.Area.Bookings, dateKey, slot, now)
			})

	case models.ActionSelectCourt:
		if err := applySelectCourt(ses, action.CourtID); err != nil {
			return err
		}

	case models.ActionSetEquipment:
		ses.Equipments = SetEquipmentQty(ses.Equipments, ses.Area.Equipments, action.EquipmentID, action.Quantity)

	default:
		return NewValidationError(fmt.Sprintf("unknown action type %q", action.Type))
	}

	ses.TotalAmount = ComputeTotal(ses.Area, ses.SelectedCourtID, ses.Slots, ses.Equipments)
	return nil
}

func applyToggleSlot(ses *models.BookingSession, action models.SessionAction, now time.Time) error {
	labels, err := GenerateTimeSlots(ses.Area.OpeningTime, ses.Area.ClosingTime)
	if err != nil {
		return fmt.Errorf("failed to generate time slots: %w", err)
	}
	if !containsSlot(labels, action.Slot) {
		return NewValidationError(fmt.Sprintf("slot %q is not offered by this area", action.Slot))
	}
	// Selecting a reserved or past slot is rejected; deselecting is always allowed.
	if !containsSlot(ses.Slots[action.Date], action.Slot) &&
		IsReservedOrPast(ses.Area.Bookings, action.Date, action.Slot, now) {
		return NewValidationError(fmt.Sprintf("slot %q is not available on %s", action.Slot, action.Date))
	}

	ses.Slots = ToggleSlot(ses.Slots, ses.SelectedDates, action.Date, action.Slot)
	return nil
}

func applySelectCourt(ses *models.BookingSession, courtID string) error {
	for _, c := range ses.Area.Courts {
		if c.CourtID == courtID {
			ses.SelectedCourtID = courtID
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("court %q does not belong to this area", courtID))
}

// Confirm moves the session from editing to confirming. Guarded: a court must
// be selected, at least one date chosen, and every selected date must carry
// at least one slot; otherwise the session stays editing and the error names
// the incomplete dates.
func Confirm(ses *models.BookingSession) (*models.BookingSummary, error) {
	if ses.Stage != models.StageEditing {
		return nil, &StageError{Stage: ses.Stage, Expected: models.StageEditing}
	}

	if ses.SelectedCourtID == "" || len(ses.SelectedDates) == 0 {
		return nil, NewValidationError("please select a court and at least one date")
	}

	var missing []string
	for _, dateKey := range ses.SelectedDates {
		if len(ses.Slots[dateKey]) == 0 {
			missing = append(missing, dateKey)
		}
	}
	if len(missing) > 0 {
		return nil, NewValidationError(
			"please select time slots for these date(s): " + strings.Join(missing, ", "))
	}

	ses.Stage = models.StageConfirming
	return BuildSummary(ses), nil
}

// Reopen returns a confirming session to editing, e.g. when the user cancels
// the confirmation dialog.
func Reopen(ses *models.BookingSession) error {
	if ses.Stage != models.StageConfirming {
		return &StageError{Stage: ses.Stage, Expected: models.StageConfirming}
	}
	ses.Stage = models.StageEditing
	return nil
}

// BuildSummary assembles the confirmation-dialog view of the session.
func BuildSummary(ses *models.BookingSession) *models.BookingSummary {
	var courtName string
	var courtRate int
	for _, c := range ses.Area.Courts {
		if c.CourtID == ses.SelectedCourtID {
			courtName = c.CourtName
			courtRate = c.Rate
			break
		}
	}

	return &models.BookingSummary{
		AreaName:    ses.Area.AreaName,
		CourtName:   courtName,
		CourtRate:   courtRate,
		TotalHours:  TotalSlotCount(ses.Slots),
		TotalAmount: ses.TotalAmount,
		Slots:       SlotsByDate(ses),
		Equipments:  RentedEquipments(ses.Equipments, ses.Area.Equipments),
		Manager:     ses.Area.Manager,
	}
}

// SlotsByDate flattens the selection into date-ordered slot groups, skipping
// dates with no slots.
func SlotsByDate(ses *models.BookingSession) []models.DateSlots {
	var out []models.DateSlots
	for _, dateKey := range ses.SelectedDates {
		times := ses.Slots[dateKey]
		if len(times) == 0 {
			continue
		}
		out = append(out, models.DateSlots{Date: dateKey, Time: append([]string{}, times...)})
	}
	return out
}

// BuildBooking assembles the persistence payload from a confirmed session and
// the user's contact details.
func BuildBooking(ses *models.BookingSession, contact models.ContactDetails) models.Booking {
	var courtName string
	for _, c := range ses.Area.Courts {
		if c.CourtID == ses.SelectedCourtID {
			courtName = c.CourtName
			break
		}
	}

	gcash := strings.TrimSpace(contact.GcashNumber)
	if !strings.HasPrefix(gcash, "+63") {
		gcash = "+63" + gcash
	}

	return models.Booking{
		UserID:      ses.UserID,
		FirstName:   strings.TrimSpace(contact.FirstName),
		LastName:    strings.TrimSpace(contact.LastName),
		Email:       strings.TrimSpace(contact.Email),
		GcashNumber: gcash,
		AreaID:      ses.Area.ID,
		AreaName:    ses.Area.AreaName,
		CourtID:     ses.SelectedCourtID,
		CourtName:   courtName,
		Slots:       SlotsByDate(ses),
		Amount:      ses.TotalAmount,
		Equipments:  RentedEquipments(ses.Equipments, ses.Area.Equipments),
		Status:      models.BookingStatusPendingPayment,
	}
}
