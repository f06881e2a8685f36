package booking

import (
	"errors"
	"strings"
	"testing"
	"time"

	"pickbook/models"
)

func TestSessionAccessLimitedToCreator(t *testing.T) {
	ses := sessionFixture()
	if err := VerifySessionOwner(ses, "user-1"); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}
	err := VerifySessionOwner(ses, "user-2")
	if err == nil {
		t.Fatal("expected error for a different user")
	}
	var nferr *NotFoundError
	if !errors.As(err, &nferr) {
		t.Fatalf("expected a not-found error, got %T", err)
	}
	if nferr.Message != "booking session not found or expired" {
		t.Errorf("error should read like a missing session, got %q", nferr.Message)
	}
}

func sessionFixture() *models.BookingSession {
	area := pricingArea()
	area.OpeningTime = "6:00 AM"
	area.ClosingTime = "9:00 PM"
	area.Manager = models.ManagerInfo{
		FirstName:   "Lena",
		LastName:    "Cruz",
		GcashNumber: "+639170001122",
	}
	area.Bookings = []models.DateSlots{
		{Date: "2026-09-06", Time: []string{"06:00 AM - 07:00 AM"}},
	}
	return &models.BookingSession{
		SessionID:     "ses-1",
		UserID:        "user-1",
		AreaID:        area.ID,
		Area:          area,
		SelectedDates: []string{},
		Slots:         map[string][]string{},
		Equipments:    map[string]int{},
		Stage:         models.StageEditing,
	}
}

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)

func mustApply(t *testing.T, ses *models.BookingSession, action models.SessionAction) {
	t.Helper()
	if err := ApplyAction(ses, action, testNow); err != nil {
		t.Fatalf("ApplyAction(%+v) error: %v", action, err)
	}
}

func TestSessionFlowToSummary(t *testing.T) {
	ses := sessionFixture()

	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-06", "2026-09-05"}})
	mustApply(t, ses, models.SessionAction{Type: models.ActionSelectCourt, CourtID: "court-1"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-05", Slot: "07:00 AM - 08:00 AM"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-06", Slot: "07:00 AM - 08:00 AM"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetEquipment, EquipmentID: "eq-ball", Quantity: 2})

	if ses.TotalAmount != 500*2+50*2 {
		t.Fatalf("TotalAmount = %d, want 1100", ses.TotalAmount)
	}

	summary, err := Confirm(ses)
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if ses.Stage != models.StageConfirming {
		t.Fatalf("stage = %q, want confirming", ses.Stage)
	}
	if summary.CourtName != "Court A" || summary.TotalHours != 2 || summary.TotalAmount != 1100 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Slots) != 2 || summary.Slots[0].Date != "2026-09-05" {
		t.Fatalf("summary slots not date-ordered: %+v", summary.Slots)
	}
}

func TestConfirmNamesIncompleteDates(t *testing.T) {
	ses := sessionFixture()
	mustApply(t, ses, models.SessionAction{Type: models.ActionSelectCourt, CourtID: "court-1"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05", "2026-09-06"}})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-05", Slot: "07:00 AM - 08:00 AM"})

	_, err := Confirm(ses)
	if err == nil {
		t.Fatal("expected validation error for incomplete date")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error type = %T, want *ValidationError", err)
	}
	if !strings.Contains(verr.Message, "2026-09-06") {
		t.Fatalf("error does not name the incomplete date: %q", verr.Message)
	}
	if ses.Stage != models.StageEditing {
		t.Fatalf("failed confirm changed the stage to %q", ses.Stage)
	}
}

func TestConfirmRequiresCourtAndDates(t *testing.T) {
	ses := sessionFixture()
	if _, err := Confirm(ses); err == nil {
		t.Fatal("expected validation error with nothing selected")
	}
}

func TestApplyActionRejectsReservedSlot(t *testing.T) {
	ses := sessionFixture()
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-06"}})

	err := ApplyAction(ses, models.SessionAction{
		Type: models.ActionToggleSlot, Date: "2026-09-06", Slot: "06:00 AM - 07:00 AM",
	}, testNow)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for reserved slot, got %v", err)
	}
}

func TestApplyActionRejectsUnknownSlotAndCourt(t *testing.T) {
	ses := sessionFixture()
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05"}})

	if err := ApplyAction(ses, models.SessionAction{
		Type: models.ActionToggleSlot, Date: "2026-09-05", Slot: "11:00 PM - 12:00 AM",
	}, testNow); err == nil {
		t.Error("expected error toggling a slot outside operating hours")
	}
	if err := ApplyAction(ses, models.SessionAction{
		Type: models.ActionSelectCourt, CourtID: "court-404",
	}, testNow); err == nil {
		t.Error("expected error selecting a foreign court")
	}
}

func TestApplyActionDroppingDatePrunesAndReprices(t *testing.T) {
	ses := sessionFixture()
	mustApply(t, ses, models.SessionAction{Type: models.ActionSelectCourt, CourtID: "court-2"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05", "2026-09-07"}})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-05", Slot: "07:00 AM - 08:00 AM"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-07", Slot: "07:00 AM - 08:00 AM"})

	if ses.TotalAmount != 700 {
		t.Fatalf("TotalAmount = %d, want 700", ses.TotalAmount)
	}

	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05"}})
	if _, ok := ses.Slots["2026-09-07"]; ok {
		t.Fatal("dropped date kept its slots")
	}
	if ses.TotalAmount != 350 {
		t.Fatalf("TotalAmount after drop = %d, want 350", ses.TotalAmount)
	}
}

func TestApplyActionStageGuard(t *testing.T) {
	ses := sessionFixture()
	ses.Stage = models.StageConfirming

	err := ApplyAction(ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05"}}, testNow)
	var serr *StageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected stage error, got %v", err)
	}
}

func TestReopenReturnsToEditing(t *testing.T) {
	ses := sessionFixture()
	ses.Stage = models.StageConfirming
	if err := Reopen(ses); err != nil {
		t.Fatalf("Reopen error: %v", err)
	}
	if ses.Stage != models.StageEditing {
		t.Fatalf("stage = %q, want editing", ses.Stage)
	}
	if err := Reopen(ses); err == nil {
		t.Fatal("expected stage error reopening an editing session")
	}
}

func TestBuildBookingPrefixesGcash(t *testing.T) {
	ses := sessionFixture()
	mustApply(t, ses, models.SessionAction{Type: models.ActionSelectCourt, CourtID: "court-1"})
	mustApply(t, ses, models.SessionAction{Type: models.ActionSetDates, Dates: []string{"2026-09-05"}})
	mustApply(t, ses, models.SessionAction{Type: models.ActionToggleSlot, Date: "2026-09-05", Slot: "07:00 AM - 08:00 AM"})

	booking := BuildBooking(ses, models.ContactDetails{
		FirstName:   "Ana",
		LastName:    "Reyes",
		Email:       "ana@example.com",
		GcashNumber: "9171234567",
	})
	if booking.GcashNumber != "+639171234567" {
		t.Errorf("GcashNumber = %q, want +63 prefix applied", booking.GcashNumber)
	}
	if booking.Status != models.BookingStatusPendingPayment {
		t.Errorf("Status = %q, want pending payment", booking.Status)
	}
	if booking.Amount != 500 || booking.CourtName != "Court A" {
		t.Errorf("unexpected booking: %+v", booking)
	}

	already := BuildBooking(ses, models.ContactDetails{GcashNumber: "+639171234567"})
	if already.GcashNumber != "+639171234567" {
		t.Errorf("prefix applied twice: %q", already.GcashNumber)
	}
}
