package booking

import (
	"testing"
	"time"

	"pickbook/models"
)

func TestIsReservedOrPastReservedSlot(t *testing.T) {
	reserved := []models.DateSlots{
		{Date: "2026-09-05", Time: []string{"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM"}},
		{Date: "2026-09-06", Time: []string{"10:00 AM - 11:00 AM"}},
	}
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)

	if !IsReservedOrPast(reserved, "2026-09-05", "06:00 AM - 07:00 AM", now) {
		t.Error("reserved slot reported as available")
	}
	if IsReservedOrPast(reserved, "2026-09-05", "10:00 AM - 11:00 AM", now) {
		t.Error("free slot reported as unavailable")
	}
	// Same label, different date.
	if IsReservedOrPast(reserved, "2026-09-07", "10:00 AM - 11:00 AM", now) {
		t.Error("reservation leaked across dates")
	}
}

func TestIsReservedOrPastTodayOnly(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)
	today := DateKey(now)

	// Started before now on today's date.
	if !IsReservedOrPast(nil, today, "01:00 PM - 02:00 PM", now) {
		t.Error("past slot on today reported as available")
	}
	// Starts exactly at a future hour today.
	if IsReservedOrPast(nil, today, "03:00 PM - 04:00 PM", now) {
		t.Error("future slot on today reported as unavailable")
	}
	// Same clock time, but tomorrow: never treated as past.
	tomorrow := DateKey(now.AddDate(0, 0, 1))
	if IsReservedOrPast(nil, tomorrow, "01:00 PM - 02:00 PM", now) {
		t.Error("past-clock slot on a future date reported as unavailable")
	}
}

func TestIsReservedOrPastStartEqualsNow(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	if !IsReservedOrPast(nil, DateKey(now), "02:00 PM - 03:00 PM", now) {
		t.Error("slot starting exactly now should not be bookable")
	}
}

func TestIsReservedOrPastFailsOpenOnBadLabel(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	if IsReservedOrPast(nil, DateKey(now), "not a slot", now) {
		t.Error("unparseable label should be treated as available")
	}
}
