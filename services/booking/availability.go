package booking

import (
	"fmt"
	"strings"
	"time"

	"pickbook/models"
	"pickbook/utils"

	"go.uber.org/zap"
)

const dateKeyLayout = "2006-01-02"

// DateKey normalizes a time to the canonical date-key used throughout.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// parseSlotStart resolves the start instant of a slot label ("06:00 AM - ...")
// on the reference date.
func parseSlotStart(label string, ref time.Time) (time.Time, error) {
	startStr := label
	if i := strings.Index(label, " - "); i >= 0 {
		startStr = label[:i]
	}

	parsed, err := time.Parse("3:04 PM", strings.TrimSpace(startStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q: %w", label, err)
	}

	return time.Date(ref.Year(), ref.Month(), ref.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), nil
}

// IsReservedOrPast reports whether a slot cannot be booked on the given date:
// either another booking already holds it, or (for today only) its start time
// is at or before now. An unparseable label is logged and treated as
// available, so a bad record never blocks a slot.
func IsReservedOrPast(reserved []models.DateSlots, dateKey, slot string, now time.Time) bool {
	for _, b := range reserved {
		if b.Date != dateKey {
			continue
		}
		for _, t := range b.Time {
			if t == slot {
				return true
			}
		}
	}

	if dateKey == DateKey(now) {
		start, err := parseSlotStart(slot, now)
		if err != nil {
			utils.GetLogger().Warn("failed to parse slot start", zap.String("slot", slot), zap.Error(err))
			return false
		}
		if !start.After(now) {
			return true
		}
	}

	return false
}
