package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// parseClockHour converts a 12-hour label like "6:00 AM" into a 24-hour value.
func parseClockHour(label string) (int, error) {
	parts := strings.Fields(strings.TrimSpace(label))
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}

	hm := strings.SplitN(parts[0], ":", 2)
	if len(hm) != 2 {
		return 0, fmt.Errorf("invalid time label %q", label)
	}
	hour, err := strconv.Atoi(hm[0])
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid hour in time label %q", label)
	}
	minute, err := strconv.Atoi(hm[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in time label %q", label)
	}

	switch strings.ToUpper(parts[1]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	default:
		return 0, fmt.Errorf("invalid period in time label %q", label)
	}
	return hour, nil
}

// formatHour renders a 24-hour value as "HH:00 AM/PM".
func formatHour(h int) string {
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:00 %s", display, period)
}

// GenerateTimeSlots derives the ordered hourly slot labels between an area's
// opening and closing time, wrapping past midnight when closing crosses it.
// Opening equal to closing yields no slots.
func GenerateTimeSlots(openingTime, closingTime string) ([]string, error) {
	start, err := parseClockHour(openingTime)
	if err != nil {
		return nil, fmt.Errorf("opening time: %w", err)
	}
	end, err := parseClockHour(closingTime)
	if err != nil {
		return nil, fmt.Errorf("closing time: %w", err)
	}

	n := (end - start + 24) % 24
	slots := make([]string, 0, n)
	for i := 0; i < n; i++ {
		h := (start + i) % 24
		slots = append(slots, fmt.Sprintf("%s - %s", formatHour(h), formatHour((h+1)%24)))
	}
	return slots, nil
}
