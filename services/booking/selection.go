package booking

import "sort"

// The per-date slot selection is a map from date-key to the ordered slot
// labels chosen for that date. The functions here are pure reducers over
// that map; the session service applies them and persists the result.

// NormalizeDates sorts date-keys ascending and drops duplicates.
func NormalizeDates(dates []string) []string {
	seen := make(map[string]bool, len(dates))
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func containsDate(dates []string, key string) bool {
	for _, d := range dates {
		if d == key {
			return true
		}
	}
	return false
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}

// ToggleSlot adds the slot to the date's set if absent, removes it otherwise.
// No-op when the date-key is not a currently selected date.
func ToggleSlot(sel map[string][]string, selectedDates []string, dateKey, slot string) map[string][]string {
	if !containsDate(selectedDates, dateKey) {
		return sel
	}

	out := copySelection(sel)
	current := out[dateKey]
	if containsSlot(current, slot) {
		next := make([]string, 0, len(current)-1)
		for _, s := range current {
			if s != slot {
				next = append(next, s)
			}
		}
		out[dateKey] = next
	} else {
		out[dateKey] = append(append([]string{}, current...), slot)
	}
	return out
}

// PruneToSelectedDates removes every entry whose date-key is no longer in the
// selection, preserving slot choices for dates that remain. Idempotent.
func PruneToSelectedDates(sel map[string][]string, selectedDates []string) map[string][]string {
	out := make(map[string][]string, len(sel))
	for key, slots := range sel {
		if containsDate(selectedDates, key) {
			out[key] = append([]string{}, slots...)
		}
	}
	return out
}

// ApplyToAllDates unions the source date's slots into every other selected
// date, skipping any slot the blocked predicate rejects for the target date.
// Existing selections on target dates are preserved.
func ApplyToAllDates(sel map[string][]string, selectedDates []string, sourceDate string, blocked func(dateKey, slot string) bool) map[string][]string {
	source := sel[sourceDate]
	if len(source) == 0 || !containsDate(selectedDates, sourceDate) {
		return sel
	}

	out := copySelection(sel)
	for _, dateKey := range selectedDates {
		current := out[dateKey]
		for _, slot := range source {
			if containsSlot(current, slot) {
				continue
			}
			if blocked != nil && blocked(dateKey, slot) {
				continue
			}
			current = append(current, slot)
		}
		out[dateKey] = current
	}
	return out
}

// TotalSlotCount sums selected slots across all dates.
func TotalSlotCount(sel map[string][]string) int {
	total := 0
	for _, slots := range sel {
		total += len(slots)
	}
	return total
}

func copySelection(sel map[string][]string) map[string][]string {
	out := make(map[string][]string, len(sel))
	for k, v := range sel {
		out[k] = append([]string{}, v...)
	}
	return out
}
