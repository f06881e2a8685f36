package booking

import "pickbook/models"

// ComputeTotal derives the booking total: court hourly rate times the number
// of selected slots across all dates, plus equipment price times quantity.
// Amounts are whole pesos, so the arithmetic is exact. Zero when no court is
// selected.
func ComputeTotal(area *models.Area, courtID string, slots map[string][]string, equipments map[string]int) int {
	if area == nil || courtID == "" {
		return 0
	}

	var rate int
	found := false
	for _, c := range area.Courts {
		if c.CourtID == courtID {
			rate = c.Rate
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	total := rate * TotalSlotCount(slots)

	for _, eq := range area.Equipments {
		if qty, ok := equipments[eq.ID]; ok {
			total += eq.Price * qty
		}
	}
	return total
}
