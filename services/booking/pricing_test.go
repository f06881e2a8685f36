package booking

import (
	"testing"

	"pickbook/models"
)

func pricingArea() *models.Area {
	return &models.Area{
		ID:       "area-1",
		AreaName: "Riverside Pickleball",
		Courts: []models.Court{
			{CourtID: "court-1", CourtName: "Court A", Rate: 500},
			{CourtID: "court-2", CourtName: "Court B", Rate: 350},
		},
		Equipments: []models.Equipment{
			{ID: "eq-paddle", Name: "Paddle", Price: 100, Quantity: 4},
			{ID: "eq-ball", Name: "Ball Set", Price: 50, Quantity: 10},
		},
	}
}

func TestComputeTotal(t *testing.T) {
	area := pricingArea()
	slots := map[string][]string{
		"2026-09-05": {"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM", "08:00 AM - 09:00 AM"},
		"2026-09-06": {"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM"},
	}
	equipments := map[string]int{"eq-paddle": 2}

	// 500 * 5 slots + 100 * 2 paddles.
	if got := ComputeTotal(area, "court-1", slots, equipments); got != 2700 {
		t.Fatalf("ComputeTotal = %d, want 2700", got)
	}
}

func TestComputeTotalNoCourt(t *testing.T) {
	area := pricingArea()
	slots := map[string][]string{"2026-09-05": {"06:00 AM - 07:00 AM"}}

	if got := ComputeTotal(area, "", slots, nil); got != 0 {
		t.Fatalf("total without court = %d, want 0", got)
	}
	if got := ComputeTotal(area, "court-404", slots, nil); got != 0 {
		t.Fatalf("total with unknown court = %d, want 0", got)
	}
	if got := ComputeTotal(nil, "court-1", slots, nil); got != 0 {
		t.Fatalf("total with nil area = %d, want 0", got)
	}
}

func TestComputeTotalEquipmentOnlyStillNeedsCourt(t *testing.T) {
	area := pricingArea()
	if got := ComputeTotal(area, "court-2", nil, map[string]int{"eq-ball": 4}); got != 200 {
		t.Fatalf("equipment-only total = %d, want 200", got)
	}
}
