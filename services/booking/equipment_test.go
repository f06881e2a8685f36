package booking

import (
	"testing"

	"pickbook/models"
)

var testEquipments = []models.Equipment{
	{ID: "eq-paddle", Name: "Paddle", Price: 100, Quantity: 4},
	{ID: "eq-ball", Name: "Ball Set", Price: 50, Quantity: 10},
}

func TestSetEquipmentQty(t *testing.T) {
	sel := map[string]int{}

	sel = SetEquipmentQty(sel, testEquipments, "eq-paddle", 2)
	if sel["eq-paddle"] != 2 {
		t.Fatalf("quantity = %d, want 2", sel["eq-paddle"])
	}

	// Clamped to stock.
	sel = SetEquipmentQty(sel, testEquipments, "eq-paddle", 9)
	if sel["eq-paddle"] != 4 {
		t.Fatalf("quantity = %d, want clamp to stock 4", sel["eq-paddle"])
	}

	// Zero and negative remove the entry.
	sel = SetEquipmentQty(sel, testEquipments, "eq-paddle", 0)
	if _, ok := sel["eq-paddle"]; ok {
		t.Fatal("zero quantity left an entry behind")
	}
	sel = SetEquipmentQty(sel, testEquipments, "eq-ball", -3)
	if _, ok := sel["eq-ball"]; ok {
		t.Fatal("negative quantity left an entry behind")
	}
}

func TestSetEquipmentQtyUnknownID(t *testing.T) {
	sel := map[string]int{"eq-paddle": 1}
	got := SetEquipmentQty(sel, testEquipments, "eq-net", 3)
	if len(got) != 1 || got["eq-paddle"] != 1 {
		t.Fatalf("unknown equipment id changed the selection: %v", got)
	}
}

func TestSetEquipmentQtyInvariantUnderSequences(t *testing.T) {
	sel := map[string]int{}
	steps := []struct {
		id  string
		qty int
	}{
		{"eq-paddle", 3}, {"eq-ball", 12}, {"eq-paddle", 0},
		{"eq-net", 5}, {"eq-ball", -1}, {"eq-paddle", 4},
	}
	for _, s := range steps {
		sel = SetEquipmentQty(sel, testEquipments, s.id, s.qty)
		for id, qty := range sel {
			if qty <= 0 {
				t.Fatalf("store holds non-positive quantity %d for %s", qty, id)
			}
			for _, eq := range testEquipments {
				if eq.ID == id && qty > eq.Quantity {
					t.Fatalf("store holds %d of %s, above stock %d", qty, id, eq.Quantity)
				}
			}
		}
	}
	if len(sel) != 1 || sel["eq-paddle"] != 4 {
		t.Fatalf("final selection = %v, want only eq-paddle:4", sel)
	}
}

func TestRentedEquipmentsSkipsUnknown(t *testing.T) {
	sel := map[string]int{"eq-ball": 2, "eq-gone": 1}
	rented := RentedEquipments(sel, testEquipments)
	if len(rented) != 1 {
		t.Fatalf("rented = %v, want single line item", rented)
	}
	r := rented[0]
	if r.EquipmentID != "eq-ball" || r.Quantity != 2 || r.Price != 50 || r.Name != "Ball Set" {
		t.Fatalf("unexpected line item: %+v", r)
	}
}
