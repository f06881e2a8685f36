package booking

import "pickbook/models"

// SetEquipmentQty sets the requested quantity for an equipment item, clamped
// to [0, stock]. Quantity zero removes the entry; the store never holds a
// zero or out-of-stock quantity.
func SetEquipmentQty(sel map[string]int, equipments []models.Equipment, equipmentID string, quantity int) map[string]int {
	var stock int
	found := false
	for _, eq := range equipments {
		if eq.ID == equipmentID {
			stock = eq.Quantity
			found = true
			break
		}
	}
	if !found {
		return sel
	}

	if quantity > stock {
		quantity = stock
	}

	out := make(map[string]int, len(sel)+1)
	for k, v := range sel {
		out[k] = v
	}
	if quantity <= 0 {
		delete(out, equipmentID)
	} else {
		out[equipmentID] = quantity
	}
	return out
}

// RentedEquipments resolves the selection into booking line items, skipping
// ids the area no longer advertises.
func RentedEquipments(sel map[string]int, equipments []models.Equipment) []models.RentedEquipment {
	var rented []models.RentedEquipment
	for _, eq := range equipments {
		qty, ok := sel[eq.ID]
		if !ok {
			continue
		}
		rented = append(rented, models.RentedEquipment{
			EquipmentID: eq.ID,
			Name:        eq.Name,
			Quantity:    qty,
			Price:       eq.Price,
		})
	}
	return rented
}
