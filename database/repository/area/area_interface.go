package areaRepo

import (
	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AreaRepository defines persistence operations for areas.
type AreaRepository interface {
	Create(area *models.Area) error
	Update(area *models.Area) error
	Delete(id string) error
	GetByIDWithProjection(id string, projection bson.M) (*models.Area, error)
	GetAllWithProjection(projection bson.M) ([]models.Area, error)
	SearchByName(query string) ([]models.Area, error)
	// AppendReservedSlots merges a booking's slots into the area's
	// denormalized bookings list.
	AppendReservedSlots(areaID string, slots []models.DateSlots) error
	SetCourtImage(areaID, courtID, imageURL string) error
	SetAreaImage(areaID, imageURL string) error
}
