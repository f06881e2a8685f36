package areaRepo

import (
	"fmt"
	"time"

	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AppendReservedSlots merges a confirmed booking's slots into the area's
// denormalized bookings list. Dates already present get their time lists
// extended (uniqueness enforced with $addToSet); new dates are pushed.
func (r *MongoAreaRepo) AppendReservedSlots(areaID string, slots []models.DateSlots) error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	for _, slot := range slots {
		if len(slot.Time) == 0 {
			continue
		}

		// Extend the entry for this date if one exists.
		filter := bson.M{"id": areaID, "bookings.date": slot.Date}
		update := bson.M{"$addToSet": bson.M{
			"bookings.$.time": bson.M{"$each": slot.Time},
		}}
		result, err := r.coll.UpdateOne(ctx, filter, update)
		if err != nil {
			return fmt.Errorf("failed to merge reserved slots for %s: %w", slot.Date, err)
		}
		if result.MatchedCount > 0 {
			continue
		}

		// No entry for this date yet; push a new one.
		pushUpdate := bson.M{"$push": bson.M{"bookings": slot}}
		if _, err := r.coll.UpdateOne(ctx, bson.M{"id": areaID}, pushUpdate); err != nil {
			return fmt.Errorf("failed to append reserved slots for %s: %w", slot.Date, err)
		}
	}
	return nil
}
