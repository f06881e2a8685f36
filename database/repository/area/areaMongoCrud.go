package areaRepo

import (
	"fmt"
	"time"

	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new area document.
func (r *MongoAreaRepo) Create(area *models.Area) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, area)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}
	return nil
}

// Update modifies an existing area document.
func (r *MongoAreaRepo) Update(area *models.Area) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": area.ID}
	update := bson.M{"$set": area}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update area with id %s: %w", area.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("area with id %s not found", area.ID)
	}
	return nil
}

// Delete removes an area document by its ID.
func (r *MongoAreaRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete area with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("area with id %s not found", id)
	}
	return nil
}

// SetAreaImage updates the area's image reference.
func (r *MongoAreaRepo) SetAreaImage(areaID, imageURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": areaID},
		bson.M{"$set": bson.M{"areaImageUrl": imageURL}})
	if err != nil {
		return fmt.Errorf("failed to set image for area %s: %w", areaID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("area with id %s not found", areaID)
	}
	return nil
}

// SetCourtImage updates one court's image reference using the positional operator.
func (r *MongoAreaRepo) SetCourtImage(areaID, courtID, imageURL string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": areaID, "courts.courtId": courtID}
	update := bson.M{"$set": bson.M{"courts.$.courtImageUrl": imageURL}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to set image for court %s: %w", courtID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("court %s not found in area %s", courtID, areaID)
	}
	return nil
}
