package areaRepo

import (
	"fmt"
	"time"

	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByIDWithProjection retrieves an area by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoAreaRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Area, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var area models.Area
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&area); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch area with id %s: %w", id, err)
	}
	return &area, nil
}

// GetAllWithProjection retrieves all areas with an optional projection.
func (r *MongoAreaRepo) GetAllWithProjection(projection bson.M) ([]models.Area, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve areas: %w", err)
	}
	defer cursor.Close(ctx)

	var areas []models.Area
	for cursor.Next(ctx) {
		var a models.Area
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode area: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, nil
}

// SearchByName retrieves areas whose name matches the query, case-insensitive.
func (r *MongoAreaRepo) SearchByName(query string) ([]models.Area, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"areaName": bson.M{
		"$regex": primitive.Regex{Pattern: query, Options: "i"},
	}}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search areas: %w", err)
	}
	defer cursor.Close(ctx)

	var areas []models.Area
	for cursor.Next(ctx) {
		var a models.Area
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode area: %w", err)
		}
		areas = append(areas, a)
	}
	return areas, nil
}
