package membershipRepo

import (
	"context"
	"fmt"
	"time"

	"pickbook/database"
	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoMembershipRepo implements MembershipRepository using MongoDB.
type MongoMembershipRepo struct {
	plans *mongo.Collection
}

// NewMongoMembershipRepo creates a new instance backed by MongoDB.
func NewMongoMembershipRepo() MembershipRepository {
	return &MongoMembershipRepo{
		plans: database.DB().Collection("membership_plans"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetPlansByArea retrieves the plans an area offers, cheapest first.
func (r *MongoMembershipRepo) GetPlansByArea(areaID string) ([]models.MembershipPlan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "price", Value: 1}})
	cursor, err := r.plans.Find(ctx, bson.M{"area_id": areaID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve plans for area %s: %w", areaID, err)
	}
	defer cursor.Close(ctx)

	var plans []models.MembershipPlan
	for cursor.Next(ctx) {
		var p models.MembershipPlan
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode membership plan: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// GetMembershipAreas aggregates a per-area summary (plan count, cheapest price)
// joined with the area's display fields.
func (r *MongoMembershipRepo) GetMembershipAreas() ([]models.MembershipArea, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":        "$area_id",
			"plan_count": bson.M{"$sum": 1},
			"starting_at": bson.M{"$min": "$price"},
		}},
		{"$lookup": bson.M{
			"from":         "areas",
			"localField":   "_id",
			"foreignField": "id",
			"as":           "area",
		}},
		{"$unwind": "$area"},
		{"$project": bson.M{
			"area_id":        "$_id",
			"area_name":      "$area.areaName",
			"area_image_url": "$area.areaImageUrl",
			"plan_count":     1,
			"starting_at":    1,
		}},
		{"$sort": bson.M{"area_name": 1}},
	}

	cursor, err := r.plans.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate membership areas: %w", err)
	}
	defer cursor.Close(ctx)

	var areas []models.MembershipArea
	if err := cursor.All(ctx, &areas); err != nil {
		return nil, fmt.Errorf("failed to decode membership areas: %w", err)
	}
	return areas, nil
}
