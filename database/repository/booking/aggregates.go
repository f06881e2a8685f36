package bookingRepo

import (
	"fmt"
	"time"

	"pickbook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StatsForUser aggregates booking counts for the dashboard summary card.
// "Upcoming" means any booking with a slot date on or after today.
func (r *MongoBookingRepo) StatsForUser(userID string, today string) (*models.BookingStats, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$facet": bson.M{
			"total": []bson.M{{"$count": "n"}},
			"pending": []bson.M{
				{"$match": bson.M{"status": models.BookingStatusPendingPayment}},
				{"$count": "n"},
			},
			"approved": []bson.M{
				{"$match": bson.M{"is_approved": true}},
				{"$count": "n"},
			},
			"upcoming": []bson.M{
				{"$match": bson.M{"slots.date": bson.M{"$gte": today}}},
				{"$count": "n"},
			},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking stats: %w", err)
	}
	defer cursor.Close(ctx)

	var raw []struct {
		Total    []bson.M `bson:"total"`
		Pending  []bson.M `bson:"pending"`
		Approved []bson.M `bson:"approved"`
		Upcoming []bson.M `bson:"upcoming"`
	}
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode booking stats: %w", err)
	}

	stats := &models.BookingStats{}
	if len(raw) > 0 {
		stats.TotalBookings = facetCount(raw[0].Total)
		stats.PendingPayment = facetCount(raw[0].Pending)
		stats.Approved = facetCount(raw[0].Approved)
		stats.Upcoming = facetCount(raw[0].Upcoming)
	}
	return stats, nil
}

func facetCount(facet []bson.M) int {
	if len(facet) == 0 {
		return 0
	}
	switch n := facet[0]["n"].(type) {
	case int32:
		return int(n)
	case int64:
		return int(n)
	case int:
		return n
	}
	return 0
}

// Today returns the canonical date-key for the current day.
func Today() string {
	return time.Now().Format("2006-01-02")
}
