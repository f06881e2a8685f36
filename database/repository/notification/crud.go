package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo creates a new instance backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	coll := database.DB().Collection("notifications")
	repo := &MongoNotificationRepo{coll: coll}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a notification record.
func (r *MongoNotificationRepo) Create(n *models.Notification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByUser retrieves a user's notifications, newest first.
func (r *MongoNotificationRepo) GetByUser(userID string) ([]models.Notification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve notifications for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	for cursor.Next(ctx) {
		var n models.Notification
		if err := cursor.Decode(&n); err != nil {
			return nil, fmt.Errorf("failed to decode notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, nil
}

// MarkRead flags a single notification as read.
func (r *MongoNotificationRepo) MarkRead(userID, notificationID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": notificationID, "user_id": userID}
	result, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("notification with id %s not found", notificationID)
	}
	return nil
}

// CountUnread counts a user's unread notifications.
func (r *MongoNotificationRepo) CountUnread(userID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{"user_id": userID, "read": false})
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return int(n), nil
}
