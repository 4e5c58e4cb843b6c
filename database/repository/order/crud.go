package orderRepo

import (
	"context"
	"errors"
	"fmt"

	"solarcare/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrDuplicateOrder = errors.New("order already recorded")

// Save inserts a confirmed booking. Order IDs are unique in the collection.
func (r *MongoOrderRepo) Save(ctx context.Context, record models.BookingRecord) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateOrder, record.ID)
		}
		return fmt.Errorf("failed to insert order %s: %w", record.ID, err)
	}
	return nil
}

// GetByUserID returns a user's orders, most recent first.
func (r *MongoOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "id", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
