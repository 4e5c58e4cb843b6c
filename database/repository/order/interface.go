package orderRepo

import (
	"solarcare/services/booking"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOrderRepo mirrors confirmed bookings into MongoDB and reads a user's
// history back when their workspace is created.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

var (
	_ booking.Ledger  = (*MongoOrderRepo)(nil)
	_ booking.History = (*MongoOrderRepo)(nil)
)

// NewMongoOrderRepo returns a repository backed by the "bookings"
// collection of db.
func NewMongoOrderRepo(db *mongo.Database) *MongoOrderRepo {
	return newOrderRepo(db.Collection("bookings"))
}

func newOrderRepo(coll *mongo.Collection) *MongoOrderRepo {
	return &MongoOrderRepo{coll: coll}
}
