package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"shootbook/models"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a repository over the "bookings" collection.
func NewMongoBookingRepo(client *mongo.Client, dbName string) *MongoBookingRepo {
	return &MongoBookingRepo{coll: client.Database(dbName).Collection("bookings")}
}

// overlapFilter matches bookings whose interval intersects [start, end).
func overlapFilter(start, end time.Time) bson.M {
	return bson.M{
		"start": bson.M{"$lt": end},
		"end":   bson.M{"$gt": start},
	}
}

// Create inserts the record unless it overlaps an existing booking. The check
// and the insert are not atomic; the unique start index catches exact
// collisions between concurrent writers.
func (r *MongoBookingRepo) Create(ctx context.Context, record *models.BookingRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, overlapFilter(record.Start, record.End))
	if err != nil {
		return fmt.Errorf("error checking overlapping bookings: %w", err)
	}
	if count > 0 {
		return ErrSlotUnavailable
	}

	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrSlotUnavailable
		}
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// GetByID fetches a booking by its public ID.
func (r *MongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var record models.BookingRecord
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", id, err)
	}
	return &record, nil
}
