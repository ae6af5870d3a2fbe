// File: database/repository/records/records_mongo.go
package recordsRepo

import (
	"context"
	"fmt"

	"labport/database"
	"labport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordsRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordsRepo constructs a new MongoDB RecordsRepository.
func NewMongoRecordsRepo() RecordsRepository {
	db := database.DB()
	return &mongoRecordsRepo{
		coll: db.Collection("bookings"),
	}
}

func (r *mongoRecordsRepo) Insert(ctx context.Context, booking models.Booking) error {
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("records: failed to insert booking %q: %w", booking.ID, err)
	}
	return nil
}

func (r *mongoRecordsRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("records: booking %q not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("records: failed to fetch booking %q: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoRecordsRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("records: failed to list bookings: %w", err)
	}
	defer cur.Close(ctx)

	var bookings []models.Booking
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("records: failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoRecordsRepo) ListByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{"customerPhone": phone})
}

func (r *mongoRecordsRepo) ListAll(ctx context.Context) ([]models.Booking, error) {
	return r.list(ctx, bson.M{})
}

func (r *mongoRecordsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("records: failed to update status for booking %q: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("records: booking %q not found", id)
	}
	return nil
}

// Stats aggregates the admin dashboard numbers in a single pipeline.
// Revenue excludes cancelled bookings; active users counts distinct phones.
func (r *mongoRecordsRepo) Stats(ctx context.Context) (*models.AdminStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": nil,
			"totalRevenue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingStatusCancelled}},
				0,
				"$totalCost",
			}}},
			"totalBookings": bson.M{"$sum": 1},
			"pendingBookings": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", models.BookingStatusPending}},
				1,
				0,
			}}},
			"phones": bson.M{"$addToSet": "$customerPhone"},
		}}},
		{{Key: "$project", Value: bson.M{
			"totalRevenue":    1,
			"totalBookings":   1,
			"pendingBookings": 1,
			"activeUsers":     bson.M{"$size": "$phones"},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("records: stats aggregation failed: %w", err)
	}
	defer cur.Close(ctx)

	var results []models.AdminStats
	if err := cur.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("records: failed to decode stats: %w", err)
	}
	if len(results) == 0 {
		return &models.AdminStats{}, nil
	}
	return &results[0], nil
}
