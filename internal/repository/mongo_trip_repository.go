package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trip-desk/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// mongoTrip is the stored shape. Nested documents are kept as raw BSON and
// converted through JSON so field names match the mobile contract exactly.
type mongoTrip struct {
	ID             string    `bson:"_id"`
	OwnerID        string    `bson:"ownerId"`
	Status         string    `bson:"status"`
	Intake         bson.Raw  `bson:"intake,omitempty"`
	Recommendation bson.Raw  `bson:"destinationRecommendation,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

// MongoTripRepository stores trips in a document database, one document
// per trip with the recommendation embedded.
type MongoTripRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewMongoTripRepository(db *mongo.Database, logger *zap.Logger) *MongoTripRepository {
	return &MongoTripRepository{
		coll:   db.Collection("trips"),
		logger: logger,
	}
}

func (r *MongoTripRepository) Create(ctx context.Context, trip *models.Trip) error {
	doc := mongoTrip{
		ID:        trip.ID,
		OwnerID:   trip.OwnerID,
		Status:    string(trip.Status),
		CreatedAt: trip.CreatedAt,
		UpdatedAt: trip.UpdatedAt,
	}
	var err error
	if trip.Intake != nil {
		if doc.Intake, err = toBSON(trip.Intake); err != nil {
			return fmt.Errorf("failed to encode intake: %w", err)
		}
	}
	if trip.Recommendation != nil {
		if doc.Recommendation, err = toBSON(trip.Recommendation); err != nil {
			return fmt.Errorf("failed to encode recommendation: %w", err)
		}
	}

	_, err = r.coll.InsertOne(ctx, doc)
	return err
}

func (r *MongoTripRepository) Get(ctx context.Context, id string) (*models.Trip, error) {
	var doc mongoTrip
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}

	trip, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	if len(doc.Recommendation) > 0 {
		data, err := fromBSON(doc.Recommendation)
		if err != nil {
			return nil, fmt.Errorf("failed to decode recommendation: %w", err)
		}
		if trip.Recommendation, err = models.DecodeDocument(data); err != nil {
			r.logger.Warn("Stored recommendation is unreadable", zap.String("trip_id", id), zap.Error(err))
			return nil, err
		}
	}
	trip.HasRecommendation = trip.Recommendation != nil

	return trip, nil
}

func (r *MongoTripRepository) List(ctx context.Context, status string, limit, offset int) ([]*models.Trip, error) {
	limit, offset = normalizeLimit(limit, offset)

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	trips := []*models.Trip{}
	for cursor.Next(ctx) {
		var doc mongoTrip
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		trip, err := doc.toModel()
		if err != nil {
			return nil, err
		}
		trip.HasRecommendation = len(doc.Recommendation) > 0
		trips = append(trips, trip)
	}

	return trips, cursor.Err()
}

func (r *MongoTripRepository) SetRecommendation(ctx context.Context, id string, doc models.Document) error {
	update := bson.M{
		"$set":   bson.M{"updatedAt": time.Now()},
		"$unset": bson.M{"destinationRecommendation": ""},
	}
	if doc != nil {
		raw, err := toBSON(doc)
		if err != nil {
			return fmt.Errorf("failed to encode recommendation: %w", err)
		}
		update = bson.M{"$set": bson.M{"destinationRecommendation": raw, "updatedAt": time.Now()}}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrTripNotFound
	}
	return nil
}

func (d *mongoTrip) toModel() (*models.Trip, error) {
	trip := &models.Trip{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		Status:    models.TripStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if len(d.Intake) > 0 {
		data, err := fromBSON(d.Intake)
		if err != nil {
			return nil, fmt.Errorf("failed to decode intake: %w", err)
		}
		if err := json.Unmarshal(data, &trip.Intake); err != nil {
			return nil, fmt.Errorf("failed to decode intake: %w", err)
		}
	}
	return trip, nil
}

func toBSON(v any) (bson.Raw, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var raw bson.Raw
	if err := bson.UnmarshalExtJSON(data, false, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// fromBSON renders raw BSON as relaxed extended JSON, which for the plain
// values these documents hold is ordinary JSON.
func fromBSON(raw bson.Raw) ([]byte, error) {
	return bson.MarshalExtJSON(raw, false, false)
}
