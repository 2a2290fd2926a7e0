package repository

import (
	"context"
	"encoding/json"
	"time"

	"trip-desk/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RecommendationEvent is published whenever a recommendation is saved.
type RecommendationEvent struct {
	Type             string    `json:"type"`
	TripID           string    `json:"tripId"`
	RecommendationID string    `json:"recommendationId"`
	Destinations     int       `json:"destinations"`
	SavedAt          time.Time `json:"savedAt"`
}

// RedisNotifier publishes save events on trips:<id>:recommendation.
type RedisNotifier struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisNotifier(rdb *redis.Client, logger *zap.Logger) *RedisNotifier {
	return &RedisNotifier{rdb: rdb, logger: logger}
}

func (n *RedisNotifier) RecommendationSaved(ctx context.Context, tripID string, rec *models.TripRecommendation) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	evt := RecommendationEvent{
		Type:             "recommendation.saved",
		TripID:           tripID,
		RecommendationID: rec.ID,
		Destinations:     len(rec.Destinations),
		SavedAt:          time.Now().UTC(),
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return n.rdb.Publish(ctx, "trips:"+tripID+":recommendation", data).Err()
}

// NopNotifier drops events. Used when no Redis is configured.
type NopNotifier struct{}

func (NopNotifier) RecommendationSaved(context.Context, string, *models.TripRecommendation) error {
	return nil
}
