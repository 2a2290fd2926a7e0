package repository

import (
	"context"
	"encoding/json"
	"errors"

	"trip-desk/internal/models"
)

var (
	ErrTripNotFound  = errors.New("trip not found")
	ErrDraftNotFound = errors.New("draft not found")
)

// TripStore is the document store holding trip requests and their
// recommendation documents.
type TripStore interface {
	Create(ctx context.Context, trip *models.Trip) error
	Get(ctx context.Context, id string) (*models.Trip, error)
	List(ctx context.Context, status string, limit, offset int) ([]*models.Trip, error)
	// SetRecommendation overwrites the trip's whole recommendation document.
	SetRecommendation(ctx context.Context, id string, doc models.Document) error
}

// DraftStore keeps operators' unsaved drafts, one per trip.
type DraftStore interface {
	Load(ctx context.Context, tripID string) (*models.Draft, error)
	Save(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, tripID string) error
}

// Notifier tells downstream consumers that a recommendation was saved.
type Notifier interface {
	RecommendationSaved(ctx context.Context, tripID string, rec *models.TripRecommendation) error
}

func marshalNullable(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(data) == "null" {
		return nil, nil
	}
	return data, nil
}

func normalizeLimit(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
