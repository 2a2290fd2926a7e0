package service

import (
	"context"

	"trip-desk/internal/docpath"
	"trip-desk/internal/models"
	"trip-desk/internal/repository"

	"go.uber.org/zap"
)

type TripService struct {
	trips  repository.TripStore
	logger *zap.Logger
}

func NewTripService(trips repository.TripStore, logger *zap.Logger) *TripService {
	return &TripService{trips: trips, logger: logger}
}

// List returns trip summaries, newest first. An empty status matches all.
func (s *TripService) List(ctx context.Context, status string, limit, offset int) ([]*models.Trip, error) {
	return s.trips.List(ctx, status, limit, offset)
}

func (s *TripService) Get(ctx context.Context, id string) (*models.Trip, error) {
	return s.trips.Get(ctx, id)
}

// Compare lists path-level differences between two trips' stored
// recommendations. Documents are compared exactly as stored, so a numeric
// string differs from the number and unknown fields are reported. A trip
// without one compares as an empty document.
func (s *TripService) Compare(ctx context.Context, idA, idB string) ([]docpath.Change, error) {
	a, err := s.recommendationTree(ctx, idA)
	if err != nil {
		return nil, err
	}
	b, err := s.recommendationTree(ctx, idB)
	if err != nil {
		return nil, err
	}
	return docpath.Diff(a, b), nil
}

func (s *TripService) recommendationTree(ctx context.Context, id string) (any, error) {
	trip, err := s.trips.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	doc := trip.Recommendation
	if doc == nil {
		doc = models.EmptyDocument(trip.ID)
	}
	return doc.Tree(), nil
}
