package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"trip-desk/internal/models"
)

// MemoryTripRepository is an in-process TripStore used for local runs and
// tests. Trips are stored encoded so callers never share memory with it.
type MemoryTripRepository struct {
	mu    sync.Mutex
	trips map[string][]byte
}

func NewMemoryTripRepository() *MemoryTripRepository {
	return &MemoryTripRepository{trips: map[string][]byte{}}
}

func (r *MemoryTripRepository) Create(ctx context.Context, trip *models.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.trips[trip.ID]; exists {
		return fmt.Errorf("trip %s already exists", trip.ID)
	}
	return r.put(trip)
}

func (r *MemoryTripRepository) Get(ctx context.Context, id string) (*models.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

func (r *MemoryTripRepository) List(ctx context.Context, status string, limit, offset int) ([]*models.Trip, error) {
	limit, offset = normalizeLimit(limit, offset)

	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*models.Trip, 0, len(r.trips))
	for id := range r.trips {
		trip, err := r.get(id)
		if err != nil {
			return nil, err
		}
		if status != "" && string(trip.Status) != status {
			continue
		}
		trip.Recommendation = nil
		all = append(all, trip)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return []*models.Trip{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *MemoryTripRepository) SetRecommendation(ctx context.Context, id string, doc models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, err := r.get(id)
	if err != nil {
		return err
	}
	trip.Recommendation = doc
	trip.UpdatedAt = time.Now()
	return r.put(trip)
}

func (r *MemoryTripRepository) get(id string) (*models.Trip, error) {
	data, ok := r.trips[id]
	if !ok {
		return nil, ErrTripNotFound
	}
	var trip models.Trip
	if err := json.Unmarshal(data, &trip); err != nil {
		return nil, err
	}
	trip.HasRecommendation = trip.Recommendation != nil
	return &trip, nil
}

func (r *MemoryTripRepository) put(trip *models.Trip) error {
	data, err := json.Marshal(trip)
	if err != nil {
		return err
	}
	r.trips[trip.ID] = data
	return nil
}
