package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"trip-desk/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MemoryDraftStore keeps drafts in process memory.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func NewMemoryDraftStore() *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string][]byte{}}
}

func (s *MemoryDraftStore) Load(ctx context.Context, tripID string) (*models.Draft, error) {
	s.mu.Lock()
	data, ok := s.drafts[tripID]
	s.mu.Unlock()
	if !ok {
		return nil, ErrDraftNotFound
	}
	return decodeDraft(data)
}

func (s *MemoryDraftStore) Save(ctx context.Context, draft *models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	s.mu.Lock()
	s.drafts[draft.TripID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryDraftStore) Delete(ctx context.Context, tripID string) error {
	s.mu.Lock()
	delete(s.drafts, tripID)
	s.mu.Unlock()
	return nil
}

// RedisDraftStore keeps drafts in Redis so they survive restarts. Each draft
// expires ttl after its last write.
type RedisDraftStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisDraftStore(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisDraftStore {
	return &RedisDraftStore{rdb: rdb, ttl: ttl, logger: logger}
}

func (s *RedisDraftStore) key(tripID string) string {
	return "draft:" + tripID
}

func (s *RedisDraftStore) Load(ctx context.Context, tripID string) (*models.Draft, error) {
	data, err := s.rdb.Get(ctx, s.key(tripID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	return decodeDraft(data)
}

func (s *RedisDraftStore) Save(ctx context.Context, draft *models.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.rdb.Set(ctx, s.key(draft.TripID), data, s.ttl).Err()
}

func (s *RedisDraftStore) Delete(ctx context.Context, tripID string) error {
	return s.rdb.Del(ctx, s.key(tripID)).Err()
}

func decodeDraft(data []byte) (*models.Draft, error) {
	var draft models.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}
