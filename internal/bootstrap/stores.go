// Package bootstrap opens the storage backends selected by configuration.
package bootstrap

import (
	"context"
	"fmt"

	"trip-desk/internal/repository"
	"trip-desk/pkg/config"
	"trip-desk/pkg/mongodb"
	"trip-desk/pkg/postgres"
	"trip-desk/pkg/redisclient"

	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Stores bundles the backends the services run on. Close releases every
// connection that was opened.
type Stores struct {
	Trips    repository.TripStore
	Drafts   repository.DraftStore
	Notifier repository.Notifier

	closers []func()
}

func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Open connects the trip store named by cfg.Store.Driver and, when a Redis
// URL is set, the shared draft store and notifier. Without Redis drafts are
// kept in memory and notifications are dropped.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Stores, error) {
	s := &Stores{}

	trips, err := s.openTrips(ctx, cfg, logger)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.Trips = trips

	if cfg.Redis.URL == "" {
		logger.Warn("REDIS_URL not set, drafts are kept in memory and save notifications are disabled")
		s.Drafts = repository.NewMemoryDraftStore()
		s.Notifier = repository.NopNotifier{}
		return s, nil
	}

	rdb, err := redisclient.NewClient(ctx, &cfg.Redis, logger)
	if err != nil {
		s.Close()
		return nil, err
	}
	s.closers = append(s.closers, func() { _ = rdb.Close() })
	s.Drafts = repository.NewRedisDraftStore(rdb, cfg.Redis.DraftTTL, logger)
	s.Notifier = repository.NewRedisNotifier(rdb, logger)
	return s, nil
}

func (s *Stores) openTrips(ctx context.Context, cfg *config.Config, logger *zap.Logger) (repository.TripStore, error) {
	switch cfg.Store.Driver {
	case DriverPostgres:
		pool, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, pool.Close)
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			return nil, err
		}
		return repository.NewTripRepository(pool, logger), nil

	case DriverMongo:
		client, err := mongodb.NewClient(ctx, &cfg.Mongo, logger)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() { _ = client.Disconnect(context.Background()) })
		return repository.NewMongoTripRepository(client.Database(cfg.Mongo.Database), logger), nil

	case DriverMemory:
		logger.Warn("Using in-memory trip store, data is lost on restart")
		return repository.NewMemoryTripRepository(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
