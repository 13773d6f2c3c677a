// Package storage opens the course store and key-value cache selected by
// the configuration.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lumina/internal/adapter"
	"lumina/internal/cache"
	"lumina/internal/config"
	"lumina/internal/database"
	"lumina/internal/domain"
	"lumina/internal/logger"
	"lumina/internal/repository"
)

// Storage holds the backends the services run on.
type Storage struct {
	Courses domain.CourseRepository
	Cache   domain.Cache

	closers []func() error
}

// Open connects the backends. Profiles and stats live in Redis when it is
// configured and in process memory otherwise; courses follow storage.driver.
func Open(ctx context.Context, cfg *config.Config) (*Storage, error) {
	log := logger.Get()
	s := &Storage{}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		client, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		redisClient = client
		s.closers = append(s.closers, client.Close)
		s.Cache = adapter.NewRedisCacheAdapter(client)
		log.Info("Using Redis cache")
	} else {
		s.Cache = adapter.NewMemoryCache()
		log.Info("Using in-memory cache")
	}

	switch cfg.Storage.Driver {
	case config.DriverMemory, "":
		s.Courses = adapter.NewMemoryCourseStore()
	case config.DriverRedis:
		if redisClient == nil {
			s.Close()
			return nil, errors.New("storage driver redis requires redis.address or redis.url")
		}
		s.Courses = adapter.NewRedisCourseStore(redisClient)
	case config.DriverOracle, config.DriverPostgres:
		db, err := database.NewSQLXDB(ctx, cfg)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		repo, err := repository.NewSQLXCourseRepository(db, cfg.Storage.Driver)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.Courses = repo
	default:
		s.Close()
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}

	log.Info("Course store ready", zap.String("driver", cfg.Storage.Driver))
	return s, nil
}

// Close releases every connection in reverse order of opening.
func (s *Storage) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}
