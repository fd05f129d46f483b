package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
)

// Storages bundles every repository the services depend on together with
// the resources they share.
type Storages struct {
	UserRepository      UserRepository
	AuthorityRepository AuthorityRepository
	SolutionRepository  SolutionRepository

	db    *DB
	cache Cache
}

// NewStorages opens the configured database, applies migrations and builds
// the repositories. When a Redis address is configured, user lookups go
// through the cache.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	storages := NewStoragesFromDB(db, log)

	if cfg.Cache.RedisAddress != "" {
		cache, cacheErr := NewRedisCache(ctx, cfg.Cache, log)
		if cacheErr != nil {
			db.Close()
			return nil, cacheErr
		}
		storages.withCache(cache, cfg.Cache.TTL)
	}

	return storages, nil
}

// NewStoragesFromDB builds uncached repositories over an open database.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		AuthorityRepository: NewAuthorityRepository(db, log),
		SolutionRepository:  NewSolutionRepository(db, log),
		db:                  db,
	}
}

// withCache routes user lookups through cache. Authority deletions flush the
// cached users since they change the authorities of every linked account.
func (s *Storages) withCache(cache Cache, ttl time.Duration) {
	s.cache = cache
	s.UserRepository = NewCachedUserRepository(s.UserRepository, cache, ttl)
	s.AuthorityRepository = NewCachedAuthorityRepository(s.AuthorityRepository, cache)
}

// Ping implements [HealthChecker] over the database and, when present, the
// cache.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Ping(ctx); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}

	return nil
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	var errs []error
	if s.cache != nil {
		errs = append(errs, s.cache.Close())
	}
	errs = append(errs, s.db.Close())
	return errors.Join(errs...)
}
