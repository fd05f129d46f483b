package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
)

// Cache key prefixes for user lookups.
const (
	usersByLoginCache = "usersByLogin:"
	usersByEmailCache = "usersByEmail:"
)

// cachedUser is the cache representation of a user. models.User hides its
// credential fields from JSON, so they are re-declared here.
type cachedUser struct {
	models.User
	PasswordHash  string     `json:"passwordHash"`
	ActivationKey string     `json:"activationKey"`
	ResetKey      string     `json:"resetKey"`
	ResetDate     *time.Time `json:"resetDate"`
}

func newCachedUser(u models.User) cachedUser {
	return cachedUser{
		User:          u,
		PasswordHash:  u.PasswordHash,
		ActivationKey: u.ActivationKey,
		ResetKey:      u.ResetKey,
		ResetDate:     u.ResetDate,
	}
}

func (c cachedUser) user() models.User {
	u := c.User
	u.PasswordHash = c.PasswordHash
	u.ActivationKey = c.ActivationKey
	u.ResetKey = c.ResetKey
	u.ResetDate = c.ResetDate
	return u
}

// cachedUserRepository is a read-through [UserRepository] decorator. Lookups
// by login and email are served from the cache; every write evicts the
// entries of the affected user. Cache failures are logged and fall back to
// the wrapped repository.
type cachedUserRepository struct {
	UserRepository
	cache Cache
	ttl   time.Duration
}

// NewCachedUserRepository wraps next with a cache.
func NewCachedUserRepository(next UserRepository, cache Cache, ttl time.Duration) UserRepository {
	return &cachedUserRepository{
		UserRepository: next,
		cache:          cache,
		ttl:            ttl,
	}
}

func (r *cachedUserRepository) FindByLogin(ctx context.Context, login string) (models.User, error) {
	return r.readThrough(ctx, usersByLoginCache+login, func() (models.User, error) {
		return r.UserRepository.FindByLogin(ctx, login)
	})
}

func (r *cachedUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.readThrough(ctx, usersByEmailCache+strings.ToLower(email), func() (models.User, error) {
		return r.UserRepository.FindByEmail(ctx, email)
	})
}

func (r *cachedUserRepository) readThrough(ctx context.Context, key string, load func() (models.User, error)) (models.User, error) {
	log := logger.FromContext(ctx)

	var cached cachedUser
	err := r.cache.Get(ctx, key, &cached)
	if err == nil {
		return cached.user(), nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		log.Warn().Err(err).Str("key", key).Msg("user cache read failed")
	}

	user, err := load()
	if err != nil {
		return models.User{}, err
	}

	if setErr := r.cache.Set(ctx, key, newCachedUser(user), r.ttl); setErr != nil {
		log.Warn().Err(setErr).Str("key", key).Msg("user cache write failed")
	}

	return user, nil
}

func (r *cachedUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	created, err := r.UserRepository.Create(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	r.evict(ctx, created)
	return created, nil
}

func (r *cachedUserRepository) Update(ctx context.Context, user models.User) (models.User, error) {
	// the previous login/email may differ from the new one
	if previous, err := r.UserRepository.FindByID(ctx, user.ID); err == nil {
		r.evict(ctx, previous)
	}

	updated, err := r.UserRepository.Update(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	r.evict(ctx, updated)
	return updated, nil
}

func (r *cachedUserRepository) DeleteByLogin(ctx context.Context, login string) error {
	if previous, err := r.UserRepository.FindByLogin(ctx, login); err == nil {
		r.evict(ctx, previous)
	}
	return r.UserRepository.DeleteByLogin(ctx, login)
}

func (r *cachedUserRepository) evict(ctx context.Context, user models.User) {
	keys := []string{usersByLoginCache + user.Login}
	if user.Email != "" {
		keys = append(keys, usersByEmailCache+strings.ToLower(user.Email))
	}

	if err := r.cache.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Strs("keys", keys).Msg("user cache eviction failed")
	}
}
