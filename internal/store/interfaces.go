package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-uaa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts together with their authority set.
// Every lookup returns [ErrNoUserWasFound] when nothing matches.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (models.User, error)
	// FindByLogin matches the lower-cased login.
	FindByLogin(ctx context.Context, login string) (models.User, error)
	// FindByEmail matches case-insensitively.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByPhone(ctx context.Context, phone string) (models.User, error)
	// FindAllByLoginNot returns one page of users, excluding login.
	FindAllByLoginNot(ctx context.Context, pageable models.Pageable, login string) (models.Page[models.User], error)
	// FindNotActivatedCreatedBefore lists non-activated accounts older than before.
	FindNotActivatedCreatedBefore(ctx context.Context, before time.Time) ([]models.User, error)

	// Create inserts user and links the given authorities that exist.
	// Unique violations surface as ErrLoginAlreadyExists,
	// ErrEmailAlreadyExists or ErrPhoneAlreadyExists.
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update replaces all mutable columns and the authority set.
	Update(ctx context.Context, user models.User) (models.User, error)
	// DeleteByLogin removes the user and its authority links. Deleting an
	// unknown login is not an error.
	DeleteByLogin(ctx context.Context, login string) error
}

// AuthorityRepository manages role names.
type AuthorityRepository interface {
	FindAll(ctx context.Context) ([]models.Authority, error)
	Exists(ctx context.Context, name string) (bool, error)
	// Create inserts the authority unless it already exists.
	Create(ctx context.Context, name string) error
	// Delete removes the authority and its user links, reporting whether a
	// row was removed.
	Delete(ctx context.Context, name string) (bool, error)
}

// SolutionRepository persists solutions. Lookups return
// [ErrSolutionNotFound] when nothing matches; a duplicate uuid surfaces as
// [ErrSolutionUUIDAlreadyExists].
type SolutionRepository interface {
	Create(ctx context.Context, solution models.Solution) (models.Solution, error)
	Update(ctx context.Context, solution models.Solution) (models.Solution, error)
	// UpdateComposite applies name, version and summary to the solution
	// with update.UUID.
	UpdateComposite(ctx context.Context, update models.CompositeSolutionUpdate, modified time.Time) (models.Solution, error)
	FindByID(ctx context.Context, id int64) (models.Solution, error)
	FindByUUID(ctx context.Context, uuid string) (models.Solution, error)
	FindAll(ctx context.Context, filter models.SolutionFilter, pageable models.Pageable) (models.Page[models.Solution], error)
	Delete(ctx context.Context, id int64) error
}

// Cache is a key/value store for serialisable values with expiry.
type Cache interface {
	// Get decodes the value under key into dest or returns [ErrCacheMiss].
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeleteByPrefix removes every key starting with one of prefixes.
	DeleteByPrefix(ctx context.Context, prefixes ...string) error
	Ping(ctx context.Context) error
	Close() error
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
