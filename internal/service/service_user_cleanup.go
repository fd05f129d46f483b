package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
)

type userCleanupService struct {
	userRepository store.UserRepository
	ttl            time.Duration
	now            func() time.Time

	logger *logger.Logger
}

// NewUserCleanupService removes accounts that stayed non-activated for
// longer than ttl.
func NewUserCleanupService(users store.UserRepository, ttl time.Duration, logger *logger.Logger) UserCleanupService {
	return &userCleanupService{
		userRepository: users,
		ttl:            ttl,
		now:            time.Now,
		logger:         logger,
	}
}

// RemoveNotActivatedUsers deletes the stale accounts and returns how many
// were removed. A failing delete stops the run.
func (s *userCleanupService) RemoveNotActivatedUsers(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.FindNotActivatedCreatedBefore(ctx, s.now().UTC().Add(-s.ttl))
	if err != nil {
		return 0, fmt.Errorf("error listing not activated users: %w", err)
	}

	removed := 0
	for _, user := range users {
		if err = s.userRepository.DeleteByLogin(ctx, user.Login); err != nil {
			return removed, fmt.Errorf("error deleting not activated user %q: %w", user.Login, err)
		}
		log.Debug().Str("login", user.Login).Msg("deleted not activated user")
		removed++
	}

	return removed, nil
}
