package store

import (
	"context"

	"github.com/MKhiriev/go-uaa/internal/logger"
)

// cachedAuthorityRepository evicts cached users whenever an authority they
// may hold is removed.
type cachedAuthorityRepository struct {
	AuthorityRepository
	cache Cache
}

func NewCachedAuthorityRepository(next AuthorityRepository, cache Cache) AuthorityRepository {
	return &cachedAuthorityRepository{AuthorityRepository: next, cache: cache}
}

func (r *cachedAuthorityRepository) Delete(ctx context.Context, name string) (bool, error) {
	removed, err := r.AuthorityRepository.Delete(ctx, name)
	if err != nil || !removed {
		return removed, err
	}

	if err = r.cache.DeleteByPrefix(ctx, usersByLoginCache, usersByEmailCache); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*cachedAuthorityRepository.Delete").
			Str("authority", name).
			Msg("error flushing cached users")
		return removed, err
	}

	return removed, nil
}
