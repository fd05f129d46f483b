package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
)

type authorityRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthorityRepository constructs an [AuthorityRepository] over the
// "jhi_authority" table.
func NewAuthorityRepository(db *DB, logger *logger.Logger) AuthorityRepository {
	logger.Debug().Msg("creating authority repository")
	return &authorityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *authorityRepository) FindAll(ctx context.Context) ([]models.Authority, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuthoritiesQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorityRepository.FindAll").Msg("error querying authorities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authorities := make([]models.Authority, 0)
	for rows.Next() {
		var a models.Authority
		if err = rows.Scan(&a.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		authorities = append(authorities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authorities, nil
}

func (r *authorityRepository) Exists(ctx context.Context, name string) (bool, error) {
	query, args, err := buildCountAuthorityQuery(r.db.builder, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorityRepository.Exists").Str("authority", name).Msg("error counting authority")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Create inserts name unless it is already present.
func (r *authorityRepository) Create(ctx context.Context, name string) error {
	query, args, err := buildInsertAuthorityQuery(r.db.builder, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authorityRepository.Create").Str("authority", name).Msg("error inserting authority")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Delete removes the authority and every user link to it in one
// transaction. The result reports whether the authority row existed.
func (r *authorityRepository) Delete(ctx context.Context, name string) (bool, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*authorityRepository.Delete").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	linksQuery, linksArgs, err := buildDeleteAuthorityLinksQuery(r.db.builder, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
		log.Err(err).Str("func", "*authorityRepository.Delete").Str("authority", name).Msg("error deleting authority links")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err := buildDeleteAuthorityQuery(r.db.builder, name)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorityRepository.Delete").Str("authority", name).Msg("error deleting authority")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*authorityRepository.Delete").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return affected > 0, nil
}
