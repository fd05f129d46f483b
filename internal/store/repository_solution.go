package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
	sq "github.com/Masterminds/squirrel"
)

type solutionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSolutionRepository constructs a [SolutionRepository] over the
// "solution" table. Uniqueness of uuid is left to the idx_solution_uuid
// index; a violation surfaces as [ErrSolutionUUIDAlreadyExists].
func NewSolutionRepository(db *DB, logger *logger.Logger) SolutionRepository {
	logger.Debug().Msg("creating solution repository")
	return &solutionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *solutionRepository) Create(ctx context.Context, solution models.Solution) (models.Solution, error) {
	query, args, err := buildInsertSolutionQuery(r.db.builder, solution)
	if err != nil {
		return models.Solution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return models.Solution{}, r.writeError(ctx, "Create", err)
	}

	solution.ID = &id
	return solution, nil
}

func (r *solutionRepository) Update(ctx context.Context, solution models.Solution) (models.Solution, error) {
	if solution.ID == nil {
		return models.Solution{}, ErrSolutionNotFound
	}

	query, args, err := buildUpdateSolutionQuery(r.db.builder, solution)
	if err != nil {
		return models.Solution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Solution{}, r.writeError(ctx, "Update", err)
	}

	if err = requireAffected(result); err != nil {
		return models.Solution{}, err
	}

	return r.FindByID(ctx, *solution.ID)
}

func (r *solutionRepository) UpdateComposite(ctx context.Context, update models.CompositeSolutionUpdate, modified time.Time) (models.Solution, error) {
	query, args, err := buildUpdateCompositeSolutionQuery(r.db.builder, update, modified)
	if err != nil {
		return models.Solution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Solution{}, r.writeError(ctx, "UpdateComposite", err)
	}

	if err = requireAffected(result); err != nil {
		return models.Solution{}, err
	}

	return r.FindByUUID(ctx, update.UUID)
}

func (r *solutionRepository) FindByID(ctx context.Context, id int64) (models.Solution, error) {
	return r.findOne(ctx, "FindByID", sq.Eq{"id": id})
}

func (r *solutionRepository) FindByUUID(ctx context.Context, uuid string) (models.Solution, error) {
	return r.findOne(ctx, "FindByUUID", sq.Eq{"uuid": uuid})
}

func (r *solutionRepository) findOne(ctx context.Context, op string, where sq.Sqlizer) (models.Solution, error) {
	query, args, err := buildFindSolutionQuery(r.db.builder, where)
	if err != nil {
		return models.Solution{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	solution, err := scanSolution(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Solution{}, ErrSolutionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*solutionRepository."+op).Msg("error finding solution")
		return models.Solution{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return solution, nil
}

func (r *solutionRepository) FindAll(ctx context.Context, filter models.SolutionFilter, pageable models.Pageable) (models.Page[models.Solution], error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountSolutionsQuery(r.db.builder, filter)
	if err != nil {
		return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*solutionRepository.FindAll").Msg("error counting solutions")
		return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := buildListSolutionsQuery(r.db.builder, filter, pageable)
	if err != nil {
		return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*solutionRepository.FindAll").Msg("error querying solutions")
		return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	solutions := make([]models.Solution, 0)
	for rows.Next() {
		s, scanErr := scanSolution(rows)
		if scanErr != nil {
			return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		solutions = append(solutions, s)
	}

	if err = rows.Err(); err != nil {
		return models.Page[models.Solution]{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.Page[models.Solution]{
		Content:       solutions,
		Number:        pageable.Page,
		Size:          pageable.Size,
		TotalElements: total,
	}, nil
}

func (r *solutionRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := buildDeleteSolutionQuery(r.db.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*solutionRepository.Delete").Int64("id", id).Msg("error deleting solution")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result)
}

func (r *solutionRepository) writeError(ctx context.Context, op string, err error) error {
	if sentinel, ok := uniqueViolationError(r.db.errorClassificator, err); ok {
		return sentinel
	}

	logger.FromContext(ctx).Err(err).Str("func", "*solutionRepository."+op).Msg("unexpected DB error")
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSolutionNotFound
	}
	return nil
}
