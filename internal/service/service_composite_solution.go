package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/validators"
	"github.com/MKhiriev/go-uaa/models"
)

// compositeSolutionService applies the partial updates sent by the
// composite solution dialog.
type compositeSolutionService struct {
	solutionRepository store.SolutionRepository
	validator          validators.Validator
	now                func() time.Time

	logger *logger.Logger
}

func NewCompositeSolutionService(solutions store.SolutionRepository, logger *logger.Logger) CompositeSolutionService {
	return &compositeSolutionService{
		solutionRepository: solutions,
		validator:          validators.NewSolutionValidator(),
		now:                time.Now,
		logger:             logger,
	}
}

// UpdateComposite sets name, version and summary of the solution with
// update.UUID. The fields follow the dialog rules; only the author or an
// admin may change the solution.
func (s *compositeSolutionService) UpdateComposite(ctx context.Context, update models.CompositeSolutionUpdate) (models.Solution, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.Solution{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	existing, err := s.solutionRepository.FindByUUID(ctx, update.UUID)
	if err != nil {
		return models.Solution{}, mapSolutionStoreError(err)
	}

	if !canModifySolution(ctx, existing) {
		log.Warn().Str("uuid", update.UUID).Str("author", existing.AuthorLogin).Msg("composite update denied")
		return models.Solution{}, ErrForbidden
	}

	updated, err := s.solutionRepository.UpdateComposite(ctx, update, s.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*compositeSolutionService.UpdateComposite").Str("uuid", update.UUID).Msg("composite update ended with error")
		return models.Solution{}, mapSolutionStoreError(err)
	}

	return updated, nil
}
