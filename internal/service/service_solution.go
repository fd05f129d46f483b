package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// UUIDGenerator produces solution uuids.
type UUIDGenerator interface {
	Generate() string
}

type solutionService struct {
	solutionRepository store.SolutionRepository
	uuidGenerator      UUIDGenerator
	now                func() time.Time

	logger *logger.Logger
}

func NewSolutionService(solutions store.SolutionRepository, generator UUIDGenerator, logger *logger.Logger) SolutionService {
	return &solutionService{
		solutionRepository: solutions,
		uuidGenerator:      generator,
		now:                time.Now,
		logger:             logger,
	}
}

// CreateSolution stores a new solution. A missing uuid is generated and a
// missing author defaults to the caller. Only admins may name another author.
func (s *solutionService) CreateSolution(ctx context.Context, solution models.Solution) (models.Solution, error) {
	if solution.ID != nil {
		return models.Solution{}, ErrIDExists
	}

	if solution.UUID == "" {
		solution.UUID = s.uuidGenerator.Generate()
	}
	if solution.AuthorLogin == "" {
		solution.AuthorLogin = utils.GetLoginFromContext(ctx)
	}
	if !canModifySolution(ctx, solution) {
		return models.Solution{}, ErrForbidden
	}

	now := s.now().UTC()
	solution.CreatedDate = now
	solution.ModifiedDate = now

	created, err := s.solutionRepository.Create(ctx, solution)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*solutionService.CreateSolution").Str("uuid", solution.UUID).Msg("solution creation ended with error")
		return models.Solution{}, mapSolutionStoreError(err)
	}

	return created, nil
}

// UpdateSolution replaces the stored solution with the same id. The
// creation date and an omitted author are carried over. Only admins may
// change the author.
func (s *solutionService) UpdateSolution(ctx context.Context, solution models.Solution) (models.Solution, error) {
	if solution.ID == nil {
		return models.Solution{}, ErrIDNull
	}

	existing, err := s.solutionRepository.FindByID(ctx, *solution.ID)
	if err != nil {
		return models.Solution{}, mapSolutionStoreError(err)
	}

	if !canModifySolution(ctx, existing) {
		return models.Solution{}, ErrForbidden
	}

	if solution.AuthorLogin == "" {
		solution.AuthorLogin = existing.AuthorLogin
	}
	if solution.AuthorLogin != existing.AuthorLogin && !canModifySolution(ctx, solution) {
		return models.Solution{}, ErrForbidden
	}
	if solution.UUID == "" {
		solution.UUID = existing.UUID
	}
	solution.CreatedDate = existing.CreatedDate
	solution.ModifiedDate = s.now().UTC()

	updated, err := s.solutionRepository.Update(ctx, solution)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*solutionService.UpdateSolution").Int64("id", *solution.ID).Msg("solution update ended with error")
		return models.Solution{}, mapSolutionStoreError(err)
	}

	return updated, nil
}

func (s *solutionService) GetSolution(ctx context.Context, id int64) (models.Solution, error) {
	solution, err := s.solutionRepository.FindByID(ctx, id)
	if err != nil {
		return models.Solution{}, mapSolutionStoreError(err)
	}
	return solution, nil
}

func (s *solutionService) GetSolutionByUUID(ctx context.Context, uuid string) (models.Solution, error) {
	solution, err := s.solutionRepository.FindByUUID(ctx, uuid)
	if err != nil {
		return models.Solution{}, mapSolutionStoreError(err)
	}
	return solution, nil
}

func (s *solutionService) ListSolutions(ctx context.Context, filter models.SolutionFilter, pageable models.Pageable) (models.Page[models.Solution], error) {
	return s.solutionRepository.FindAll(ctx, filter, pageable)
}

func (s *solutionService) DeleteSolution(ctx context.Context, id int64) error {
	existing, err := s.solutionRepository.FindByID(ctx, id)
	if err != nil {
		return mapSolutionStoreError(err)
	}

	if !canModifySolution(ctx, existing) {
		return ErrForbidden
	}

	if err = s.solutionRepository.Delete(ctx, id); err != nil {
		return mapSolutionStoreError(err)
	}
	return nil
}

// canModifySolution allows the author and admins.
func canModifySolution(ctx context.Context, solution models.Solution) bool {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return false
	}
	return token.HasAuthority(models.RoleAdmin) ||
		(token.Login != "" && token.Login == solution.AuthorLogin)
}

func mapSolutionStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrSolutionNotFound):
		return ErrSolutionNotFound
	case errors.Is(err, store.ErrSolutionUUIDAlreadyExists):
		return ErrUUIDAlreadyUsed
	}
	return err
}
