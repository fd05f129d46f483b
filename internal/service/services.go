package service

import (
	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
)

type Services struct {
	UserService              UserService
	AuthService              AuthService
	SolutionService          SolutionService
	CompositeSolutionService CompositeSolutionService
	AppInfoService           AppInfoService
	UserCleanupService       UserCleanupService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, storages.AuthorityRepository, logger),
	)

	return &Services{
		UserService:              userService,
		AuthService:              NewAuthService(storages.UserRepository, cfg.App, logger),
		SolutionService:          NewSolutionService(storages.SolutionRepository, utils.NewUUIDGenerator(), logger),
		CompositeSolutionService: NewCompositeSolutionService(storages.SolutionRepository, logger),
		AppInfoService:           appInfoService,
		UserCleanupService:       NewUserCleanupService(storages.UserRepository, cfg.Workers.NotActivatedUserTTL, logger),
	}, nil
}
