package service

import (
	"context"

	"github.com/MKhiriev/go-uaa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService manages user accounts and authorities.
type UserService interface {
	CreateUser(ctx context.Context, dto models.UserDTO) (models.User, error)
	UpdateUser(ctx context.Context, dto models.UserDTO) (models.User, error)
	// GetUser is allowed to the user itself, the system account and admins.
	GetUser(ctx context.Context, login string) (models.User, error)
	// GetAccount returns the user the request token belongs to.
	GetAccount(ctx context.Context) (models.User, error)
	ListUsers(ctx context.Context, pageable models.Pageable) (models.Page[models.User], error)
	DeleteUser(ctx context.Context, login string) error

	GetAuthorities(ctx context.Context) ([]string, error)
	CreateAuthority(ctx context.Context, name string) error
	DeleteAuthority(ctx context.Context, name string) (bool, error)

	ExistsByLogin(ctx context.Context, login string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type AuthService interface {
	Authenticate(ctx context.Context, credentials models.LoginVM) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SolutionService manages the solution catalogue. Changes are allowed to
// the author and to admins.
type SolutionService interface {
	CreateSolution(ctx context.Context, solution models.Solution) (models.Solution, error)
	UpdateSolution(ctx context.Context, solution models.Solution) (models.Solution, error)
	GetSolution(ctx context.Context, id int64) (models.Solution, error)
	GetSolutionByUUID(ctx context.Context, uuid string) (models.Solution, error)
	ListSolutions(ctx context.Context, filter models.SolutionFilter, pageable models.Pageable) (models.Page[models.Solution], error)
	DeleteSolution(ctx context.Context, id int64) error
}

type CompositeSolutionService interface {
	UpdateComposite(ctx context.Context, update models.CompositeSolutionUpdate) (models.Solution, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserCleanupService removes accounts that were never activated.
type UserCleanupService interface {
	RemoveNotActivatedUsers(ctx context.Context) (int, error)
}

// UserServiceWrapper decorates a UserService, e.g. with input validation.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
