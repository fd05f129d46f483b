package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against bcrypt hashes stored by the
// UserRepository and issues HS256-signed JWT tokens.
type authService struct {
	// userRepository is used to look up accounts by login.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Authenticate checks the login/password pair.
//
// Returns the account or:
//   - ErrWrongCredentials if the login is unknown or the password does not
//     match. Both cases look the same to the caller.
//   - ErrUserNotActivated if the credentials are right but the account is
//     not activated.
func (a *authService) Authenticate(ctx context.Context, credentials models.LoginVM) (models.User, error) {
	log := logger.FromContext(ctx)

	login := strings.ToLower(credentials.Username)
	user, err := a.userRepository.FindByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", login).Msg("authentication with unknown login")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.CheckPassword(user.PasswordHash, credentials.Password) {
		log.Warn().Str("login", login).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !user.Activated {
		return models.User{}, ErrUserNotActivated
	}

	return user, nil
}

// CreateToken issues a signed JWT whose subject is the user's login and
// whose "auth" claim lists the user's authorities.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Login, user.Authorities, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Any validation failure (expired,
// wrong issuer, malformed) is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
