package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository      store.UserRepository
	authorityRepository store.AuthorityRepository

	// now is replaced in tests.
	now func() time.Time

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repositories.
func NewUserService(users store.UserRepository, authorities store.AuthorityRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository:      users,
		authorityRepository: authorities,
		now:                 time.Now,
		logger:              logger,
	}
}

// CreateUser registers a new account from dto.
//
// The checks run in a fixed order: a pre-set id fails with ErrIDExists, then
// a taken login with ErrLoginAlreadyUsed, then a taken email with
// ErrEmailAlreadyUsed. Login and email are stored lower-cased, the language
// key defaults to "en" and only authorities that exist are granted. Without
// a password in dto a random one is generated.
func (s *userService) CreateUser(ctx context.Context, dto models.UserDTO) (models.User, error) {
	log := logger.FromContext(ctx)

	if dto.HasID() {
		return models.User{}, ErrIDExists
	}

	login := dto.NormalizedLogin()
	email := dto.NormalizedEmail()

	if _, err := s.userRepository.FindByLogin(ctx, login); err == nil {
		return models.User{}, ErrLoginAlreadyUsed
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("error checking login: %w", err)
	}

	if _, err := s.userRepository.FindByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailAlreadyUsed
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}

	password := dto.Password
	if password == "" {
		generated, err := utils.RandomString(2 * utils.RandomKeyLength)
		if err != nil {
			return models.User{}, err
		}
		password = generated
	}
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Msg("error hashing password")
		return models.User{}, err
	}

	resetKey, err := utils.RandomString(utils.RandomKeyLength)
	if err != nil {
		return models.User{}, err
	}

	authorities, err := s.existingAuthorities(ctx, dto.Authorities)
	if err != nil {
		return models.User{}, err
	}

	now := s.now().UTC()
	user := models.User{
		Login:        login,
		PasswordHash: passwordHash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        email,
		Phone:        dto.Phone,
		ImageURL:     dto.ImageURL,
		Activated:    dto.Activated,
		LangKey:      langKeyOrDefault(dto.LangKey),
		ResetKey:     resetKey,
		ResetDate:    &now,
		CreatedBy:    utils.GetLoginFromContext(ctx),
		CreatedDate:  now,
		Authorities:  authorities,
	}

	created, err := s.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.CreateUser").Str("login", login).Msg("user creation ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	log.Debug().Str("login", created.Login).Msg("created user")
	return created, nil
}

// UpdateUser replaces the account with dto.ID.
//
// The email check runs before the login check; both ignore the record being
// updated. A missing id or an unknown user yields ErrUserNotFound.
func (s *userService) UpdateUser(ctx context.Context, dto models.UserDTO) (models.User, error) {
	log := logger.FromContext(ctx)

	if !dto.HasID() {
		return models.User{}, ErrUserNotFound
	}
	id := *dto.ID

	login := dto.NormalizedLogin()
	email := dto.NormalizedEmail()

	if other, err := s.userRepository.FindByEmail(ctx, email); err == nil && other.ID != id {
		return models.User{}, ErrEmailAlreadyUsed
	} else if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("error checking email: %w", err)
	}

	if other, err := s.userRepository.FindByLogin(ctx, login); err == nil && other.ID != id {
		return models.User{}, ErrLoginAlreadyUsed
	} else if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("error checking login: %w", err)
	}

	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	authorities, err := s.existingAuthorities(ctx, dto.Authorities)
	if err != nil {
		return models.User{}, err
	}

	now := s.now().UTC()
	user.Login = login
	user.FirstName = dto.FirstName
	user.LastName = dto.LastName
	user.Email = email
	user.Phone = dto.Phone
	user.ImageURL = dto.ImageURL
	user.Activated = dto.Activated
	user.LangKey = langKeyOrDefault(dto.LangKey)
	user.Authorities = authorities
	user.LastModifiedBy = utils.GetLoginFromContext(ctx)
	user.LastModifiedDate = &now

	updated, err := s.userRepository.Update(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.UpdateUser").Int64("id", id).Msg("user update ended with error")
		return models.User{}, mapUserStoreError(err)
	}

	return updated, nil
}

func (s *userService) GetUser(ctx context.Context, login string) (models.User, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || !canReadUser(token, login) {
		logger.FromContext(ctx).Warn().Str("login", login).Msg("access to user denied")
		return models.User{}, ErrForbidden
	}

	user, err := s.userRepository.FindByLogin(ctx, strings.ToLower(login))
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	return user, nil
}

// canReadUser grants access to the subject itself, the system account and
// admins.
func canReadUser(token models.Token, login string) bool {
	return token.Login == login ||
		token.Login == models.SystemLogin ||
		token.HasAuthority(models.RoleAdmin)
}

func (s *userService) GetAccount(ctx context.Context) (models.User, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok {
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := s.userRepository.FindByLogin(ctx, token.Login)
	if err != nil {
		return models.User{}, mapUserStoreError(err)
	}

	return user, nil
}

// ListUsers pages over every account except the anonymous one.
func (s *userService) ListUsers(ctx context.Context, pageable models.Pageable) (models.Page[models.User], error) {
	return s.userRepository.FindAllByLoginNot(ctx, pageable, models.AnonymousLogin)
}

func (s *userService) DeleteUser(ctx context.Context, login string) error {
	if err := s.userRepository.DeleteByLogin(ctx, strings.ToLower(login)); err != nil {
		return fmt.Errorf("error deleting user %q: %w", login, err)
	}

	logger.FromContext(ctx).Debug().Str("login", login).Msg("deleted user")
	return nil
}

func (s *userService) GetAuthorities(ctx context.Context) ([]string, error) {
	authorities, err := s.authorityRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(authorities))
	for _, a := range authorities {
		names = append(names, a.Name)
	}
	return names, nil
}

func (s *userService) CreateAuthority(ctx context.Context, name string) error {
	return s.authorityRepository.Create(ctx, name)
}

// DeleteAuthority reports whether the authority existed and was removed.
func (s *userService) DeleteAuthority(ctx context.Context, name string) (bool, error) {
	return s.authorityRepository.Delete(ctx, name)
}

func (s *userService) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	return exists(s.userRepository.FindByLogin(ctx, strings.ToLower(login)))
}

func (s *userService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return exists(s.userRepository.FindByEmail(ctx, email))
}

func (s *userService) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return exists(s.userRepository.FindByPhone(ctx, phone))
}

func exists(_ models.User, err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, store.ErrNoUserWasFound):
		return false, nil
	default:
		return false, err
	}
}

// existingAuthorities keeps the requested authorities that are known,
// preserving order and dropping duplicates.
func (s *userService) existingAuthorities(ctx context.Context, requested []string) ([]string, error) {
	if len(requested) == 0 {
		return []string{}, nil
	}

	known, err := s.authorityRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading authorities: %w", err)
	}

	set := make(map[string]bool, len(known))
	for _, a := range known {
		set[a.Name] = true
	}

	result := make([]string, 0, len(requested))
	for _, name := range requested {
		if set[name] {
			result = append(result, name)
			delete(set, name)
		}
	}
	return result, nil
}

func langKeyOrDefault(langKey string) string {
	if langKey == "" {
		return models.DefaultLangKey
	}
	return langKey
}

// mapUserStoreError turns repository sentinels into service errors. Unique
// violations that slip past the read-then-write checks map to the same
// errors as the checks.
func mapUserStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrLoginAlreadyUsed
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailAlreadyUsed
	}
	return err
}
