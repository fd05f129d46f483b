package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-uaa/internal/validators"
	"github.com/MKhiriev/go-uaa/models"
)

// UserValidationService validates incoming user payloads before passing
// them to the wrapped UserService.
type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, dto models.UserDTO) (models.User, error) {
	if err := v.validator.Validate(ctx, dto); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.UserService.CreateUser(ctx, dto)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, dto models.UserDTO) (models.User, error) {
	// the password is not changed through this endpoint
	err := v.validator.Validate(ctx, dto,
		validators.FieldLogin,
		validators.FieldEmail,
		validators.FieldFirstName,
		validators.FieldLastName,
		validators.FieldPhone,
		validators.FieldImageURL,
		validators.FieldLangKey,
		validators.FieldAuthority,
	)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.UserService.UpdateUser(ctx, dto)
}

func (v *UserValidationService) CreateAuthority(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, name); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.UserService.CreateAuthority(ctx, name)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}
