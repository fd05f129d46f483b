package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-uaa/models"
)

// Field names accepted by [UserValidator].
const (
	FieldLogin     = "login"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldPhone     = "phone"
	FieldImageURL  = "image_url"
	FieldLangKey   = "lang_key"
	FieldAuthority = "authority"
)

// Length bounds of user fields, matching the jhi_user columns.
const (
	LoginMinLength    = 1
	LoginMaxLength    = 50
	EmailMinLength    = 5
	EmailMaxLength    = 254
	PasswordMinLength = 4
	PasswordMaxLength = 100
	NameMaxLength     = 50
	PhoneMaxLength    = 32
	ImageURLMaxLength = 256
	LangKeyMinLength  = 2
	LangKeyMaxLength  = 10
	AuthorityMaxLen   = 50
)

var loginPattern = regexp.MustCompile(`^[_'.@A-Za-z0-9-]*$`)

// ValidLogin reports whether login satisfies the login pattern and length.
// It is also used to reject malformed {login} path variables.
func ValidLogin(login string) bool {
	n := utf8.RuneCountInString(login)
	return n >= LoginMinLength && n <= LoginMaxLength && loginPattern.MatchString(login)
}

// UserValidator validates user payloads: [models.UserDTO] and
// [models.LoginVM]. Authority names passed as a plain string are validated
// with [FieldAuthority].
type UserValidator struct{}

// NewUserValidator constructs a [UserValidator].
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UserDTO:
		return v.validateUserDTO(value, fields...)
	case *models.UserDTO:
		return v.validateUserDTO(*value, fields...)

	case models.LoginVM:
		return v.validateLoginVM(value)
	case *models.LoginVM:
		return v.validateLoginVM(*value)

	case string:
		return v.validateAuthority(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUserDTO(dto models.UserDTO, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldEmail, FieldPassword, FieldFirstName, FieldLastName, FieldPhone, FieldImageURL, FieldLangKey, FieldAuthority}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if !ValidLogin(dto.Login) {
				return ErrInvalidLogin
			}
		case FieldEmail:
			if !validEmail(dto.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			// optional on create, a random one is generated
			if dto.Password != "" && !lengthBetween(dto.Password, PasswordMinLength, PasswordMaxLength) {
				return ErrInvalidPassword
			}
		case FieldFirstName:
			if !lengthBetween(dto.FirstName, 0, NameMaxLength) {
				return ErrInvalidFirstName
			}
		case FieldLastName:
			if !lengthBetween(dto.LastName, 0, NameMaxLength) {
				return ErrInvalidLastName
			}
		case FieldPhone:
			if !lengthBetween(dto.Phone, 0, PhoneMaxLength) {
				return ErrInvalidPhone
			}
		case FieldImageURL:
			if !lengthBetween(dto.ImageURL, 0, ImageURLMaxLength) {
				return ErrInvalidImageURL
			}
		case FieldLangKey:
			if dto.LangKey != "" && !lengthBetween(dto.LangKey, LangKeyMinLength, LangKeyMaxLength) {
				return ErrInvalidLangKey
			}
		case FieldAuthority:
			for _, a := range dto.Authorities {
				if err := v.validateAuthority(a); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLoginVM(vm models.LoginVM) error {
	if !ValidLogin(strings.ToLower(vm.Username)) {
		return ErrInvalidLogin
	}
	if !lengthBetween(vm.Password, PasswordMinLength, PasswordMaxLength) {
		return ErrInvalidPassword
	}
	return nil
}

func (v *UserValidator) validateAuthority(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > AuthorityMaxLen {
		return ErrInvalidAuthority
	}
	return nil
}

func validEmail(email string) bool {
	if !lengthBetween(email, EmailMinLength, EmailMaxLength) {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

func lengthBetween(s string, lower, upper int) bool {
	n := utf8.RuneCountInString(s)
	return n >= lower && n <= upper
}
