package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidLogin     = errors.New("invalid login")
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrInvalidFirstName = errors.New("invalid first name")
	ErrInvalidLastName  = errors.New("invalid last name")
	ErrInvalidPhone     = errors.New("invalid phone")
	ErrInvalidImageURL  = errors.New("invalid image url")
	ErrInvalidLangKey   = errors.New("invalid language key")
	ErrInvalidAuthority = errors.New("invalid authority")

	ErrInvalidUUID      = errors.New("invalid uuid")
	ErrNameRequired     = errors.New("name is required")
	ErrVersionRequired  = errors.New("version is required")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrInvalidCharacter = errors.New("field contains characters that are not allowed")
)
