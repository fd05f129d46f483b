package models

import (
	"strings"
	"time"
)

// Well-known accounts seeded by the initial migration.
const (
	SystemLogin    = "system"
	AnonymousLogin = "anonymoususer"
	DefaultLangKey = "en"
)

// User is the persisted account entity stored in the "jhi_user" table.
// Credential fields are never serialized; use [UserDTO] on the wire.
type User struct {
	// ID is the database-assigned primary key.
	ID int64 `json:"id"`

	// Login is unique and always stored lower-cased.
	Login string `json:"login"`

	// PasswordHash holds the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Email is unique case-insensitively and always stored lower-cased.
	Email string `json:"email"`

	// Phone is optional; when present it is unique.
	Phone string `json:"phone"`

	ImageURL  string `json:"imageUrl"`
	Activated bool   `json:"activated"`
	LangKey   string `json:"langKey"`

	ActivationKey string     `json:"-"`
	ResetKey      string     `json:"-"`
	ResetDate     *time.Time `json:"-"`

	CreatedBy        string     `json:"createdBy"`
	CreatedDate      time.Time  `json:"createdDate"`
	LastModifiedBy   string     `json:"lastModifiedBy"`
	LastModifiedDate *time.Time `json:"lastModifiedDate"`

	// Authorities is the set of role names granted to the user. It is loaded
	// lazily by the repository and is nil until requested.
	Authorities []string `json:"authorities"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "jhi_user"
}

// HasAuthority reports whether the user holds the given role.
func (u User) HasAuthority(authority string) bool {
	for _, a := range u.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// UserDTO is the wire representation of a [User] exchanged with API clients.
//
// ID is a pointer so that "no id" can be told apart from id 0: a create
// request must not carry an id and an update request must.
type UserDTO struct {
	ID               *int64     `json:"id"`
	Login            string     `json:"login"`
	FirstName        string     `json:"firstName,omitempty"`
	LastName         string     `json:"lastName,omitempty"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	ImageURL         string     `json:"imageUrl,omitempty"`
	Activated        bool       `json:"activated"`
	LangKey          string     `json:"langKey,omitempty"`
	CreatedBy        string     `json:"createdBy,omitempty"`
	CreatedDate      *time.Time `json:"createdDate,omitempty"`
	LastModifiedBy   string     `json:"lastModifiedBy,omitempty"`
	LastModifiedDate *time.Time `json:"lastModifiedDate,omitempty"`
	Authorities      []string   `json:"authorities"`

	// Password is accepted on input only (managed user view model). When
	// empty on create, a random password is generated.
	Password string `json:"password,omitempty"`
}

// NewUserDTO maps a persisted user to its wire representation.
func NewUserDTO(u User) UserDTO {
	id := u.ID
	created := u.CreatedDate

	authorities := u.Authorities
	if authorities == nil {
		authorities = []string{}
	}

	return UserDTO{
		ID:               &id,
		Login:            u.Login,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		Email:            u.Email,
		Phone:            u.Phone,
		ImageURL:         u.ImageURL,
		Activated:        u.Activated,
		LangKey:          u.LangKey,
		CreatedBy:        u.CreatedBy,
		CreatedDate:      &created,
		LastModifiedBy:   u.LastModifiedBy,
		LastModifiedDate: u.LastModifiedDate,
		Authorities:      authorities,
	}
}

// HasID reports whether the DTO carries an identifier.
func (d UserDTO) HasID() bool {
	return d.ID != nil
}

// NormalizedLogin returns the login in the form it is stored and compared.
func (d UserDTO) NormalizedLogin() string {
	return strings.ToLower(d.Login)
}

// NormalizedEmail returns the email in the form it is stored and compared.
func (d UserDTO) NormalizedEmail() string {
	return strings.ToLower(d.Email)
}
