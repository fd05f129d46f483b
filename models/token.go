package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set issued by the service. The subject is the
// user's login; Authorities carries the comma-separated role names.
type Claims struct {
	Authorities string `json:"auth"`
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with the identity it asserts.
type Token struct {
	// Token is the underlying parsed or freshly built JWT.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent to clients.
	SignedString string `json:"-"`

	// Login is the "sub" claim.
	Login string `json:"-"`

	// Authorities is the parsed "auth" claim.
	Authorities []string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// HasAuthority reports whether the token grants the given role.
func (t Token) HasAuthority(authority string) bool {
	for _, a := range t.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

// LoginVM is the body of an authentication request.
type LoginVM struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// JWTToken is the body of a successful authentication response.
type JWTToken struct {
	IDToken string `json:"id_token"`
}
