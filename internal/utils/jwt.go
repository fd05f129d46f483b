package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-uaa/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for login.
//
// The token carries the standard iss, sub (the login), iat and exp claims
// plus an "auth" claim with the comma-separated authorities.
//
// Returns an error if issuer, login, signKey are empty or tokenDuration is
// not positive.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("go-uaa", "admin", []string{"ROLE_ADMIN"}, time.Hour, "secret")
func GenerateJWTToken(issuer, login string, authorities []string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || login == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		Authorities: models.JoinAuthorities(authorities),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   login,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Login:        login,
		Authorities:  models.SplitAuthorities(claims.Authorities),
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// the caller identity.
//
// Validation includes the HMAC signature, the issuer, the expiration and
// the presence of a subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Login:        claims.Subject,
		Authorities:  models.SplitAuthorities(claims.Authorities),
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
