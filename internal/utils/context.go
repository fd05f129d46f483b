// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, HTTP client initialization, JWT token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-uaa/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TokenCtxKey is the key under which the auth middleware stores the parsed
// caller token.
//
//	ctx := context.WithValue(ctx, utils.TokenCtxKey, token)
var TokenCtxKey = contextKey("token")

// GetTokenFromContext retrieves the caller token from the context.
//
// Returns ok == false when the request is anonymous.
func GetTokenFromContext(ctx context.Context) (models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(models.Token)
	return token, ok
}

// GetLoginFromContext returns the login of the authenticated caller, or
// [models.SystemLogin] when there is none. Audit columns are filled with it.
func GetLoginFromContext(ctx context.Context) string {
	token, ok := GetTokenFromContext(ctx)
	if !ok || token.Login == "" {
		return models.SystemLogin
	}
	return token.Login
}
