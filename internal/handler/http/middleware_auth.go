package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the parsed [models.Token]
// in the request context under [utils.TokenCtxKey].
//
// Requests without a header, with a malformed header or with an expired or
// invalid token are rejected with 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.tokenFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("request is not authenticated")
			h.writeError(w, r, err, "")
			return
		}

		ctx := context.WithValue(r.Context(), utils.TokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth attaches the caller token when a valid one is presented and
// lets the request through anonymously otherwise. Access decisions are left
// to the service layer.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := h.tokenFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("continuing without caller token")
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), utils.TokenCtxKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthority rejects callers whose token does not carry authority.
// It must run after [Handler.auth].
func (h *Handler) requireAuthority(authority string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := utils.GetTokenFromContext(r.Context())
			if !ok || !token.HasAuthority(authority) {
				logger.FromRequest(r).Warn().
					Str("authority", authority).
					Msg("caller lacks required authority")
				h.writeError(w, r, ErrMissingAuthority, "")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) tokenFromRequest(r *http.Request) (models.Token, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Token{}, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	return h.services.AuthService.ParseToken(r.Context(), tokenString)
}
