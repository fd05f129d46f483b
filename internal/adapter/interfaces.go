// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the go-uaa server.
//
// The primary abstraction is [ServerAdapter], which decouples the composite
// solution dialog from the underlying protocol. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrForbidden] for 403, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-uaa/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-uaa server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Authenticate exchanges credentials for a token and stores it via
	// SetToken.
	Authenticate(ctx context.Context, credentials models.LoginVM) (string, error)

	// GetSolutionByUUID fetches the solution the dialog edits.
	GetSolutionByUUID(ctx context.Context, uuid string) (models.Solution, error)

	// UpdateCompositeSolution sends a composite update. The response body is
	// not interpreted.
	UpdateCompositeSolution(ctx context.Context, update models.CompositeSolutionUpdate) error
}
