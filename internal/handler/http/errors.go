// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingAuthority is returned when the caller token lacks a role
	// the route requires.
	ErrMissingAuthority = errors.New("caller lacks the required authority")

	ErrInvalidRequestBody = errors.New("request body is not valid JSON")
	ErrInvalidPathParam   = errors.New("invalid path parameter")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
)
