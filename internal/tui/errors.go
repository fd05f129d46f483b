// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-uaa/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, sign in again"
	case errors.Is(err, adapter.ErrForbidden):
		return "Only the author or an administrator can edit this solution"
	case errors.Is(err, adapter.ErrNotFound):
		return "Solution not found"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
