// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-uaa/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Dialog edits a solution and returns the submitted update, or nil when the
// user cancelled.
type Dialog interface {
	CompositeDialog(ctx context.Context, solution models.Solution) (*models.CompositeSolutionUpdate, error)
}
