// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules for user accounts and the
// composite solution dialog.
//
// Validators are shared by the REST handlers and the dialog client so that
// both sides reject the same input. A validator can be scoped to a subset
// of fields by passing their names to Validate.
package validators

import "context"

// Validator validates one kind of payload, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
