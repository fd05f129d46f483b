// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import "errors"

// ErrInvalidSchedule is returned when a cron spec cannot be parsed.
var ErrInvalidSchedule = errors.New("invalid job schedule")
