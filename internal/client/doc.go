// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the composite solution dialog client runtime.
//
// It authenticates against the server, loads the solution to edit, runs the
// terminal dialog and prints the dialog result.
package client
