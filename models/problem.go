// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProblemBaseURL prefixes every problem type URI.
const ProblemBaseURL = "https://www.jhipster.tech/problem"

// Problem is the structured error body returned with
// "application/problem+json" responses.
type Problem struct {
	Type       string `json:"type"`
	Title      string `json:"title"`
	Status     int    `json:"status"`
	Message    string `json:"message,omitempty"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
}
