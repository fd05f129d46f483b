// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name       string
		err        error
		wantClass  ErrorClassification
		wantColumn string
	}{
		{name: "nil", err: nil, wantClass: Unclassified},
		{name: "plain error", err: errors.New("boom"), wantClass: Unclassified},
		{name: "login", err: pgUniqueViolation("ux_user_login"), wantClass: UniqueViolation, wantColumn: "login"},
		{name: "wrapped uuid", err: fmt.Errorf("insert: %w", pgUniqueViolation("idx_solution_uuid")), wantClass: UniqueViolation, wantColumn: "uuid"},
		{name: "foreign key", err: &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, wantClass: ForeignKeyViolation},
		{name: "not null", err: &pgconn.PgError{Code: pgerrcode.NotNullViolation, ColumnName: "login"}, wantClass: NotNullViolation, wantColumn: "login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, c.Classify(tt.err))
			assert.Equal(t, tt.wantColumn, c.Column(tt.err))
		})
	}
}

func TestUniqueViolationError(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		constraint string
		want       error
	}{
		{"ux_user_login", ErrLoginAlreadyExists},
		{"ux_user_email", ErrEmailAlreadyExists},
		{"ux_user_phone", ErrPhoneAlreadyExists},
		{"idx_solution_uuid", ErrSolutionUUIDAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			got, ok := uniqueViolationError(c, pgUniqueViolation(tt.constraint))
			assert.True(t, ok)
			assert.ErrorIs(t, got, tt.want)
		})
	}

	_, ok := uniqueViolationError(c, pgUniqueViolation("some_other_index"))
	assert.False(t, ok)

	_, ok = uniqueViolationError(nil, pgUniqueViolation("ux_user_login"))
	assert.False(t, ok)
}
