// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// Unclassified is returned for nil errors and errors that are not
	// recognised driver errors.
	Unclassified ErrorClassification = iota

	// UniqueViolation marks a unique constraint or unique index violation.
	UniqueViolation

	// ForeignKeyViolation marks a reference to a missing parent row.
	ForeignKeyViolation

	// NotNullViolation marks a missing required column.
	NotNullViolation
)

// ErrorClassificator hides driver specific error types from repositories.
type ErrorClassificator interface {
	// Classify maps a driver error to an [ErrorClassification].
	Classify(err error) ErrorClassification
	// Column returns the column a constraint violation refers to, or ""
	// when it cannot be determined.
	Column(err error) string
}

// constraintColumns maps the constraint and index names declared by the
// migrations to the column they guard.
var constraintColumns = map[string]string{
	"ux_user_login":     "login",
	"ux_user_email":     "email",
	"ux_user_phone":     "phone",
	"idx_solution_uuid": "uuid",
}

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return NotNullViolation
	}

	return Unclassified
}

// Column implements [ErrorClassificator] using the violated constraint name.
func (c *PostgresErrorClassifier) Column(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ""
	}

	if column, ok := constraintColumns[pgErr.ConstraintName]; ok {
		return column
	}

	return pgErr.ColumnName
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return Unclassified
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return NotNullViolation
	}

	return Unclassified
}

// Column implements [ErrorClassificator]. SQLite reports violations as
// "UNIQUE constraint failed: table.column".
func (c *SQLiteErrorClassifier) Column(err error) string {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}

	msg := sqliteErr.Error()
	idx := strings.LastIndex(msg, ":")
	if idx < 0 {
		return ""
	}

	// composite constraints list "t.a, t.b"; the first column names it
	target := strings.TrimSpace(msg[idx+1:])
	target, _, _ = strings.Cut(target, ",")
	if _, column, ok := strings.Cut(target, "."); ok {
		return column
	}

	return target
}

// uniqueViolationError translates a unique violation on a known column into
// the matching sentinel error. ok is false for any other error.
func uniqueViolationError(c ErrorClassificator, err error) (error, bool) {
	if c == nil || c.Classify(err) != UniqueViolation {
		return nil, false
	}

	switch c.Column(err) {
	case "login":
		return ErrLoginAlreadyExists, true
	case "email":
		return ErrEmailAlreadyExists, true
	case "phone":
		return ErrPhoneAlreadyExists, true
	case "uuid":
		return ErrSolutionUUIDAlreadyExists, true
	}

	return nil, false
}
