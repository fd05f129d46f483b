package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/migrations"
	sq "github.com/Masterminds/squirrel"
)

// DB is a dialect-aware handle to the relational store. It embeds *sql.DB
// and carries the squirrel statement builder and the error classifier that
// match the driver it was opened with.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectDB opens the database selected by cfg.Driver.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded changelogs for this dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the configured driver name.
func (db *DB) Dialect() string {
	return db.dialect
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

func placeholderFormat(dialect string) sq.PlaceholderFormat {
	if dialect == config.DriverPostgres {
		return sq.Dollar
	}
	return sq.Question
}

func newDB(conn *sql.DB, dialect string, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholderFormat(dialect)),
		errorClassificator: classifier,
		logger:             log,
	}
}
