// Package migrations embeds the versioned schema changelogs and applies them
// with goose. Each supported SQL dialect has its own directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialect names accepted by [Migrate]. They match the storage driver names
// used in configuration.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and filesystem in package globals.
var mu sync.Mutex

// Migrate applies all pending changelogs for dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	var gooseDialect string
	switch dialect {
	case DialectPostgres:
		gooseDialect = "pgx"
	case DialectSQLite:
		gooseDialect = "sqlite3"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	mu.Lock()
	defer mu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
