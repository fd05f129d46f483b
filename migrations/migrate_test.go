// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose issues its own queries; none are expected by the mock
	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestMigrate_SQLiteSeedsUsersAndAuthorities(t *testing.T) {
	db, err := sql.Open("sqlite3", "file:"+filepath.Join(t.TempDir(), "uaa.db")+"?_foreign_keys=on")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, Migrate(db, DialectSQLite))
	// applying twice is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	var users int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM jhi_user`).Scan(&users))
	assert.Equal(t, 4, users)

	var adminRoles int
	require.NoError(t, db.QueryRow(`
		SELECT COUNT(*) FROM jhi_user_authority ua
		JOIN jhi_user u ON u.id = ua.user_id
		WHERE u.login = 'admin'`).Scan(&adminRoles))
	assert.Equal(t, 2, adminRoles)

	_, err = db.Exec(`INSERT INTO solution (uuid) VALUES ('dup')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO solution (uuid) VALUES ('dup')`)
	require.Error(t, err)
}
