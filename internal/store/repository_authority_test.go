package store

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorityRepository_FindAll(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorityRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT name FROM jhi_authority ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow(models.RoleAdmin).AddRow(models.RoleUser))

	authorities, err := repo.FindAll(testContext())
	require.NoError(t, err)
	assert.Equal(t, []models.Authority{{Name: models.RoleAdmin}, {Name: models.RoleUser}}, authorities)
}

func TestAuthorityRepository_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorityRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jhi_authority WHERE name = \$1`).
		WithArgs(models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM jhi_authority WHERE name = \$1`).
		WithArgs("ROLE_NOPE").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(0)))

	ok, err := repo.Exists(testContext(), models.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Exists(testContext(), "ROLE_NOPE")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthorityRepository_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorityRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectExec(`INSERT INTO jhi_authority \(name\) VALUES \(\$1\) ON CONFLICT \(name\) DO NOTHING`).
		WithArgs("ROLE_AUDITOR").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Create(testContext(), "ROLE_AUDITOR"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorityRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "existing authority", affected: 1, want: true},
		{name: "missing authority", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewAuthorityRepository(newDBFromSQL(db), logger.Nop())

			mock.ExpectBegin()
			mock.ExpectExec(`DELETE FROM jhi_user_authority WHERE authority_name = \$1`).
				WithArgs("ROLE_AUDITOR").
				WillReturnResult(sqlmock.NewResult(0, 3))
			mock.ExpectExec(`DELETE FROM jhi_authority WHERE name = \$1`).
				WithArgs("ROLE_AUDITOR").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			removed, err := repo.Delete(testContext(), "ROLE_AUDITOR")
			require.NoError(t, err)
			assert.Equal(t, tt.want, removed)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAuthorityRepository_Delete_ExecError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewAuthorityRepository(newDBFromSQL(db), logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM jhi_user_authority`).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	removed, err := repo.Delete(testContext(), "ROLE_AUDITOR")
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.False(t, removed)
}
