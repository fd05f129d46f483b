// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(placeholderFormat(config.DriverPostgres))
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(placeholderFormat(config.DriverSQLite))
)

func Test_buildFindUserQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: pgBuilder, placeholder: "$1"},
		{name: "sqlite", builder: sqliteBuilder, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindUserQuery(tt.builder, findUserByLoginCondition("admin"))
			require.NoError(t, err)

			assert.Contains(t, query, "FROM jhi_user")
			assert.Contains(t, query, "login = "+tt.placeholder)
			assert.Contains(t, query, "LIMIT 1")
			assert.Equal(t, []any{"admin"}, args)
		})
	}
}

func Test_buildFindUserQuery_SelectsAllColumns(t *testing.T) {
	query, _, err := buildFindUserQuery(pgBuilder, findUserByIDCondition(1))
	require.NoError(t, err)

	for _, c := range userColumns {
		assert.Contains(t, query, c)
	}
}

func Test_findUserByEmailCondition_IgnoresCase(t *testing.T) {
	query, args, err := buildFindUserQuery(pgBuilder, findUserByEmailCondition("Admin@Localhost"))
	require.NoError(t, err)

	assert.Contains(t, query, "LOWER(email) = LOWER($1)")
	assert.Equal(t, []any{"Admin@Localhost"}, args)
}

func Test_buildListUsersQuery(t *testing.T) {
	pageable := models.Pageable{
		Page: 2,
		Size: 10,
		Sort: []models.Sort{
			{Property: "login", Ascending: false},
			{Property: "password_hash", Ascending: true},
		},
	}

	query, args, err := buildListUsersQuery(pgBuilder, pageable, models.AnonymousLogin)
	require.NoError(t, err)

	assert.Contains(t, query, "login <> $1")
	assert.Contains(t, query, "ORDER BY login DESC, id ASC")
	assert.Contains(t, query, "LIMIT 10 OFFSET 20")
	assert.NotContains(t, strings.SplitN(query, "ORDER BY", 2)[1], "password_hash")
	assert.Equal(t, []any{models.AnonymousLogin}, args)
}

func Test_orderBy(t *testing.T) {
	tests := []struct {
		name  string
		sorts []models.Sort
		want  []string
	}{
		{name: "default", sorts: nil, want: []string{"id ASC"}},
		{name: "id given", sorts: []models.Sort{{Property: "id"}}, want: []string{"id DESC"}},
		{name: "json name mapped", sorts: []models.Sort{{Property: "createdDate", Ascending: true}}, want: []string{"created_date ASC", "id ASC"}},
		{name: "unknown dropped", sorts: []models.Sort{{Property: "1; DROP TABLE jhi_user"}}, want: []string{"id ASC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderBy(tt.sorts, userSortColumns))
		})
	}
}

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Login: "john", PasswordHash: "hash", Email: "john@localhost", CreatedBy: "admin", CreatedDate: time.Now()}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO jhi_user"))
	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
	assert.NotContains(t, query, "(id,")
	assert.Len(t, args, len(userColumns)-1)
}

func Test_buildInsertUserAuthoritiesQuery(t *testing.T) {
	query, args, err := buildInsertUserAuthoritiesQuery(pgBuilder, 7, []string{models.RoleAdmin, models.RoleUser})
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO jhi_user_authority (user_id,authority_name) VALUES ($1,$2),($3,$4)", query)
	assert.Equal(t, []any{int64(7), models.RoleAdmin, int64(7), models.RoleUser}, args)
}

func Test_buildUserAuthoritiesQuery_UsesIn(t *testing.T) {
	query, args, err := buildUserAuthoritiesQuery(pgBuilder, []int64{1, 2, 3})
	require.NoError(t, err)

	// squirrel generates IN ($1,$2,$3) for a slice.
	assert.Contains(t, query, "user_id IN ($1,$2,$3)")
	assert.Len(t, args, 3)
}

func Test_buildDeleteUserLinksByLoginQuery(t *testing.T) {
	query, args, err := buildDeleteUserLinksByLoginQuery(pgBuilder, "john")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM jhi_user_authority WHERE user_id IN (SELECT id FROM jhi_user WHERE login = $1)", query)
	assert.Equal(t, []any{"john"}, args)
}

func Test_buildInsertAuthorityQuery_IsIdempotent(t *testing.T) {
	query, _, err := buildInsertAuthorityQuery(sqliteBuilder, "ROLE_AUDITOR")
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO jhi_authority (name) VALUES (?) ON CONFLICT (name) DO NOTHING", query)
}

func Test_buildUpdateSolutionQuery_KeepsCreatedDate(t *testing.T) {
	id := int64(5)
	query, args, err := buildUpdateSolutionQuery(pgBuilder, models.Solution{ID: &id, UUID: "u"})
	require.NoError(t, err)

	assert.NotContains(t, query, "created_date")
	assert.Contains(t, query, "WHERE id = $")
	assert.Equal(t, id, args[len(args)-1])
}

func Test_buildUpdateCompositeSolutionQuery(t *testing.T) {
	now := time.Now()
	update := models.CompositeSolutionUpdate{UUID: "u-1", Name: "n", Version: "v", Summary: "s"}

	query, args, err := buildUpdateCompositeSolutionQuery(pgBuilder, update, now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE solution SET name = $1, version = $2, summary = $3, modified_date = $4 WHERE uuid = $5", query)
	assert.Equal(t, []any{"n", "v", "s", now, "u-1"}, args)
}

func Test_buildListSolutionsQuery_Filter(t *testing.T) {
	query, args, err := buildListSolutionsQuery(pgBuilder, models.SolutionFilter{AuthorLogin: "admin"}, models.Pageable{Size: 20})
	require.NoError(t, err)
	assert.Contains(t, query, "author_login = $1")
	assert.Equal(t, []any{"admin"}, args)

	query, args, err = buildListSolutionsQuery(pgBuilder, models.SolutionFilter{}, models.Pageable{Size: 20})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}
