package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-uaa/internal/service"
	"github.com/MKhiriev/go-uaa/internal/store"
	"github.com/MKhiriev/go-uaa/internal/utils"
	"github.com/MKhiriev/go-uaa/models"
)

func decodeProblem(t *testing.T, body []byte) models.Problem {
	t.Helper()
	var p models.Problem
	require.NoError(t, json.Unmarshal(body, &p))
	return p
}

func TestCreateUser_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		serviceErr   error
		callsService bool
		wantStatus   int
		wantErrorKey string
	}{
		{
			name:         "created",
			body:         `{"login":"john","email":"john@example.com"}`,
			callsService: true,
			wantStatus:   http.StatusCreated,
		},
		{
			name:         "pre-set id",
			body:         `{"id":5,"login":"john","email":"john@example.com"}`,
			serviceErr:   service.ErrIDExists,
			callsService: true,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "idexists",
		},
		{
			name:         "login already used",
			body:         `{"login":"John","email":"john@example.com"}`,
			serviceErr:   service.ErrLoginAlreadyUsed,
			callsService: true,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "login-already-used",
		},
		{
			name:         "email already used",
			body:         `{"login":"john","email":"taken@example.com"}`,
			serviceErr:   service.ErrEmailAlreadyUsed,
			callsService: true,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "email-already-used",
		},
		{
			name:         "phone already used",
			body:         `{"login":"john","email":"john@example.com","phone":"123"}`,
			serviceErr:   store.ErrPhoneAlreadyExists,
			callsService: true,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "phone-already-used",
		},
		{
			name:         "invalid input",
			body:         `{"login":"bad login","email":"john@example.com"}`,
			serviceErr:   service.ErrInvalidDataProvided,
			callsService: true,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "validation",
		},
		{
			name:         "malformed JSON",
			body:         `{"login":`,
			wantStatus:   http.StatusBadRequest,
			wantErrorKey: "http.400",
		},
		{
			name:         "storage failure",
			body:         `{"login":"john","email":"john@example.com"}`,
			serviceErr:   store.ErrExecutingQuery,
			callsService: true,
			wantStatus:   http.StatusInternalServerError,
			wantErrorKey: "http.500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)

			if tt.callsService {
				m.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, dto models.UserDTO) (models.User, error) {
						token, ok := utils.GetTokenFromContext(ctx)
						require.True(t, ok)
						assert.Equal(t, "admin", token.Login)
						if tt.serviceErr != nil {
							return models.User{}, tt.serviceErr
						}
						return models.User{ID: 10, Login: dto.NormalizedLogin(), Email: dto.NormalizedEmail()}, nil
					})
			}

			rr := serve(h, newRequest(http.MethodPost, "/api/users", tt.body, adminToken))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErrorKey == "" {
				assert.Equal(t, "/api/users/john", rr.Header().Get("Location"))
				assert.Equal(t, "A user is created with identifier john", rr.Header().Get("X-uaaApp-alert"))
				assert.Equal(t, "john", rr.Header().Get("X-uaaApp-params"))

				var dto models.UserDTO
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dto))
				assert.Equal(t, "john", dto.Login)
				require.NotNil(t, dto.ID)
				assert.Equal(t, int64(10), *dto.ID)
				assert.NotContains(t, rr.Body.String(), "password")
				return
			}

			assert.Equal(t, utils.ProblemContentType, rr.Header().Get("Content-Type"))
			assert.Equal(t, "error."+tt.wantErrorKey, rr.Header().Get("X-uaaApp-error"))
			assert.Equal(t, "userManagement", rr.Header().Get("X-uaaApp-params"))

			p := decodeProblem(t, rr.Body.Bytes())
			assert.Equal(t, tt.wantStatus, p.Status)
			assert.Equal(t, tt.wantErrorKey, p.ErrorKey)
			assert.Equal(t, "userManagement", p.EntityName)
		})
	}
}

func TestAdminRoutes_RejectNonAdmins(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{"create without token", http.MethodPost, "/api/users", "", http.StatusUnauthorized},
		{"create with invalid token", http.MethodPost, "/api/users", "garbage", http.StatusUnauthorized},
		{"create as user", http.MethodPost, "/api/users", userToken, http.StatusForbidden},
		{"update as user", http.MethodPut, "/api/users", userToken, http.StatusForbidden},
		{"list as user", http.MethodGet, "/api/users", userToken, http.StatusForbidden},
		{"delete as user", http.MethodDelete, "/api/users/john", userToken, http.StatusForbidden},
		{"authorities as user", http.MethodGet, "/api/users/authorities", userToken, http.StatusForbidden},
		{"create authority anonymously", http.MethodPost, "/api/users/authorities/ROLE_X", "", http.StatusUnauthorized},
		{"delete authority as user", http.MethodDelete, "/api/users/authorities/ROLE_X", userToken, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rr := serve(h, newRequest(tt.method, tt.target, `{}`, tt.token))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestUpdateUser(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, dto models.UserDTO) (models.User, error) {
				require.NotNil(t, dto.ID)
				assert.Equal(t, int64(3), *dto.ID)
				return models.User{ID: 3, Login: "jane", FirstName: "Jane"}, nil
			})

		rr := serve(h, newRequest(http.MethodPut, "/api/users", `{"id":3,"login":"jane","firstName":"Jane"}`, adminToken))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "A user is updated with identifier jane", rr.Header().Get("X-uaaApp-alert"))
		assert.Contains(t, rr.Body.String(), `"firstName":"Jane"`)
	})

	t.Run("unknown id", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)

		rr := serve(h, newRequest(http.MethodPut, "/api/users", `{"id":99,"login":"ghost"}`, adminToken))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("email taken by another account", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrEmailAlreadyUsed)

		rr := serve(h, newRequest(http.MethodPut, "/api/users", `{"id":3,"login":"jane"}`, adminToken))

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "email-already-used", decodeProblem(t, rr.Body.Bytes()).ErrorKey)
	})
}

func TestGetUser_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		login      string
		serviceErr error
		wantStatus int
		wantCaller string
	}{
		{name: "own account", token: userToken, login: "user", wantStatus: http.StatusOK, wantCaller: "user"},
		{name: "admin reads anyone", token: adminToken, login: "john", wantStatus: http.StatusOK, wantCaller: "admin"},
		{name: "other caller", token: userToken, login: "john", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden, wantCaller: "user"},
		{name: "anonymous caller", login: "john", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "invalid token is treated as anonymous", token: "garbage", login: "john", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "unknown login", token: adminToken, login: "ghost", serviceErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCaller: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.users.EXPECT().GetUser(gomock.Any(), tt.login).
				DoAndReturn(func(ctx context.Context, login string) (models.User, error) {
					token, ok := utils.GetTokenFromContext(ctx)
					if tt.wantCaller == "" {
						assert.False(t, ok)
					} else {
						require.True(t, ok)
						assert.Equal(t, tt.wantCaller, token.Login)
					}
					if tt.serviceErr != nil {
						return models.User{}, tt.serviceErr
					}
					return models.User{ID: 1, Login: login, PasswordHash: "secret-hash"}, nil
				})

			rr := serve(h, newRequest(http.MethodGet, "/api/users/"+tt.login, "", tt.token))

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.NotContains(t, rr.Body.String(), "secret-hash")
		})
	}
}

func TestListUsers(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().ListUsers(gomock.Any(), models.Pageable{
		Page: 1,
		Size: 2,
		Sort: []models.Sort{{Property: "login", Ascending: true}},
	}).Return(models.Page[models.User]{
		Content:       []models.User{{ID: 3, Login: "c"}, {ID: 4, Login: "d"}},
		Number:        1,
		Size:          2,
		TotalElements: 5,
	}, nil)

	rr := serve(h, newRequest(http.MethodGet, "/api/users?page=1&size=2&sort=login,asc", "", adminToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "5", rr.Header().Get("X-Total-Count"))
	assert.Equal(t,
		`</api/users?page=2&size=2>; rel="next",`+
			`</api/users?page=0&size=2>; rel="prev",`+
			`</api/users?page=2&size=2>; rel="last",`+
			`</api/users?page=0&size=2>; rel="first"`,
		rr.Header().Get("Link"))

	var dtos []models.UserDTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dtos))
	require.Len(t, dtos, 2)
	assert.Equal(t, "c", dtos[0].Login)
}

func TestListUsers_InvalidPagination(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, query := range []string{"page=-1", "page=9223372036854775807"} {
		rr := serve(h, newRequest(http.MethodGet, "/api/users?"+query, "", adminToken))

		assert.Equal(t, http.StatusBadRequest, rr.Code, query)
	}
}

func TestDeleteUser(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().DeleteUser(gomock.Any(), "john").Return(nil)

	rr := serve(h, newRequest(http.MethodDelete, "/api/users/john", "", adminToken))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "A user is deleted with identifier john", rr.Header().Get("X-uaaApp-alert"))
	assert.Equal(t, "john", rr.Header().Get("X-uaaApp-params"))
	assert.Empty(t, rr.Body.String())
}

func TestAuthorities(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().GetAuthorities(gomock.Any()).
			Return([]string{models.RoleAdmin, models.RoleAnonymous, models.RoleUser}, nil)

		rr := serve(h, newRequest(http.MethodGet, "/api/users/authorities", "", adminToken))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `["ROLE_ADMIN","ROLE_ANONYMOUS","ROLE_USER"]`, rr.Body.String())
	})

	t.Run("create", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().CreateAuthority(gomock.Any(), "ROLE_EDITOR").Return(nil)

		rr := serve(h, newRequest(http.MethodPost, "/api/users/authorities/ROLE_EDITOR", "", adminToken))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("create invalid", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().CreateAuthority(gomock.Any(), "bad!").Return(service.ErrInvalidDataProvided)

		rr := serve(h, newRequest(http.MethodPost, "/api/users/authorities/bad!", "", adminToken))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("delete existing", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().DeleteAuthority(gomock.Any(), "ROLE_EDITOR").Return(true, nil)

		rr := serve(h, newRequest(http.MethodDelete, "/api/users/authorities/ROLE_EDITOR", "", adminToken))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("delete missing is a bare 400", func(t *testing.T) {
		h, m := newTestHandler(t)
		m.users.EXPECT().DeleteAuthority(gomock.Any(), "ROLE_NOPE").Return(false, nil)

		rr := serve(h, newRequest(http.MethodDelete, "/api/users/authorities/ROLE_NOPE", "", adminToken))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestExistenceProbes_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(m *serviceMocks)
		wantBody string
	}{
		{
			name:   "login exists",
			target: "/api/users/exist/login/john",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().ExistsByLogin(gomock.Any(), "john").Return(true, nil)
			},
			wantBody: "1",
		},
		{
			name:   "email missing",
			target: "/api/users/exist/email/nobody@example.com",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().ExistsByEmail(gomock.Any(), "nobody@example.com").Return(false, nil)
			},
			wantBody: "0",
		},
		{
			name:   "phone exists",
			target: "/api/users/exist/phone/555-0100",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().ExistsByPhone(gomock.Any(), "555-0100").Return(true, nil)
			},
			wantBody: "1",
		},
		{
			name:   "lookup failure reads as missing",
			target: "/api/users/exist/login/john",
			setup: func(m *serviceMocks) {
				m.users.EXPECT().ExistsByLogin(gomock.Any(), "john").Return(false, errors.New("db down"))
			},
			wantBody: "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			rr := serve(h, newRequest(http.MethodGet, tt.target, "", ""))

			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}
