package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/metrics"
	"github.com/MKhiriev/go-uaa/internal/mock"
	"github.com/MKhiriev/go-uaa/internal/service"
	"github.com/MKhiriev/go-uaa/models"
)

const (
	adminToken = "admin-token"
	userToken  = "user-token"
)

type serviceMocks struct {
	users     *mock.MockUserService
	auth      *mock.MockAuthService
	solutions *mock.MockSolutionService
	composite *mock.MockCompositeSolutionService
	appInfo   *mock.MockAppInfoService
}

// newTestHandler builds a Handler over gomock services. adminToken and
// userToken are accepted by the auth middleware, anything else is rejected.
func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		users:     mock.NewMockUserService(ctrl),
		auth:      mock.NewMockAuthService(ctrl),
		solutions: mock.NewMockSolutionService(ctrl),
		composite: mock.NewMockCompositeSolutionService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}

	m.auth.EXPECT().ParseToken(gomock.Any(), adminToken).Return(models.Token{
		Login:       "admin",
		Authorities: []string{models.RoleAdmin, models.RoleUser},
	}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), userToken).Return(models.Token{
		Login:       "user",
		Authorities: []string{models.RoleUser},
	}, nil).AnyTimes()
	m.auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid).AnyTimes()

	h := &Handler{
		services: &service.Services{
			UserService:              m.users,
			AuthService:              m.auth,
			SolutionService:          m.solutions,
			CompositeSolutionService: m.composite,
			AppInfoService:           m.appInfo,
		},
		metrics:        metrics.NewMetrics(),
		appName:        "uaaApp",
		requestTimeout: 5 * time.Second,
		logger:         logger.Nop(),
	}
	return h, m
}

func newRequest(method, target, body, token string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.Init().ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	services := &service.Services{}
	m := metrics.NewMetrics()
	cfg := config.StructuredConfig{
		App:    config.App{Name: "uaaApp"},
		Server: config.Server{RequestTimeout: 3 * time.Second},
	}

	h := NewHandler(services, m, cfg, logger.Nop())

	assert.Same(t, services, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, "uaaApp", h.appName)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}
