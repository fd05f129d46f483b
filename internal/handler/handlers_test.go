package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-uaa/internal/config"
	"github.com/MKhiriev/go-uaa/internal/logger"
	"github.com/MKhiriev/go-uaa/internal/metrics"
	"github.com/MKhiriev/go-uaa/internal/mock"
	"github.com/MKhiriev/go-uaa/internal/service"
)

func TestNewHandlers_TableTest(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantHTTP bool
		wantGRPC bool
		wantErr  error
	}{
		{name: "both transports", server: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantHTTP: true, wantGRPC: true},
		{name: "http only", server: config.Server{HTTPAddress: ":8080"}, wantHTTP: true},
		{name: "grpc only", server: config.Server{GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "nothing enabled", server: config.Server{}, wantErr: errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := mock.NewMockHealthChecker(gomock.NewController(t))
			cfg := config.StructuredConfig{Server: tt.server}

			h, err := NewHandlers(&service.Services{}, checker, metrics.NewMetrics(), cfg, logger.Nop())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
