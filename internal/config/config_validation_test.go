// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/uaa"
	cfg.Server.HTTPAddress = ":8080"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "grpc only", mutate: func(cfg *StructuredConfig) {
			cfg.Server.HTTPAddress = ""
			cfg.Server.GRPCAddress = ":9090"
		}},
		{name: "no sign key", mutate: func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "no token duration", mutate: func(cfg *StructuredConfig) { cfg.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "no dsn", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "oracle" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no transport", mutate: func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "no schedule", mutate: func(cfg *StructuredConfig) { cfg.Workers.UserCleanupSchedule = "" }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadClientConfig(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		cfg, err := loadClientConfig([]string{"-a", "http://uaa:8080", "-token", "jwt", "-uuid", "abc"})
		require.NoError(t, err)
		assert.Equal(t, "http://uaa:8080", cfg.Adapter.HTTPAddress)
		assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
		assert.Equal(t, "jwt", cfg.Auth.Token)
		assert.Equal(t, "abc", cfg.SolutionUUID)
	})

	t.Run("env credentials", func(t *testing.T) {
		t.Setenv("CLIENT_LOGIN", "admin")
		t.Setenv("CLIENT_PASSWORD", "admin")
		t.Setenv("CLIENT_SOLUTION_UUID", "abc")

		cfg, err := loadClientConfig(nil)
		require.NoError(t, err)
		assert.Equal(t, "admin", cfg.Auth.Login)
		assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	})

	t.Run("missing uuid", func(t *testing.T) {
		_, err := loadClientConfig([]string{"-token", "jwt"})
		require.ErrorIs(t, err, ErrInvalidClientConfigs)
	})

	t.Run("missing credentials", func(t *testing.T) {
		_, err := loadClientConfig([]string{"-uuid", "abc", "-login", "admin"})
		require.ErrorIs(t, err, ErrInvalidClientConfigs)
	})
}
