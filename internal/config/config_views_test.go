// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "sign"
	cfg.App.HashKey = "hash"
	cfg.Storage.DB.DSN = "postgres://localhost/cs"
	return cfg
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing hash key", mutate: func(c *StructuredConfig) { c.App.HashKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "zero rate", mutate: func(c *StructuredConfig) { c.Server.AuthRateLimit = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "bad cron", mutate: func(c *StructuredConfig) { c.Server.CleanupSchedule = "every hour" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := NewServerConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*StructuredConfig) {}},
		{name: "in-memory session", mutate: func(c *StructuredConfig) { c.Storage.Session.Path = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no server address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero poll interval", mutate: func(c *StructuredConfig) { c.Workers.PollInterval = 0 }, wantErr: ErrInvalidWorkerConfigs},
		{name: "backoff below interval", mutate: func(c *StructuredConfig) { c.Workers.PollMaxBackoff = time.Second }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)

			err := NewClientConfig(cfg).validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.Adapter.HTTPAddress = "http://cs.example:9000"
	cfg.App.LogLevel = "warn"

	got := NewClientConfig(cfg)

	assert.Equal(t, "http://cs.example:9000", got.Adapter.HTTPAddress)
	assert.Equal(t, "warn", got.App.LogLevel)
	assert.Equal(t, DefaultSessionPath, got.Storage.Path)
	assert.Equal(t, DefaultPollInterval, got.Workers.PollInterval)
	assert.Equal(t, DefaultPollMaxBackoff, got.Workers.PollMaxBackoff)
}
