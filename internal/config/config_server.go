// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerApp holds the secrets and lifetimes used by the auth service.
type ServerApp struct {
	TokenSignKey   string
	TokenIssuer    string
	TokenDuration  time.Duration
	SecretDuration time.Duration
	HashKey        string
	LogLevel       string
	Version        string
}

// ServerStorage is the PostgreSQL connection.
type ServerStorage struct {
	DSN string
}

// ServerHTTP holds the listener and auth endpoint limits.
type ServerHTTP struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	AuthRateLimit   float64
	AuthRateBurst   int
	CleanupSchedule string
}

// ServerConfig is the server's validated view of [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage ServerStorage
	Server  ServerHTTP
}

// GetServerConfig loads the structured config and maps the server fields.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps cfg to the server view without validating it.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:   cfg.App.TokenSignKey,
			TokenIssuer:    cfg.App.TokenIssuer,
			TokenDuration:  cfg.App.TokenDuration,
			SecretDuration: cfg.App.SecretDuration,
			HashKey:        cfg.App.HashKey,
			LogLevel:       cfg.App.LogLevel,
			Version:        cfg.App.Version,
		},
		Storage: ServerStorage{DSN: cfg.Storage.DB.DSN},
		Server: ServerHTTP{
			HTTPAddress:     cfg.Server.HTTPAddress,
			RequestTimeout:  cfg.Server.RequestTimeout,
			AuthRateLimit:   cfg.Server.AuthRateLimit,
			AuthRateBurst:   cfg.Server.AuthRateBurst,
			CleanupSchedule: cfg.Server.CleanupSchedule,
		},
	}
}
