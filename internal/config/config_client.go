// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client's logging settings.
type ClientApp struct {
	LogLevel string
}

// ClientAdapter holds the server endpoint used by the client transport.
type ClientAdapter struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// ClientStorage is the local session file.
type ClientStorage struct {
	Path string
}

// ClientWorkers configures the conversation feed.
type ClientWorkers struct {
	PollInterval   time.Duration
	PollMaxBackoff time.Duration
}

// ClientConfig is the client's validated view of [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig loads the structured config and maps the client fields.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg to the client view without validating it.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{LogLevel: cfg.App.LogLevel},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{Path: cfg.Storage.Session.Path},
		Workers: ClientWorkers{
			PollInterval:   cfg.Workers.PollInterval,
			PollMaxBackoff: cfg.Workers.PollMaxBackoff,
		},
	}
}
