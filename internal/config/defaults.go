// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultPollInterval    = 5 * time.Second
	DefaultPollMaxBackoff  = time.Minute
	DefaultTokenDuration   = 24 * time.Hour
	DefaultCleanupSchedule = "@hourly"
	DefaultSessionPath     = "community_share_session.db"
	defaultServerTimeout   = 30 * time.Second
	defaultAdapterTimeout  = 10 * time.Second
	defaultSecretDuration  = 24 * time.Hour
	defaultTokenIssuer     = "community-share"
	defaultAuthRateLimit   = 5
	defaultAuthRateBurst   = 10
	defaultLogLevel        = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    defaultTokenIssuer,
			TokenDuration:  DefaultTokenDuration,
			SecretDuration: defaultSecretDuration,
			LogLevel:       defaultLogLevel,
		},
		Storage: Storage{
			Session: Session{Path: DefaultSessionPath},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  defaultServerTimeout,
			AuthRateLimit:   defaultAuthRateLimit,
			AuthRateBurst:   defaultAuthRateBurst,
			CleanupSchedule: DefaultCleanupSchedule,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			PollInterval:   DefaultPollInterval,
			PollMaxBackoff: DefaultPollMaxBackoff,
		},
	}
}
