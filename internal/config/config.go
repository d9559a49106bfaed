// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by the server and the
// client. Each binary takes its own validated view of it via
// [GetServerConfig] or [GetClientConfig].
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file.
	// Env: CONFIG. Flags: -c, -config.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional .env file loaded into the process
	// environment before env parsing.
	// Env: DOTENV. Flag: -env-file.
	DotEnvPath string `env:"DOTENV"`
}

// App holds secrets and token lifetimes.
type App struct {
	// TokenSignKey signs API keys.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued API keys.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an API key stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SecretDuration is how long a password reset or email confirmation
	// key stays valid.
	// Env: APP_SECRET_DURATION
	SecretDuration time.Duration `env:"SECRET_DURATION"`

	// HashKey is the HMAC key applied to reset and confirmation keys
	// before they are stored.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by GET /api/version when no build version was
	// linked in.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

type Storage struct {
	DB      DB      `envPrefix:"DB_"`
	Session Session `envPrefix:"SESSION_"`
}

// DB is the server's PostgreSQL connection.
type DB struct {
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session is the client's local SQLite file holding the signed-in session.
type Session struct {
	// Env: STORAGE_SESSION_PATH
	Path string `env:"PATH"`
}

// Server holds the HTTP listener and the auth endpoint limits.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AuthRateLimit is the per-IP request rate allowed on signup, api key
	// and password reset endpoints, in requests per second.
	// Env: SERVER_AUTH_RATE_LIMIT
	AuthRateLimit float64 `env:"AUTH_RATE_LIMIT"`

	// Env: SERVER_AUTH_RATE_BURST
	AuthRateBurst int `env:"AUTH_RATE_BURST"`

	// CleanupSchedule is the cron expression of the expired secrets purge.
	// Env: SERVER_CLEANUP_SCHEDULE
	CleanupSchedule string `env:"CLEANUP_SCHEDULE"`
}

// Adapter is the client's view of the server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers configures the conversation feed poller.
type Workers struct {
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// PollMaxBackoff caps the retry delay after failed polls.
	// Env: WORKERS_POLL_MAX_BACKOFF
	PollMaxBackoff time.Duration `env:"POLL_MAX_BACKOFF"`
}

// GetStructuredConfig loads the configuration from all sources. A field is
// taken from the first source that sets it:
//  1. environment variables (after loading the optional .env file)
//  2. command-line flags
//  3. JSON file
//  4. built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
