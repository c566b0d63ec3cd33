// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is
// populated by merging environment variables, command-line flags and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds the remote database and the local preference store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the dashboard HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the optional PostgREST endpoint used for queries.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the change listener and subscription retry settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// Version is reported by the version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the driver app writes its log. Terminal programs must
	// not log to stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the persistence backends.
type Storage struct {
	// DB is the hosted PostgreSQL database holding notifications and tasks.
	DB DB `envPrefix:"DB_"`

	// Local is the on-device SQLite store for driver preferences.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the hosted PostgreSQL database.
type DB struct {
	// DSN is the PostgreSQL connection string. When empty the notification
	// sync is silently disabled.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds settings of the local preference store.
type Local struct {
	// Path is the SQLite database file.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the dashboard HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds non-streaming requests.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the CORS allow list of the dashboard API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds settings of the hosted PostgREST endpoint. When RESTURL is
// empty, queries go straight to PostgreSQL.
type Adapter struct {
	// RESTURL is the PostgREST base URL (e.g. "https://db.example.com/rest/v1").
	// Env: ADAPTER_REST_URL
	RESTURL string `env:"REST_URL"`

	// JWTSecret signs the role token presented to PostgREST.
	// Env: ADAPTER_JWT_SECRET
	JWTSecret string `env:"JWT_SECRET"`

	// Role is the database role claimed by the token (e.g. "anon").
	// Env: ADAPTER_ROLE
	Role string `env:"ROLE"`

	// RequestTimeout bounds a single PostgREST request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds settings of the background change listener and of the
// subscription retry policy.
type Workers struct {
	// ListenChannel is the PostgreSQL NOTIFY channel the trigger publishes on.
	// Env: WORKERS_LISTEN_CHANNEL
	ListenChannel string `env:"LISTEN_CHANNEL"`

	// RetryInitialInterval is the first backoff delay.
	// Env: WORKERS_RETRY_INITIAL_INTERVAL
	RetryInitialInterval time.Duration `env:"RETRY_INITIAL_INTERVAL"`

	// RetryMaxInterval caps the backoff delay.
	// Env: WORKERS_RETRY_MAX_INTERVAL
	RetryMaxInterval time.Duration `env:"RETRY_MAX_INTERVAL"`
}

// GetStructuredConfig loads, merges and validates the configuration from all
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are applied to fields no source has set.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
