// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied before any other source is merged.
const (
	DefaultHTTPAddress        = "https://dreams.jalaljaleh.workers.dev"
	DefaultStorageBackend     = BackendSQLite
	DefaultSQLiteDSN          = "dream-journal.db"
	DefaultRedisPrefix        = "dream-journal:"
	DefaultInitDataEnv        = "TELEGRAM_INIT_DATA"
	DefaultBreakerMaxFailures = 5
	DefaultBreakerOpenTimeout = 30 * time.Second
)

// Storage backend names accepted by STORAGE_BACKEND.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// StructuredConfig is the top-level configuration container for the
// go-dream-journal client. It aggregates all sub-configurations and is
// populated by merging defaults, a .env file, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client behaviour settings: freshness window, identity
	// sources and the log file location.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the durable key-value backend that
	// holds the session and the cached dream lists.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the API base URL and outbound request policy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background refresh.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client-level behaviour settings.
type App struct {
	// FreshnessTTL is how long a view's data stays fresh after a fetch.
	// Zero keeps data fresh until an explicit refresh.
	// Env: APP_FRESHNESS_TTL
	FreshnessTTL time.Duration `env:"FRESHNESS_TTL"`

	// LaunchURL is the address the client was opened with. Its fragment may
	// carry the Telegram identity credential.
	// Env: APP_LAUNCH_URL
	LaunchURL string `env:"LAUNCH_URL"`

	// InitDataEnv names the environment variable through which a hosting
	// runtime injects the raw identity credential.
	// Env: APP_INIT_DATA_ENV
	InitDataEnv string `env:"INIT_DATA_ENV"`

	// LogFile is the path of the rotated client log.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the durable key-value backends.
type Storage struct {
	// Backend is one of "sqlite", "redis" or "memory".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// DB holds the SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Redis holds the Redis settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the SQLite backend.
type DB struct {
	// DSN is the SQLite database file path or URI.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Redis holds connection settings for the Redis backend.
type Redis struct {
	// URL is a redis:// connection URL.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`

	// Prefix is prepended to every key so that several clients can share
	// one Redis database.
	// Env: STORAGE_REDIS_PREFIX
	Prefix string `env:"PREFIX"`
}

// Adapter holds settings of the outbound API transport.
type Adapter struct {
	// HTTPAddress is the API base URL (scheme optional).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request. Zero leaves the
	// transport default in place.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreakerMaxFailures is the number of consecutive failed requests that
	// opens the circuit breaker.
	// Env: ADAPTER_BREAKER_MAX_FAILURES
	BreakerMaxFailures uint32 `env:"BREAKER_MAX_FAILURES"`

	// BreakerOpenTimeout is how long the breaker stays open before letting a
	// trial request through.
	// Env: ADAPTER_BREAKER_OPEN_TIMEOUT
	BreakerOpenTimeout time.Duration `env:"BREAKER_OPEN_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval enables a periodic forced refresh of the dream lists.
	// Zero disables it.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// defaults returns the configuration every other source is merged on top of.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			InitDataEnv: DefaultInitDataEnv,
		},
		Storage: Storage{
			Backend: DefaultStorageBackend,
			DB:      DB{DSN: DefaultSQLiteDSN},
			Redis:   Redis{Prefix: DefaultRedisPrefix},
		},
		Adapter: Adapter{
			HTTPAddress:        DefaultHTTPAddress,
			BreakerMaxFailures: DefaultBreakerMaxFailures,
			BreakerOpenTimeout: DefaultBreakerOpenTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables that are already set)
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
