// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client behaviour settings derived from the shared
// structured config.
type ClientApp struct {
	// FreshnessTTL is the per-view freshness window; zero never expires.
	FreshnessTTL time.Duration
	// LaunchURL is the address whose fragment may carry identity data.
	LaunchURL string
	// InitDataEnv names the env var with the runtime-injected credential.
	InitDataEnv string
	// LogFile is the rotated log file path.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the API base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// BreakerMaxFailures opens the circuit after that many consecutive failures.
	BreakerMaxFailures uint32
	// BreakerOpenTimeout is the open-state duration of the breaker.
	BreakerOpenTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientRedis contains Redis connection settings for the client.
type ClientRedis struct {
	URL    string
	Prefix string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// Backend selects the key-value implementation.
	Backend string
	// DB holds local database settings.
	DB ClientDB
	// Redis holds Redis settings.
	Redis ClientRedis
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the refresh job forces a reload.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains client behaviour settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			FreshnessTTL: cfg.App.FreshnessTTL,
			LaunchURL:    cfg.App.LaunchURL,
			InitDataEnv:  cfg.App.InitDataEnv,
			LogFile:      cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:        cfg.Adapter.HTTPAddress,
			RequestTimeout:     cfg.Adapter.RequestTimeout,
			BreakerMaxFailures: cfg.Adapter.BreakerMaxFailures,
			BreakerOpenTimeout: cfg.Adapter.BreakerOpenTimeout,
		},
		Storage: ClientStorage{
			Backend: cfg.Storage.Backend,
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			Redis: ClientRedis{
				URL:    cfg.Storage.Redis.URL,
				Prefix: cfg.Storage.Redis.Prefix,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
