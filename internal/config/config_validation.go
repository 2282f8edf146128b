// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only source-independent rules live here; client-specific rules are checked
// by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.FreshnessTTL < 0 || cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidDurationConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Adapter.BreakerOpenTimeout < 0 {
		return ErrInvalidDurationConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendSQLite:
		if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendRedis:
		if strings.TrimSpace(cfg.Storage.Redis.URL) == "" {
			return ErrInvalidStorageConfigs
		}
	case BackendMemory:
	default:
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" || cfg.Adapter.BreakerMaxFailures == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.FreshnessTTL < 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
