// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a api base url (e.g. https://dreams.example.com)
//	-request-timeout outbound request timeout (e.g. "10s")
//	-storage storage backend: sqlite, redis or memory
//	-d sqlite database DSN
//	-redis-url redis connection url
//	-freshness-ttl view freshness window (e.g. "1m"); 0 keeps data until refresh
//	-launch-url url the client was launched with (its fragment may carry initData)
//	-refresh-interval periodic forced refresh interval; 0 disables it
//	-log-file client log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		httpAddress     string
		requestTimeout  time.Duration
		backend         string
		databaseDSN     string
		redisURL        string
		freshnessTTL    time.Duration
		launchURL       string
		refreshInterval time.Duration
		logFile         string
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("dream-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&httpAddress, "a", "", "API base url")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&backend, "storage", "", "Storage backend: sqlite, redis or memory")
	fs.StringVar(&databaseDSN, "d", "", "SQLite database DSN")
	fs.StringVar(&redisURL, "redis-url", "", "Redis connection url")
	fs.DurationVar(&freshnessTTL, "freshness-ttl", 0, "View freshness window (e.g., 1m)")
	fs.StringVar(&launchURL, "launch-url", "", "Launch url carrying identity data in its fragment")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Periodic refresh interval (e.g., 5m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			FreshnessTTL: freshnessTTL,
			LaunchURL:    launchURL,
			LogFile:      logFile,
		},
		Storage: Storage{
			Backend: backend,
			DB:      DB{DSN: databaseDSN},
			Redis:   Redis{URL: redisURL},
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}
