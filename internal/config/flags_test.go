package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseFlags tests the ParseFlags function with various flag combinations
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "api address and timeout",
			args: []string{"-a", "https://api.example.com", "-request-timeout", "5s"},
			expected: &StructuredConfig{
				Adapter: Adapter{HTTPAddress: "https://api.example.com", RequestTimeout: 5 * time.Second},
			},
		},
		{
			name: "sqlite storage",
			args: []string{"-storage", "sqlite", "-d", "file:dreams.db"},
			expected: &StructuredConfig{
				Storage: Storage{Backend: BackendSQLite, DB: DB{DSN: "file:dreams.db"}},
			},
		},
		{
			name: "redis storage",
			args: []string{"-storage", "redis", "-redis-url", "redis://localhost:6379/0"},
			expected: &StructuredConfig{
				Storage: Storage{Backend: BackendRedis, Redis: Redis{URL: "redis://localhost:6379/0"}},
			},
		},
		{
			name: "app settings",
			args: []string{
				"-freshness-ttl", "1m",
				"-launch-url", "https://t.me/app#initData=abc",
				"-log-file", "/tmp/client.log",
			},
			expected: &StructuredConfig{
				App: App{
					FreshnessTTL: time.Minute,
					LaunchURL:    "https://t.me/app#initData=abc",
					LogFile:      "/tmp/client.log",
				},
			},
		},
		{
			name: "refresh interval",
			args: []string{"-refresh-interval", "5m"},
			expected: &StructuredConfig{
				Workers: Workers{RefreshInterval: 5 * time.Minute},
			},
		},
		{
			name:     "short config flag",
			args:     []string{"-c", "/etc/dreams.json"},
			expected: &StructuredConfig{JSONFilePath: "/etc/dreams.json"},
		},
		{
			name:     "long config flag",
			args:     []string{"-config", "/etc/dreams.json"},
			expected: &StructuredConfig{JSONFilePath: "/etc/dreams.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg)
		})
	}
}

// TestParseFlags_Errors verifies that malformed input is reported instead of
// exiting the process.
func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"-x"}},
		{"invalid duration", []string{"-freshness-ttl", "soon"}},
		{"missing value", []string{"-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			assert.Nil(t, cfg)
			assert.Error(t, err)
		})
	}
}
