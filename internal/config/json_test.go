package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"freshness_ttl": "1m",
			"launch_url": "https://t.me/app#tgWebAppData=abc",
			"init_data_env": "MY_INIT_DATA",
			"log_file": "/var/log/dreams.log"
		},
		"storage": {
			"backend": "redis",
			"db": { "dsn": "file:dreams.db" },
			"redis": { "url": "redis://localhost:6379/0", "prefix": "dj:" }
		},
		"adapter": {
			"http_address": "https://api.example.com",
			"request_timeout": "10s",
			"breaker_max_failures": 3,
			"breaker_open_timeout": "20s"
		},
		"workers": {
			"refresh_interval": "5m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, time.Minute, cfg.App.FreshnessTTL)
	assert.Equal(t, "https://t.me/app#tgWebAppData=abc", cfg.App.LaunchURL)
	assert.Equal(t, "MY_INIT_DATA", cfg.App.InitDataEnv)
	assert.Equal(t, "/var/log/dreams.log", cfg.App.LogFile)

	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "file:dreams.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Storage.Redis.URL)
	assert.Equal(t, "dj:", cfg.Storage.Redis.Prefix)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, uint32(3), cfg.Adapter.BreakerMaxFailures)
	assert.Equal(t, 20*time.Second, cfg.Adapter.BreakerOpenTimeout)

	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {"freshness_ttl": "forever"}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"refresh_interval": 1000000000}}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.RefreshInterval)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
