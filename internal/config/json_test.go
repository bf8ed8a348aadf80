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

	// Durations in JSON are strings parsable by time.ParseDuration (e.g. "30s").
	jsonBody := `{
		"app": {
			"free_quota": 20,
			"billing_delay": "2s",
			"version": "0.3.0"
		},
		"provider": {
			"kind": "fs",
			"root": "/photos",
			"request_timeout": "30s",
			"target_width": 640,
			"target_height": 480
		},
		"storage": {
			"db": { "dsn": "/var/lib/snapsift/snapsift.db" }
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

	assert.Equal(t, 20, cfg.App.FreeQuota)
	assert.Equal(t, 2*time.Second, cfg.App.BillingDelay)
	assert.Equal(t, "0.3.0", cfg.App.Version)

	assert.Equal(t, "fs", cfg.Provider.Kind)
	assert.Equal(t, "/photos", cfg.Provider.Root)
	assert.Equal(t, 30*time.Second, cfg.Provider.RequestTimeout)
	assert.Equal(t, 640, cfg.Provider.TargetWidth)
	assert.Equal(t, 480, cfg.Provider.TargetHeight)

	assert.Equal(t, "/var/lib/snapsift/snapsift.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(p, []byte(`{"workers": {"refresh_interval": 60000000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not-json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}
