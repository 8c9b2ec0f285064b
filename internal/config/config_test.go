// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("STORAGE_DATA_DIR", "/var/lib/calendar")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("WORKERS_SNAPSHOT_INTERVAL", "1h")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "/var/lib/calendar", cfg.Storage.DataDir)
	assert.Equal(t, ":9090", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Hour, cfg.Workers.SnapshotInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "soon")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	raw := `{
  "app": {"token_sign_key": "json-secret", "token_issuer": "calendar-test", "token_duration": "48h"},
  "storage": {"data_dir": "data", "backup_dir": "backups"},
  "server": {"http_address": ":7070", "request_timeout": "15s"},
  "workers": {"snapshot_interval": "30m"}
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "calendar-test", cfg.App.TokenIssuer)
	assert.Equal(t, 48*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "data", cfg.Storage.DataDir)
	assert.Equal(t, ":7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.Workers.SnapshotInterval)
}

func TestParseJSON_Missing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	t.Run("string form", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
		assert.Equal(t, 90*time.Second, time.Duration(d))
	})

	t.Run("numeric nanoseconds", func(t *testing.T) {
		var d Duration
		require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
		assert.Equal(t, time.Second, time.Duration(d))
	})

	t.Run("invalid string", func(t *testing.T) {
		var d Duration
		require.Error(t, json.Unmarshal([]byte(`"forever"`), &d))
	})
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.App.TokenSignKey = "secret"
		return cfg
	}

	t.Run("defaults plus sign key pass", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("missing sign key fails", func(t *testing.T) {
		cfg := defaultConfig()
		require.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("zero token duration fails", func(t *testing.T) {
		cfg := valid()
		cfg.App.TokenDuration = 0
		require.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("empty data dir fails", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DataDir = ""
		require.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("snapshot worker without backup dir fails", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.SnapshotInterval = time.Hour
		cfg.Storage.BackupDir = ""
		require.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})

	t.Run("empty server address fails", func(t *testing.T) {
		cfg := valid()
		cfg.Server.HTTPAddress = ""
		require.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})
}
