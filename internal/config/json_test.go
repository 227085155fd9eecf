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

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_duration": "1h",
			"session_id": "tab-3",
			"key_file": "/keys/b.key",
			"search_k": 4
		},
		"server": {
			"http_address": "localhost:8000",
			"request_timeout": "30s"
		},
		"adapter": {
			"http_address": "https://store.example",
			"request_timeout": 5000000000
		},
		"storage": {
			"session": { "driver": "bolt", "dsn": "/tmp/s.bolt" },
			"files": { "blob_dir": "/var/blobs", "audit_log": "/var/audit.log" }
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "tab-3", cfg.App.SessionID)
	assert.Equal(t, "/keys/b.key", cfg.App.KeyFile)
	assert.Equal(t, 4, cfg.App.SearchK)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://store.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "bolt", cfg.Storage.Session.Driver)
	assert.Equal(t, "/tmp/s.bolt", cfg.Storage.Session.DSN)
	assert.Equal(t, "/var/blobs", cfg.Storage.Files.BlobDir)
	assert.Equal(t, "/var/audit.log", cfg.Storage.Files.AuditLog)

	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":"forever"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

func TestDuration_UnmarshalJSON_RejectsBool(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}
