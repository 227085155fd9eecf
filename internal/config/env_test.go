// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY": "jwt_secret",
		"APP_TOKEN_DURATION": "2h",
		"APP_SESSION_ID":     "tab-7",
		"APP_KEY_FILE":       "/keys/a.key",
		"APP_SEARCH_K":       "8",

		"SERVER_ADDRESS":         "localhost:8000",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"ADAPTER_ADDRESS":         "https://store.example",
		"ADAPTER_REQUEST_TIMEOUT": "10s",

		// Storage has nested prefixes: STORAGE_ + SESSION_ / FILES_
		"STORAGE_SESSION_DRIVER":  "bolt",
		"STORAGE_SESSION_DSN":     "/tmp/sessions.bolt",
		"STORAGE_FILES_BLOB_DIR":  "/var/blobs",
		"STORAGE_FILES_AUDIT_LOG": "/var/log/audit.log",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "tab-7", cfg.App.SessionID)
	assert.Equal(t, "/keys/a.key", cfg.App.KeyFile)
	assert.Equal(t, 8, cfg.App.SearchK)

	assert.Equal(t, "localhost:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "https://store.example", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "bolt", cfg.Storage.Session.Driver)
	assert.Equal(t, "/tmp/sessions.bolt", cfg.Storage.Session.DSN)
	assert.Equal(t, "/var/blobs", cfg.Storage.Files.BlobDir)
	assert.Equal(t, "/var/log/audit.log", cfg.Storage.Files.AuditLog)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "soon")

	err := parseEnv(&StructuredConfig{}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_ExplicitEnvironment(t *testing.T) {
	t.Setenv("APP_SEARCH_K", "99")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg, map[string]string{"APP_SEARCH_K": "3"})

	require.NoError(t, err)
	assert.Equal(t, 3, cfg.App.SearchK)
}

func TestParseEnv_SessionIDAlias(t *testing.T) {
	tests := []struct {
		name    string
		environ map[string]string
		want    string
	}{
		{name: "alias only", environ: map[string]string{"CASEVAULT_SESSION_ID": "shell-1"}, want: "shell-1"},
		{name: "config variable wins", environ: map[string]string{"CASEVAULT_SESSION_ID": "shell-1", "APP_SESSION_ID": "pinned"}, want: "pinned"},
		{name: "empty alias is ignored", environ: map[string]string{"CASEVAULT_SESSION_ID": ""}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg, tt.environ))
			assert.Equal(t, tt.want, cfg.App.SessionID)
		})
	}
}

func TestParseEnv_DoesNotModifyEnviron(t *testing.T) {
	environ := map[string]string{"CASEVAULT_SESSION_ID": "shell-1"}

	require.NoError(t, parseEnv(&StructuredConfig{}, environ))

	assert.Equal(t, map[string]string{"CASEVAULT_SESSION_ID": "shell-1"}, environ)
}
