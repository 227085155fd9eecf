// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ServerConfig is the configuration view of the dev blob server.
type ServerConfig struct {
	// TokenSignKey verifies bearer tokens of incoming requests.
	TokenSignKey string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration
	// BlobDir is the directory blobs are stored in.
	BlobDir string
	// AuditLog is the audit trail file.
	AuditLog string
}

// GetServerConfig builds and validates the dev server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	auditLog := cfg.Storage.Files.AuditLog
	if auditLog == "" && cfg.Storage.Files.BlobDir != "" {
		auditLog = filepath.Join(cfg.Storage.Files.BlobDir, "audit.log")
	}

	return &ServerConfig{
		TokenSignKey:   cfg.App.TokenSignKey,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		BlobDir:        cfg.Storage.Files.BlobDir,
		AuditLog:       auditLog,
	}
}

// DevToolConfig is the configuration view of the dev tool. It is read from
// the environment and defaults only, since the dev tool parses its own
// sub-command flags.
type DevToolConfig struct {
	TokenSignKey   string
	TokenDuration  time.Duration
	AdapterAddress string
	RequestTimeout time.Duration
}

// GetDevToolConfig builds the dev tool config view.
func GetDevToolConfig() (*DevToolConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &DevToolConfig{
		TokenSignKey:   cfg.App.TokenSignKey,
		TokenDuration:  cfg.App.TokenDuration,
		AdapterAddress: cfg.Adapter.HTTPAddress,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, nil
}
