// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client, the dev blob server and the dev tool. It is populated by merging
// values from environment variables, command-line flags, an optional JSON
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing, session scope,
	// key file and search defaults.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database and the
	// blob directory of the dev server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the dev blob
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address of the blob store the client talks to.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HS256 secret session tokens are signed with.
	// The server requires it. The client verifies signatures only when it
	// is set.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenDuration is the lifetime of tokens minted by the dev tool.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SessionID pins the session scope. When empty the scope is derived
	// from the invoking shell.
	// Env: APP_SESSION_ID
	SessionID string `env:"SESSION_ID"`

	// KeyFile is the key file path pre-filled in the decrypt prompt.
	// Env: APP_KEY_FILE
	KeyFile string `env:"KEY_FILE"`

	// SearchK is the default number of search results.
	// Env: APP_SEARCH_K
	SearchK int `env:"SEARCH_K"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Session holds the local session database settings.
	Session Session `envPrefix:"SESSION_"`

	// Files holds the dev server blob directory settings.
	Files Files `envPrefix:"FILES_"`
}

// Session holds the settings of the client's session persistence.
type Session struct {
	// Driver is "sqlite" or "bolt".
	// Env: STORAGE_SESSION_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the database file path.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Files holds file-system settings of the dev blob server.
type Files struct {
	// BlobDir is the directory encrypted blobs are stored in.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`

	// AuditLog is the audit trail file. Defaults to audit.log in BlobDir.
	// Env: STORAGE_FILES_AUDIT_LOG
	AuditLog string `env:"AUDIT_LOG"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the dev server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration of the outbound blob store client.
type Adapter struct {
	// HTTPAddress is the base address of the blob store, with or without
	// scheme (e.g. "localhost:8000", "https://store.example").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source that sets it wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
