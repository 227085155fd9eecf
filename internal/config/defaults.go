// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultAdapterAddress = "localhost:8000"
	DefaultServerAddress  = "localhost:8000"
	DefaultSessionDriver  = "sqlite"
	DefaultSearchK        = 5
	DefaultTokenDuration  = time.Hour
	DefaultBlobDir        = "data"

	appDirName = "go-case-vault"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: DefaultTokenDuration,
			SearchK:       DefaultSearchK,
		},
		Storage: Storage{
			Session: Session{
				Driver: DefaultSessionDriver,
				DSN:    defaultSessionDSN(),
			},
			Files: Files{
				BlobDir: DefaultBlobDir,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: 15 * time.Second,
		},
	}
}

// defaultSessionDSN places the session database in the user config dir,
// falling back to the working directory.
func defaultSessionDSN() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "sessions.db"
	}
	return filepath.Join(dir, appDirName, "sessions.db")
}
