// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
)

// Session database drivers accepted by [NewClientStorages].
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// SessionRepository persists the active session token per scope.
	SessionRepository SessionRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. For the sqlite driver it:
//  1. Opens an SQLite connection to cfg.DSN, creating the database file if
//     it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//
// For the bolt driver it opens a BoltDB file at cfg.DSN.
//
// Returns [ErrUnsupportedDriver] for any other driver.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case DriverSQLite:
		db, err := NewConnectSQLite(context.Background(), cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &ClientStorages{SessionRepository: NewSQLiteSessionRepository(db, logger)}, nil
	case DriverBolt:
		repo, err := NewBoltSessionRepository(cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("bolt connection error: %w", err)
		}

		return &ClientStorages{SessionRepository: repo}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Close releases the underlying database handles.
func (s *ClientStorages) Close() error {
	if s == nil || s.SessionRepository == nil {
		return nil
	}
	return s.SessionRepository.Close()
}
