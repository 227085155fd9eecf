// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

func TestNewClientStorages_Drivers(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverBolt} {
		t.Run(driver, func(t *testing.T) {
			dsn := filepath.Join(t.TempDir(), "nested", "sessions."+driver)

			storages, err := NewClientStorages(config.ClientStorage{Driver: driver, DSN: dsn}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = storages.Close() })

			ctx := context.Background()
			want := models.StoredSession{Scope: "tab-1", Token: "a.b.c", UpdatedAt: time.Now().UTC().Truncate(time.Second)}
			require.NoError(t, storages.SessionRepository.Save(ctx, want))

			got, err := storages.SessionRepository.Load(ctx, "tab-1")
			require.NoError(t, err)
			assert.Equal(t, want.Token, got.Token)
		})
	}
}

func TestNewClientStorages_UnsupportedDriver(t *testing.T) {
	_, err := NewClientStorages(config.ClientStorage{Driver: "postgres", DSN: "x"}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

func TestNewStorages(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "blobs")

	storages, err := NewStorages(&config.ServerConfig{BlobDir: dir}, logger.Nop())
	require.NoError(t, err)

	names, err := storages.BlobRepository.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
