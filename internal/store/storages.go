// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/config"
	"github.com/MKhiriev/go-case-vault/internal/logger"
)

// Storages groups the repositories of the dev blob server.
type Storages struct {
	BlobRepository BlobRepository
}

// NewStorages prepares the blob directory named in cfg.
func NewStorages(cfg *config.ServerConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("dir", cfg.BlobDir).Msg("creating new storages...")

	blobs, err := NewFileBlobRepository(cfg.BlobDir, logger)
	if err != nil {
		return nil, fmt.Errorf("blob storage error: %w", err)
	}

	return &Storages{BlobRepository: blobs}, nil
}
