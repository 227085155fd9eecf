// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

// reservedBlobNames are files that live next to blobs but are not blobs.
var reservedBlobNames = []string{"audit.log"}

type fileBlobRepository struct {
	dir    string
	logger *logger.Logger
}

// NewFileBlobRepository returns a [BlobRepository] that keeps one JSON file
// per blob in dir. The directory is created when missing.
func NewFileBlobRepository(dir string, logger *logger.Logger) (BlobRepository, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		logger.Err(err).Str("func", "NewFileBlobRepository").Str("dir", dir).Msg("failed to create blob dir")
		return nil, fmt.Errorf("create blob dir: %w", err)
	}

	return &fileBlobRepository{dir: dir, logger: logger}, nil
}

func (r *fileBlobRepository) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobRepository.List").Msg("failed to read blob dir")
		return nil, fmt.Errorf("read blob dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || validateBlobName(e.Name()) != nil {
			continue
		}
		names = append(names, e.Name())
	}
	slices.Sort(names)

	return names, nil
}

func (r *fileBlobRepository) Get(ctx context.Context, name string) (models.EncryptedBlob, error) {
	if err := validateBlobName(name); err != nil {
		return models.EncryptedBlob{}, err
	}

	data, err := os.ReadFile(filepath.Join(r.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return models.EncryptedBlob{}, ErrBlobNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobRepository.Get").Str("blob", name).Msg("failed to read blob")
		return models.EncryptedBlob{}, fmt.Errorf("read blob: %w", err)
	}

	var blob models.EncryptedBlob
	if err = json.Unmarshal(data, &blob); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("decode blob %s: %w", name, err)
	}
	blob.ID = name

	return blob, nil
}

func (r *fileBlobRepository) Put(ctx context.Context, name string, blob models.EncryptedBlob) error {
	if err := validateBlobName(name); err != nil {
		return err
	}

	data, err := json.Marshal(blob)
	if err != nil {
		return fmt.Errorf("encode blob: %w", err)
	}

	// write to a temp file first so readers never see a partial blob
	tmp, err := os.CreateTemp(r.dir, ".blob-*")
	if err != nil {
		return fmt.Errorf("create temp blob: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write blob: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close blob: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(r.dir, name)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "fileBlobRepository.Put").Str("blob", name).Msg("failed to store blob")
		return fmt.Errorf("store blob: %w", err)
	}

	return nil
}

func validateBlobName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return ErrInvalidBlobName
	case strings.HasPrefix(name, "."):
		return ErrInvalidBlobName
	case strings.ContainsAny(name, `/\`):
		return ErrInvalidBlobName
	case slices.Contains(reservedBlobNames, name):
		return ErrInvalidBlobName
	}
	return nil
}
