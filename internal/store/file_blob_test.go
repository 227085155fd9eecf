// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBlobRepo(t *testing.T) (BlobRepository, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "blobs")
	repo, err := NewFileBlobRepository(dir, logger.Nop())
	require.NoError(t, err)
	return repo, dir
}

func TestFileBlobRepository_PutGetList(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestBlobRepo(t)

	blob := models.EncryptedBlob{Nonce: "aabb", Ciphertext: "ccdd"}
	require.NoError(t, repo.Put(ctx, "hospital_b__case_2", blob))
	require.NoError(t, repo.Put(ctx, "hospital_a__case_1", blob))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "audit.log"), []byte("{}\n"), 0o600))

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"hospital_a__case_1", "hospital_b__case_2"}, names)

	got, err := repo.Get(ctx, "hospital_a__case_1")
	require.NoError(t, err)
	assert.Equal(t, models.EncryptedBlob{ID: "hospital_a__case_1", Nonce: "aabb", Ciphertext: "ccdd"}, got)
}

func TestFileBlobRepository_PutReplaces(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlobRepo(t)

	require.NoError(t, repo.Put(ctx, "x", models.EncryptedBlob{Nonce: "01", Ciphertext: "02"}))
	require.NoError(t, repo.Put(ctx, "x", models.EncryptedBlob{Nonce: "03", Ciphertext: "04"}))

	got, err := repo.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "03", got.Nonce)

	names, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, names, "temp files must not be listed")
}

func TestFileBlobRepository_GetNotFound(t *testing.T) {
	repo, _ := newTestBlobRepo(t)

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBlobNotFound)
}

func TestFileBlobRepository_InvalidNames(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlobRepo(t)

	for _, name := range []string{"", ".", "..", "../etc/passwd", "a/b", `a\b`, ".hidden", "audit.log"} {
		_, err := repo.Get(ctx, name)
		assert.ErrorIsf(t, err, ErrInvalidBlobName, "Get(%q)", name)

		err = repo.Put(ctx, name, models.EncryptedBlob{})
		assert.ErrorIsf(t, err, ErrInvalidBlobName, "Put(%q)", name)
	}
}
