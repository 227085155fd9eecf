// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-case-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository persists one session token per scope. A scope is an
// opaque string identifying the terminal session the token was entered in;
// implementations never return records of another scope.
type SessionRepository interface {
	// Save inserts or replaces the token stored for session.Scope.
	Save(ctx context.Context, session models.StoredSession) error

	// Load returns the token stored for scope or [ErrSessionNotFound].
	Load(ctx context.Context, scope string) (models.StoredSession, error)

	// Delete removes the token stored for scope. Deleting a missing scope
	// is not an error.
	Delete(ctx context.Context, scope string) error

	// Close releases the underlying database.
	Close() error
}

// BlobRepository stores encrypted case blobs on the blob store side.
// Blobs are opaque to it: it never sees plaintext or keys.
type BlobRepository interface {
	// List returns the names of all stored blobs in lexical order.
	List(ctx context.Context) ([]string, error)

	// Get returns the blob stored under name or [ErrBlobNotFound].
	Get(ctx context.Context, name string) (models.EncryptedBlob, error)

	// Put stores blob under name, replacing any previous blob.
	Put(ctx context.Context, name string, blob models.EncryptedBlob) error
}
