// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// remote blob store.
//
// The primary abstraction is [BlobStoreAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPBlobStoreAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-case-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/blob_store_adapter_mock.go -package=mock

// TokenProvider supplies the bearer credential attached to every
// authenticated request. It returns an error when no session is held.
type TokenProvider interface {
	Token() (string, error)
}

// BlobStoreAdapter defines communication with the remote blob store and its
// search service. Blobs cross this boundary only in encrypted form.
type BlobStoreAdapter interface {
	// ListBlobs returns the ids of all blobs visible to the caller.
	ListBlobs(ctx context.Context) ([]string, error)

	// FetchBlob returns the encrypted blob stored under id. The returned
	// blob has ID set to id.
	FetchBlob(ctx context.Context, id string) (models.EncryptedBlob, error)

	// Search returns up to k blob ids ranked by relevance to query.
	Search(ctx context.Context, query string, k int) ([]models.SearchResult, error)

	// WhoAmI returns the identity the blob store derived from the token.
	WhoAmI(ctx context.Context) (models.Identity, error)

	// Health reports blob store liveness. It does not require a session.
	Health(ctx context.Context) (models.HealthStatus, error)

	// StoreBlob uploads an encrypted case. Used by dev tooling only.
	StoreBlob(ctx context.Context, req models.StoreBlobRequest) (models.StoreBlobResponse, error)
}
