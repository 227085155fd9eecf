// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-case-vault/models"
)

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// BlobService is the dev blob store. Every method takes the authenticated
// caller so that each action lands in the audit trail under its actor.
type BlobService interface {
	ListBlobs(ctx context.Context, caller models.Identity) ([]string, error)
	FetchBlob(ctx context.Context, caller models.Identity, name string) (models.EncryptedBlob, error)
	StoreBlob(ctx context.Context, caller models.Identity, req models.StoreBlobRequest) (models.StoreBlobResponse, error)
	Search(ctx context.Context, caller models.Identity, req models.SearchRequest) ([]models.SearchResult, error)
}

// AuditTrail records blob store actions.
type AuditTrail interface {
	Record(ctx context.Context, entry models.AuditEntry)
}

// BlobServiceWrapper defines middleware composition for BlobService.
// Implementations wrap an existing BlobService to add behavior such as
// logging or validating.
type BlobServiceWrapper interface {
	Wrap(BlobService) BlobService // returns a decorated BlobService applying additional behavior
}
