// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/validators"
	"github.com/MKhiriev/go-case-vault/models"
)

// BlobValidationService rejects malformed requests before they reach the
// wrapped [BlobService]. Validation failures wrap [ErrInvalidDataProvided]
// or [ErrInvalidBlobID].
type BlobValidationService struct {
	inner     BlobService
	validator validators.Validator
}

func NewBlobValidationService() BlobServiceWrapper {
	return &BlobValidationService{
		validator: validators.NewBlobValidator(),
	}
}

func (v *BlobValidationService) ListBlobs(ctx context.Context, caller models.Identity) ([]string, error) {
	return v.inner.ListBlobs(ctx, caller)
}

func (v *BlobValidationService) FetchBlob(ctx context.Context, caller models.Identity, name string) (models.EncryptedBlob, error) {
	if err := v.validator.Validate(ctx, validators.BlobName(name)); err != nil {
		return models.EncryptedBlob{}, fmt.Errorf("%w: %w", ErrInvalidBlobID, err)
	}

	return v.inner.FetchBlob(ctx, caller, name)
}

func (v *BlobValidationService) StoreBlob(ctx context.Context, caller models.Identity, req models.StoreBlobRequest) (models.StoreBlobResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.StoreBlobResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.StoreBlob(ctx, caller, req)
}

func (v *BlobValidationService) Search(ctx context.Context, caller models.Identity, req models.SearchRequest) ([]models.SearchResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Search(ctx, caller, req)
}

func (v *BlobValidationService) Wrap(wrapper BlobService) BlobService {
	v.inner = wrapper
	return v
}
