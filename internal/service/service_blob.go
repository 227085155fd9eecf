// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/models"
)

// Audit actions written by the blob service.
const (
	ActionListBlobs = "list_blobs"
	ActionFetchBlob = "fetch_blob"
	ActionStoreBlob = "store_blob"
	ActionSearch    = "search"
)

const (
	storeStatusOK = "ok"
	storageName   = "filesystem"

	scoreStep = 0.05
)

type blobService struct {
	blobRepository store.BlobRepository
	audit          AuditTrail

	logger *logger.Logger
}

func NewBlobService(blobRepository store.BlobRepository, audit AuditTrail, logger *logger.Logger) BlobService {
	return &blobService{
		blobRepository: blobRepository,
		audit:          audit,
		logger:         logger,
	}
}

func (b *blobService) ListBlobs(ctx context.Context, caller models.Identity) ([]string, error) {
	names, err := b.blobRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}

	b.record(ctx, caller, ActionListBlobs, "")
	return names, nil
}

func (b *blobService) FetchBlob(ctx context.Context, caller models.Identity, name string) (models.EncryptedBlob, error) {
	blob, err := b.blobRepository.Get(ctx, name)
	if err != nil {
		return models.EncryptedBlob{}, mapRepositoryError(err)
	}

	b.record(ctx, caller, ActionFetchBlob, name)
	return blob, nil
}

func (b *blobService) StoreBlob(ctx context.Context, caller models.Identity, req models.StoreBlobRequest) (models.StoreBlobResponse, error) {
	name := req.BlobName()
	if err := b.blobRepository.Put(ctx, name, req.EncBlob); err != nil {
		return models.StoreBlobResponse{}, mapRepositoryError(err)
	}

	b.record(ctx, caller, ActionStoreBlob, name)
	return models.StoreBlobResponse{
		Status:   storeStatusOK,
		Storage:  storageName,
		Hospital: req.Hospital,
		CaseID:   req.CaseID,
	}, nil
}

// Search ranks stored blob names without looking at their contents: names
// containing the query come first in lexical order, or all names when none
// match. Scores fall by 0.05 per rank and never go below zero.
func (b *blobService) Search(ctx context.Context, caller models.Identity, req models.SearchRequest) ([]models.SearchResult, error) {
	names, err := b.blobRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	k := req.K
	if k <= 0 {
		k = DefaultSearchK
	}

	candidates := matchingNames(names, req.Query)
	if len(candidates) > k {
		candidates = candidates[:k]
	}

	results := make([]models.SearchResult, 0, len(candidates))
	for i, name := range candidates {
		results = append(results, models.SearchResult{ID: name, Score: rankScore(i)})
	}

	b.record(ctx, caller, ActionSearch, "")
	return results, nil
}

func (b *blobService) record(ctx context.Context, caller models.Identity, action, filename string) {
	if b.audit == nil {
		return
	}
	b.audit.Record(ctx, models.AuditEntry{
		Actor:    caller.Subject,
		Role:     caller.Role,
		Action:   action,
		Filename: filename,
	})
}

func matchingNames(names []string, query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return names
	}

	matched := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), query) {
			matched = append(matched, name)
		}
	}
	if len(matched) == 0 {
		return names
	}

	return matched
}

func rankScore(rank int) float64 {
	score := math.Round((1-scoreStep*float64(rank))*1000) / 1000
	return math.Max(score, 0)
}

func mapRepositoryError(err error) error {
	switch {
	case errors.Is(err, store.ErrBlobNotFound):
		return fmt.Errorf("%w: %w", ErrBlobNotFound, err)
	case errors.Is(err, store.ErrInvalidBlobName):
		return fmt.Errorf("%w: %w", ErrInvalidBlobID, err)
	default:
		return err
	}
}
