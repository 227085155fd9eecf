// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-case-vault/internal/adapter"
	"github.com/MKhiriev/go-case-vault/internal/crypto"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/masking"
	"github.com/MKhiriev/go-case-vault/models"
)

// DefaultSearchK is used when neither the caller nor the config sets k.
const DefaultSearchK = 5

type clientCaseService struct {
	sessions  SessionStore
	blobStore adapter.BlobStoreAdapter
	decrypter crypto.CaseDecrypter
	policy    masking.Policy
	searchK   int
	now       func() time.Time

	logger *logger.Logger
}

func NewClientCaseService(
	sessions SessionStore,
	blobStore adapter.BlobStoreAdapter,
	decrypter crypto.CaseDecrypter,
	searchK int,
	logger *logger.Logger,
) ClientCaseService {
	if searchK <= 0 {
		searchK = DefaultSearchK
	}

	return &clientCaseService{
		sessions:  sessions,
		blobStore: blobStore,
		decrypter: decrypter,
		policy:    masking.DefaultPolicy,
		searchK:   searchK,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientCaseService) ListBlobs(ctx context.Context) ([]string, error) {
	if err := s.authorize(ctx); err != nil {
		return nil, err
	}

	ids, err := s.blobStore.ListBlobs(ctx)
	if err != nil {
		return nil, s.adapterError(ctx, err)
	}

	return ids, nil
}

func (s *clientCaseService) Search(ctx context.Context, query string, k int) ([]models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if k <= 0 {
		k = s.searchK
	}

	if err := s.authorize(ctx); err != nil {
		return nil, err
	}

	results, err := s.blobStore.Search(ctx, query, k)
	if err != nil {
		return nil, s.adapterError(ctx, err)
	}

	return results, nil
}

func (s *clientCaseService) OpenCase(ctx context.Context, blobID, keyPath string) (CaseView, error) {
	if strings.TrimSpace(blobID) == "" {
		return CaseView{}, ErrInvalidBlobID
	}
	if strings.TrimSpace(keyPath) == "" {
		return CaseView{}, ErrNoKeyFile
	}

	if err := s.authorize(ctx); err != nil {
		return CaseView{}, err
	}

	blob, err := s.blobStore.FetchBlob(ctx, blobID)
	if err != nil {
		return CaseView{}, s.adapterError(ctx, err)
	}

	record, err := s.decrypter.DecryptBlob(keyPath, blob)
	if err != nil {
		// blob id only: the error never carries key or plaintext
		s.logger.Info().Str("func", "OpenCase").Str("blob_id", blobID).Str("reason", err.Error()).Msg("decrypt failed")
		return CaseView{}, err
	}

	s.logger.Info().Str("func", "OpenCase").Str("blob_id", blobID).Msg("case opened")
	return CaseView{
		BlobID:   blobID,
		Record:   masking.ApplyDocument(record, s.policy),
		OpenedAt: s.now(),
	}, nil
}

func (s *clientCaseService) authorize(ctx context.Context) error {
	_, err := s.sessions.Revalidate(ctx, s.now())
	return err
}

func (s *clientCaseService) adapterError(ctx context.Context, err error) error {
	return rejectOnUnauthorized(ctx, s.sessions, err, s.logger)
}
