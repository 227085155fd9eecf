// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-case-vault/internal/adapter"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

type clientSessionService struct {
	sessions  SessionStore
	blobStore adapter.BlobStoreAdapter
	now       func() time.Time

	logger *logger.Logger
}

func NewClientSessionService(sessions SessionStore, blobStore adapter.BlobStoreAdapter, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		sessions:  sessions,
		blobStore: blobStore,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *clientSessionService) Login(ctx context.Context, token string) (models.Identity, error) {
	return s.sessions.Set(ctx, token)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func (s *clientSessionService) Current() (models.Session, bool) {
	return s.sessions.Current()
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Identity, error) {
	return s.sessions.Restore(ctx)
}

func (s *clientSessionService) WhoAmI(ctx context.Context) (models.Identity, error) {
	if _, err := s.sessions.Revalidate(ctx, s.now()); err != nil {
		return models.Identity{}, err
	}

	identity, err := s.blobStore.WhoAmI(ctx)
	if err != nil {
		return models.Identity{}, rejectOnUnauthorized(ctx, s.sessions, err, s.logger)
	}

	return identity, nil
}

// rejectOnUnauthorized clears the session when the blob store refused the
// token and maps err to a service error.
func rejectOnUnauthorized(ctx context.Context, sessions SessionStore, err error, log *logger.Logger) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		if clearErr := sessions.Clear(ctx); clearErr != nil {
			log.Err(clearErr).Str("func", "rejectOnUnauthorized").Msg("failed to clear rejected session")
		}
	}
	return mapAdapterError(err)
}
