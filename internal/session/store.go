// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-case-vault/internal/credential"
	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/internal/store"
	"github.com/MKhiriev/go-case-vault/models"
)

// DefaultMaxIdle bounds the age of a persisted session that Restore accepts.
const DefaultMaxIdle = 12 * time.Hour

// Option configures a [Store].
type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithMaxIdle sets how long a persisted session may go untouched before
// Restore discards it. Zero or less keeps persisted sessions forever.
func WithMaxIdle(d time.Duration) Option {
	return func(s *Store) { s.maxIdle = d }
}

// WithVerifier makes Set and Revalidate check token signatures.
func WithVerifier(v *credential.Verifier) Option {
	return func(s *Store) { s.verifier = v }
}

// Store holds at most one validated session token.
//
// All methods are safe for concurrent use. Writers hold the lock across the
// persistence call, so readers never see a token that is held in memory but
// not yet stored, or the other way round.
type Store struct {
	mu      sync.RWMutex
	current *models.Session

	repo     store.SessionRepository
	scope    string
	verifier *credential.Verifier
	now      func() time.Time
	maxIdle  time.Duration

	logger *logger.Logger
}

// NewStore returns an empty Store persisting to repo under scope.
// A nil repo keeps the session in memory only.
func NewStore(repo store.SessionRepository, scope string, logger *logger.Logger, opts ...Option) *Store {
	s := &Store{
		repo:    repo,
		scope:   scope,
		now:     time.Now,
		maxIdle: DefaultMaxIdle,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scope returns the scope the store persists under.
func (s *Store) Scope() string {
	return s.scope
}

// Set validates token and, if it is valid, makes it the current session.
// Any other outcome clears the store and returns the validation error:
// no partially authenticated state is retained.
func (s *Store) Set(ctx context.Context, token models.SessionToken) (models.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.check(strings.TrimSpace(token), s.now())
	if err != nil {
		s.logger.Info().Str("func", "Store.Set").Str("reason", err.Error()).Msg("token rejected")
		return models.Identity{}, errors.Join(err, s.clearLocked(ctx))
	}

	if s.repo != nil {
		err = s.repo.Save(ctx, models.StoredSession{Scope: s.scope, Token: session.Token, UpdatedAt: s.now()})
		if err != nil {
			s.logger.Err(err).Str("func", "Store.Set").Msg("failed to persist session")
			return models.Identity{}, errors.Join(fmt.Errorf("%w: %w", ErrPersistSession, err), s.clearLocked(ctx))
		}
	}

	s.current = &session
	s.logger.Info().
		Str("func", "Store.Set").
		Str("sub", session.Identity.Subject).
		Str("role", session.Identity.Role).
		Msg("session started")

	return session.Identity, nil
}

// Clear drops the current session and its persisted copy.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.clearLocked(ctx)
}

// Current returns a copy of the held session.
func (s *Store) Current() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return models.Session{}, false
	}
	return *s.current, true
}

// Token returns the held token or [ErrNoSession]. It is the token source of
// the blob store adapter.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return "", ErrNoSession
	}
	return s.current.Token, nil
}

// Revalidate checks the held token against now. A token that is no longer
// valid destroys the session and its error is returned.
func (s *Store) Revalidate(ctx context.Context, now time.Time) (models.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Identity{}, ErrNoSession
	}

	session, err := s.check(s.current.Token, now)
	if err != nil {
		s.logger.Info().Str("func", "Store.Revalidate").Str("reason", err.Error()).Msg("session invalidated")
		return models.Identity{}, errors.Join(err, s.clearLocked(ctx))
	}

	return session.Identity, nil
}

// Restore loads the token persisted for this scope and applies Set to it.
// [ErrNoSession] means nothing usable was stored. A record last saved more
// than the max idle time ago is deleted instead of restored.
func (s *Store) Restore(ctx context.Context) (models.Identity, error) {
	if s.repo == nil {
		return models.Identity{}, ErrNoSession
	}

	stored, err := s.repo.Load(ctx, s.scope)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Identity{}, ErrNoSession
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("load session: %w", err)
	}

	if s.isStale(stored) {
		s.logger.Info().
			Str("func", "Store.Restore").
			Time("updated_at", stored.UpdatedAt).
			Msg("persisted session is stale, dropping it")
		return models.Identity{}, errors.Join(fmt.Errorf("%w: persisted session is stale", ErrNoSession), s.Clear(ctx))
	}

	return s.Set(ctx, stored.Token)
}

func (s *Store) isStale(stored models.StoredSession) bool {
	if s.maxIdle <= 0 {
		return false
	}
	return stored.UpdatedAt.IsZero() || s.now().Sub(stored.UpdatedAt) > s.maxIdle
}

func (s *Store) check(token string, now time.Time) (models.Session, error) {
	if err := s.verifier.Verify(token); err != nil {
		return models.Session{}, err
	}

	claims, verdict, err := credential.Check(token, now)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{Token: token, Identity: verdict.Identity}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

func (s *Store) clearLocked(ctx context.Context) error {
	s.current = nil
	if s.repo == nil {
		return nil
	}

	if err := s.repo.Delete(ctx, s.scope); err != nil {
		s.logger.Err(err).Str("func", "Store.clear").Msg("failed to delete persisted session")
		return fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	return nil
}
