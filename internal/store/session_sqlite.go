// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

type sqliteSessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLiteSessionRepository returns a [SessionRepository] backed by the
// "sessions" table of db. The schema must already be migrated.
func NewSQLiteSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sqliteSessionRepository{db: db, logger: logger}
}

func (r *sqliteSessionRepository) Save(ctx context.Context, session models.StoredSession) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveSessionQuery(session.Scope, session.Token, session.UpdatedAt)
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.Save").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteSessionRepository.Save").
			Str("scope", session.Scope).
			Msg("failed to upsert session")
		return fmt.Errorf("%w: save session: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sqliteSessionRepository) Load(ctx context.Context, scope string) (models.StoredSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSessionQuery(scope)
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.Load").Msg("failed to build select query")
		return models.StoredSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.StoredSession
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&stored.Scope, &stored.Token, &stored.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredSession{}, ErrSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteSessionRepository.Load").
			Str("scope", scope).
			Msg("failed to scan session row")
		return models.StoredSession{}, fmt.Errorf("%w: load session: %w", ErrExecutingQuery, err)
	}

	return stored, nil
}

func (r *sqliteSessionRepository) Delete(ctx context.Context, scope string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(scope)
	if err != nil {
		log.Err(err).Str("func", "sqliteSessionRepository.Delete").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteSessionRepository.Delete").
			Str("scope", scope).
			Msg("failed to delete session")
		return fmt.Errorf("%w: delete session: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *sqliteSessionRepository) Close() error {
	return r.db.Close()
}
