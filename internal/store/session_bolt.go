// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

var bucketSessions = []byte("sessions")

type boltSessionRepository struct {
	db     *bbolt.DB
	logger *logger.Logger
}

// NewBoltSessionRepository opens (or creates) the BoltDB file at path and
// returns a [SessionRepository] keyed by scope.
func NewBoltSessionRepository(path string, logger *logger.Logger) (SessionRepository, error) {
	if err := createLocalDBFileIfNotExists(path); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		logger.Err(err).Str("func", "NewBoltSessionRepository").Msg("failed to open boltdb")
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSessions)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create sessions bucket: %w", err)
	}

	return &boltSessionRepository{db: db, logger: logger}, nil
}

func (r *boltSessionRepository) Save(ctx context.Context, session models.StoredSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSessions).Put([]byte(session.Scope), data)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "boltSessionRepository.Save").
			Str("scope", session.Scope).
			Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (r *boltSessionRepository) Load(ctx context.Context, scope string) (models.StoredSession, error) {
	var stored models.StoredSession

	err := r.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketSessions).Get([]byte(scope))
		if data == nil {
			return ErrSessionNotFound
		}
		return json.Unmarshal(data, &stored)
	})
	if err != nil {
		return models.StoredSession{}, err
	}

	return stored, nil
}

func (r *boltSessionRepository) Delete(ctx context.Context, scope string) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSessions).Delete([]byte(scope))
	})
}

func (r *boltSessionRepository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}
