// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit writes the blob store audit trail: one JSON object per line
// with the fields ts, actor, role, action and filename.
package audit

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-case-vault/internal/logger"
	"github.com/MKhiriev/go-case-vault/models"
)

// Trail appends audit entries to a writer. It is safe for concurrent use.
type Trail struct {
	out    zerolog.Logger
	closer io.Closer
	now    func() time.Time
}

// New returns a Trail writing to w.
func New(w io.Writer) *Trail {
	return &Trail{
		out: zerolog.New(zerolog.SyncWriter(w)),
		now: time.Now,
	}
}

// Open returns a Trail appending to the file at path. When the file cannot be
// opened the trail falls back to stdout and the failure is logged.
func Open(path string, log *logger.Logger) *Trail {
	f, err := openFile(path)
	if err != nil {
		log.Err(err).Str("func", "audit.Open").Str("path", path).Msg("audit log unavailable, writing to stdout")
		return New(os.Stdout)
	}

	t := New(f)
	t.closer = f
	return t
}

func openFile(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("empty audit log path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create audit log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	return f, nil
}

// Record writes entry. Write failures are not reported to the caller: an
// action that succeeded is not undone because its audit line was lost.
func (t *Trail) Record(_ context.Context, entry models.AuditEntry) {
	t.out.Log().
		Str("ts", t.now().UTC().Format(time.RFC3339Nano)).
		Str("actor", entry.Actor).
		Str("role", entry.Role).
		Str("action", entry.Action).
		Str("filename", entry.Filename).
		Send()
}

// Close closes the underlying file, if the trail owns one.
func (t *Trail) Close() error {
	if t == nil || t.closer == nil {
		return nil
	}
	return t.closer.Close()
}
