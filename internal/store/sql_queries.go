// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionsTable = "sessions"

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveSessionQuery(scope, token string, updatedAt time.Time) (string, []any, error) {
	return psql.
		Insert(sessionsTable).
		Columns("scope", "token", "updated_at").
		Values(scope, token, updatedAt.UTC()).
		Suffix("ON CONFLICT(scope) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadSessionQuery(scope string) (string, []any, error) {
	return psql.
		Select("scope", "token", "updated_at").
		From(sessionsTable).
		Where(sq.Eq{"scope": scope}).
		Limit(1).
		ToSql()
}

func buildDeleteSessionQuery(scope string) (string, []any, error) {
	return psql.
		Delete(sessionsTable).
		Where(sq.Eq{"scope": scope}).
		ToSql()
}
