// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session is stored for the
	// requested scope.
	ErrSessionNotFound = errors.New("session not found")

	// ErrBlobNotFound is returned when the requested blob does not exist in
	// the blob directory.
	ErrBlobNotFound = errors.New("blob not found")

	// ErrInvalidBlobName is returned for blob names that are empty, contain
	// path separators or refer to reserved files.
	ErrInvalidBlobName = errors.New("invalid blob name")

	// ErrUnsupportedDriver is returned when the configured session driver is
	// neither "sqlite" nor "bolt".
	ErrUnsupportedDriver = errors.New("unsupported session storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
