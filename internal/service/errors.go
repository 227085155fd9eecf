// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrSessionRejected means the blob store refused the held token. The
	// session has been cleared.
	ErrSessionRejected = errors.New("session rejected by blob store")
	// ErrAccessDenied means the caller's role may not perform the action.
	ErrAccessDenied = errors.New("access denied")
	// ErrBlobNotFound means the requested blob does not exist.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrInvalidBlobID means the blob id is empty or not a valid name.
	ErrInvalidBlobID = errors.New("invalid blob id")
	// ErrInvalidDataProvided means the request was rejected as malformed.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrStoreUnavailable means the blob store failed on its side.
	ErrStoreUnavailable = errors.New("blob store unavailable")
	// ErrNoKeyFile means no key file path was given for a decrypt.
	ErrNoKeyFile = errors.New("no key file selected")
	// ErrEmptyQuery means a search was requested without a query.
	ErrEmptyQuery = errors.New("empty search query")
)
