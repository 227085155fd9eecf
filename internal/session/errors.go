// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNoSession is returned when an authorized action is attempted
	// without a held token.
	ErrNoSession = errors.New("no active session")
	// ErrPersistSession is returned when the token could not be written to
	// or removed from the session database.
	ErrPersistSession = errors.New("failed to persist session")
)
