// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the credential currently held by the session store together
// with the identity it was validated for.
type Session struct {
	// Token is the raw credential string. It is attached to outbound
	// requests and never logged.
	Token SessionToken

	// Identity is the subject and role decoded from Token.
	Identity Identity

	// ExpiresAt is the expiry of Token. The zero value means "no expiry".
	ExpiresAt time.Time
}

// HasExpiry reports whether the session token carries an "exp" claim.
func (s Session) HasExpiry() bool {
	return !s.ExpiresAt.IsZero()
}

// StoredSession is the persisted form of a [Session], keyed by the scope
// (terminal session) it belongs to.
type StoredSession struct {
	Scope     string    `json:"scope"`
	Token     string    `json:"token"`
	UpdatedAt time.Time `json:"updated_at"`
}
