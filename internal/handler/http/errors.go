// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged when the request carries no
	// "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoIdentity is logged when a role check runs without an
	// authenticated identity in the request context.
	ErrNoIdentity = errors.New("no identity in request context")

	// ErrRoleNotAllowed is logged when the caller's role is not permitted on
	// the route.
	ErrRoleNotAllowed = errors.New("role not allowed")
)
