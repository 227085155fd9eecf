// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is the opaque bearer credential pasted by the user.
// It is a compact JWS string (header.claims.signature); only the claims
// segment is ever interpreted on the client side.
type SessionToken = string

// Role names the access level carried in the "role" claim.
type Role = string

const (
	RoleAdmin      Role = "admin"
	RoleClinician  Role = "clinician"
	RoleResearcher Role = "researcher"
	RoleAuditor    Role = "auditor"
)

// KnownRoles lists every role the token issuer is able to mint.
var KnownRoles = []Role{RoleAdmin, RoleClinician, RoleResearcher, RoleAuditor}

// IsKnownRole reports whether role is one of [KnownRoles].
func IsKnownRole(role string) bool {
	return slices.Contains(KnownRoles, role)
}

// Claims is the typed view of the claims segment of a [SessionToken].
//
// Only the fields below are recognised. Unknown claims are ignored.
// A field carrying a JSON value of the wrong type makes the whole segment
// undecodable instead of silently producing a zero value.
type Claims struct {
	// Subject is the "sub" claim: the identity of the token holder.
	Subject string `json:"sub,omitempty"`

	// Role is the "role" claim.
	Role Role `json:"role,omitempty"`

	// ExpiresAt is the "exp" claim in seconds since the Unix epoch.
	// Nil means the token never expires, or that exp lies beyond the range
	// of time.Time, see ExpSeconds.
	ExpiresAt *jwt.NumericDate `json:"exp,omitempty"`

	// ExpSeconds is "exp" exactly as decoded, fractions included. It is set
	// by the claims decoder and takes precedence over ExpiresAt.
	ExpSeconds *float64 `json:"-"`

	// IssuedAt is the "iat" claim. Informational only.
	IssuedAt *jwt.NumericDate `json:"iat,omitempty"`
}

// ExpiryMillis returns "exp" in milliseconds since the Unix epoch.
// The second result is false when the claims carry no expiry.
func (c Claims) ExpiryMillis() (float64, bool) {
	switch {
	case c.ExpSeconds != nil:
		return *c.ExpSeconds * 1000, true
	case c.ExpiresAt != nil:
		return float64(c.ExpiresAt.UnixMilli()), true
	default:
		return 0, false
	}
}

// GetExpirationTime implements [jwt.Claims].
func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }

// GetIssuedAt implements [jwt.Claims].
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) { return c.IssuedAt, nil }

// GetNotBefore implements [jwt.Claims].
func (c Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements [jwt.Claims].
func (c Claims) GetIssuer() (string, error) { return "", nil }

// GetSubject implements [jwt.Claims].
func (c Claims) GetSubject() (string, error) { return c.Subject, nil }

// GetAudience implements [jwt.Claims].
func (c Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// Identity is the (subject, role) pair of a successfully validated token.
type Identity struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
}
